package handler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/ctxlog/core"
	"github.com/philipp01105/ctxlog/formatter"
)

// backupTimeFormat timestamps rotated files at nanosecond precision,
// so backup names are unique and sort chronologically.
const backupTimeFormat = "2006-01-02T15-04-05.000000000"

// maxPooledBufferSize caps buffers returned to the render pool.
const maxPooledBufferSize = 64 * 1024

// FileConfig configures a FileHandler.
type FileConfig struct {
	// Filename is the path to the log file. Required.
	Filename string

	// Formatter renders records. Defaults to compact JSON.
	Formatter formatter.Formatter

	// MaxSize is the size in bytes at which the file rotates.
	// 0 disables size-based rotation.
	MaxSize int64

	// MaxAge is how long a file stays active before rotating.
	// 0 disables age-based rotation.
	MaxAge time.Duration

	// MaxBackups is how many rotated files to retain. 0 keeps all.
	MaxBackups int
}

// FileHandler appends records to a file, rotating by size or age and
// pruning old backups. Writes are synchronous; wrap it in an
// AsyncHandler to take disk latency off the logging path.
type FileHandler struct {
	filename   string
	formatter  formatter.Formatter
	bufferFmt  formatter.BufferFormatter
	maxSize    int64
	maxAge     time.Duration
	maxBackups int
	bufPool    sync.Pool

	mu          sync.Mutex
	file        *os.File
	currentSize int64
	openedAt    time.Time
	closed      bool
}

// NewFileHandler creates a file handler, creating the directory if
// needed and appending to an existing file.
func NewFileHandler(config FileConfig) (*FileHandler, error) {
	if config.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if config.Formatter == nil {
		config.Formatter = formatter.NewJSONFormatter(formatter.Config{})
	}

	if err := os.MkdirAll(filepath.Dir(config.Filename), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(config.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	h := &FileHandler{
		filename:    config.Filename,
		formatter:   config.Formatter,
		maxSize:     config.MaxSize,
		maxAge:      config.MaxAge,
		maxBackups:  config.MaxBackups,
		file:        file,
		currentSize: info.Size(),
		openedAt:    time.Now(),
	}
	h.bufferFmt, _ = config.Formatter.(formatter.BufferFormatter)
	h.bufPool.New = func() any { return new(bytes.Buffer) }

	return h, nil
}

// Handle renders the record and appends it to the file, rotating
// first when a limit has been reached.
func (h *FileHandler) Handle(r *core.Record) error {
	if h.bufferFmt != nil {
		buf := h.bufPool.Get().(*bytes.Buffer)
		buf.Reset()
		err := h.bufferFmt.FormatRecord(r, buf)
		if err == nil {
			err = h.write(buf.Bytes())
		}
		if buf.Cap() <= maxPooledBufferSize {
			h.bufPool.Put(buf)
		}
		return err
	}

	data, err := h.formatter.Format(r)
	if err != nil {
		return err
	}
	return h.write(data)
}

func (h *FileHandler) write(data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return os.ErrClosed
	}

	if err := h.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := h.file.Write(data)
	h.currentSize += int64(n)
	return err
}

func (h *FileHandler) rotateIfNeeded() error {
	sizeDue := h.maxSize > 0 && h.currentSize >= h.maxSize
	ageDue := h.maxAge > 0 && time.Since(h.openedAt) >= h.maxAge
	if !sizeDue && !ageDue {
		return nil
	}
	return h.rotate()
}

// rotate closes the active file, renames it to a timestamped backup
// and opens a fresh file. If the rename fails the original file is
// reopened so logging can continue.
func (h *FileHandler) rotate() error {
	if err := h.file.Sync(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	backup := fmt.Sprintf("%s.%s", h.filename, time.Now().Format(backupTimeFormat))
	if err := os.Rename(h.filename, backup); err != nil {
		file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotate %s: %v, reopen failed: %v", h.filename, err, openErr)
		}
		h.file = file
		return err
	}

	if h.maxBackups > 0 {
		h.cleanupBackups()
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	h.file = file
	h.currentSize = 0
	h.openedAt = time.Now()
	return nil
}

// cleanupBackups removes the oldest backups beyond MaxBackups. Backup
// names embed fixed-width timestamps, so sorting by name sorts by age.
func (h *FileHandler) cleanupBackups() {
	matches, err := filepath.Glob(h.filename + ".*")
	if err != nil {
		return
	}

	prefix := filepath.Base(h.filename) + "."
	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), prefix) {
			backups = append(backups, match)
		}
	}
	if len(backups) <= h.maxBackups {
		return
	}

	sort.Strings(backups)
	for _, old := range backups[:len(backups)-h.maxBackups] {
		if err := os.Remove(old); err != nil {
			return
		}
	}
}

// Close flushes and closes the file. Safe to call more than once.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	var err error
	if syncErr := h.file.Sync(); syncErr != nil {
		err = multierr.Append(err, syncErr)
	}
	return multierr.Append(err, h.file.Close())
}
