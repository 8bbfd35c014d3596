package handler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/ctxlog/core"
	"github.com/philipp01105/ctxlog/formatter"
)

// ConsoleConfig configures a ConsoleHandler.
type ConsoleConfig struct {
	// Formatter renders records. Defaults to compact JSON.
	Formatter formatter.Formatter

	// Streams routes each level to a writer. Defaults to
	// DefaultStreams(). A level missing from the map falls back to
	// Fallback.
	Streams map[core.Level]io.Writer

	// Fallback receives records whose level has no stream. Defaults
	// to os.Stderr.
	Fallback io.Writer
}

// DefaultStreams returns the default level routing: debug and info on
// stdout, warn and error on stderr.
func DefaultStreams() map[core.Level]io.Writer {
	return map[core.Level]io.Writer{
		core.DebugLevel: os.Stdout,
		core.InfoLevel:  os.Stdout,
		core.WarnLevel:  os.Stderr,
		core.ErrorLevel: os.Stderr,
	}
}

// ConsoleHandler writes records to per-level streams. Writes are
// synchronous; wrap it in an AsyncHandler when the caller must not
// wait on the terminal.
type ConsoleHandler struct {
	formatter formatter.Formatter
	writerFmt formatter.WriterFormatter
	streams   map[core.Level]io.Writer
	fallback  io.Writer

	// mu serializes writes so records never interleave.
	mu sync.Mutex
}

// NewConsoleHandler creates a console handler. The zero config
// applies all defaults.
func NewConsoleHandler(config ConsoleConfig) *ConsoleHandler {
	if config.Formatter == nil {
		config.Formatter = formatter.NewJSONFormatter(formatter.Config{})
	}
	if config.Streams == nil {
		config.Streams = DefaultStreams()
	}
	if config.Fallback == nil {
		config.Fallback = os.Stderr
	}

	h := &ConsoleHandler{
		formatter: config.Formatter,
		streams:   config.Streams,
		fallback:  config.Fallback,
	}
	h.writerFmt, _ = config.Formatter.(formatter.WriterFormatter)
	return h
}

// Handle formats the record and writes it to the stream for its level.
func (h *ConsoleHandler) Handle(r *core.Record) error {
	w, ok := h.streams[r.Level]
	if !ok || w == nil {
		w = h.fallback
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.writerFmt != nil {
		return h.writerFmt.FormatTo(r, w)
	}

	data, err := h.formatter.Format(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Close implements Handler. Console streams are not owned by the
// handler, so there is nothing to release.
func (h *ConsoleHandler) Close() error {
	return nil
}
