package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/ctxlog/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format renders a record into a fresh byte slice owned by the caller
	Format(r *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo renders a record and writes it directly to the writer
	FormatTo(r *core.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to render into a caller-provided buffer. Handlers that reuse their
// own buffers (the file handler) prefer this form.
type BufferFormatter interface {
	// FormatRecord renders a record into the given buffer
	FormatRecord(r *core.Record, buf *bytes.Buffer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for RFC3339Nano)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
