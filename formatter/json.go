package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/philipp01105/ctxlog/core"
)

// JSONFormatter renders records as single-line JSON objects in wire
// order: level, timestamp, message, traceId, requestId, userId,
// metadata, error. Absent scope fields, empty metadata and absent
// error details are omitted entirely.
type JSONFormatter struct {
	Config
	pretty bool
}

// NewJSONFormatter creates a compact JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// NewPrettyJSONFormatter creates a JSON formatter that emits indented
// multi-line objects, for consoles read by humans.
func NewPrettyJSONFormatter(cfg Config) *JSONFormatter {
	f := NewJSONFormatter(cfg)
	f.pretty = true
	return f
}

// Format renders a record as JSON
func (f *JSONFormatter) Format(r *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatRecord(r, buf); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo renders a record as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(r *core.Record, w io.Writer) error {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatRecord(r, buf); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// FormatRecord renders a record as JSON into the given buffer
// (implements BufferFormatter).
func (f *JSONFormatter) FormatRecord(r *core.Record, buf *bytes.Buffer) error {
	if !f.pretty {
		return f.formatToBuffer(r, buf)
	}

	scratch := getBuffer()
	defer putBuffer(scratch)
	if err := f.formatToBuffer(r, scratch); err != nil {
		return err
	}
	compact := scratch.Bytes()
	compact = compact[:len(compact)-1] // drop the newline for Indent
	if err := json.Indent(buf, compact, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return nil
}

// formatToBuffer builds the compact JSON line manually into the buffer
func (f *JSONFormatter) formatToBuffer(r *core.Record, buf *bytes.Buffer) error {
	buf.WriteString(`{"level":"`)
	buf.WriteString(r.Level.String())

	buf.WriteString(`","timestamp":"`)
	buf.Write(r.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(`","message":"`)
	appendJSONString(buf, r.Message)
	buf.WriteByte('"')

	if r.TraceID != "" {
		buf.WriteString(`,"traceId":"`)
		appendJSONString(buf, r.TraceID)
		buf.WriteByte('"')
	}
	if r.RequestID != "" {
		buf.WriteString(`,"requestId":"`)
		appendJSONString(buf, r.RequestID)
		buf.WriteByte('"')
	}
	if r.UserID != "" {
		buf.WriteString(`,"userId":"`)
		appendJSONString(buf, r.UserID)
		buf.WriteByte('"')
	}

	if len(r.Metadata) > 0 {
		enc, err := json.Marshal(r.Metadata)
		if err != nil {
			return fmt.Errorf("encode metadata: %w", err)
		}
		buf.WriteString(`,"metadata":`)
		buf.Write(enc)
	}

	if r.Err != nil {
		enc, err := json.Marshal(r.Err)
		if err != nil {
			return fmt.Errorf("encode error detail: %w", err)
		}
		buf.WriteString(`,"error":`)
		buf.Write(enc)
	}

	buf.WriteString("}\n")
	return nil
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
