package formatter

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/ctxlog/core"
)

// TextFormatter renders records as human-readable single lines:
//
//	2026-01-02T15:04:05Z [INFO] message traceId=t key=value
//
// Scope fields come first, then metadata sorted by key, then the
// error detail. A captured stack follows the line as a raw block.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format renders a record as text
func (f *TextFormatter) Format(r *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatRecord(r, buf); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo renders a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(r *core.Record, w io.Writer) error {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatRecord(r, buf); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
}

// FormatRecord renders a record into the given buffer (implements
// BufferFormatter).
func (f *TextFormatter) FormatRecord(r *core.Record, buf *bytes.Buffer) error {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(r.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	// Level - use pre-formatted string
	if int(r.Level) >= 0 && int(r.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[r.Level])
	} else {
		buf.WriteString(" [" + strings.ToUpper(r.Level.String()) + "] ")
	}

	// Message
	buf.WriteString(r.Message)

	appendPair(buf, "traceId", r.TraceID)
	appendPair(buf, "requestId", r.RequestID)
	appendPair(buf, "userId", r.UserID)

	// Metadata, sorted so output is stable
	if len(r.Metadata) > 0 {
		keys := make([]string, 0, len(r.Metadata))
		for k := range r.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendPair(buf, k, fmt.Sprint(r.Metadata[k]))
		}
	}

	var stack string
	if r.Err != nil {
		appendPair(buf, "error", r.Err.Message)
		appendPair(buf, "errorName", r.Err.Name)
		if len(r.Err.Extra) > 0 {
			keys := make([]string, 0, len(r.Err.Extra))
			for k := range r.Err.Extra {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				appendPair(buf, "error."+k, fmt.Sprint(r.Err.Extra[k]))
			}
		}
		stack = r.Err.Stack
	}

	buf.WriteByte('\n')

	if stack != "" {
		buf.WriteString(stack)
		if stack[len(stack)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}
	return nil
}

// appendPair writes " key=value", quoting values containing spaces,
// quotes or '='. Empty values are skipped.
func appendPair(buf *bytes.Buffer, key, value string) {
	if value == "" {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	if strings.ContainsAny(value, " =\"") {
		buf.Write(strconv.AppendQuote(buf.AvailableBuffer(), value))
	} else {
		buf.WriteString(value)
	}
}
