// Package formatter defines how log records are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which renders into a caller-provided bytes.Buffer.
// Handlers check for the richer interfaces at construction time and
// prefer them when available: the console handler writes through
// FormatTo, and the file handler renders through FormatRecord into its
// own pooled buffer before taking the write lock.
//
// Both built-in formatters implement all three interfaces. They use a
// pooled bytes.Buffer internally and rely on Go's Append-style
// functions (time.AppendFormat, strconv.AppendQuote) to avoid per-call
// allocations. The fixed JSON envelope is built by hand; only the
// open-ended parts (metadata maps, error details) go through
// encoding/json, which also keeps their key order deterministic.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large record from permanently inflating memory usage.
package formatter
