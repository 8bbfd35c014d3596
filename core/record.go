package core

import "time"

// Record represents one fully assembled log event: merged metadata,
// ambient scope and normalized error detail. Records are read-only
// once built; handlers may retain them past the Handle call but must
// never mutate them.
type Record struct {
	Time      time.Time
	Level     Level
	Message   string
	Metadata  Metadata
	TraceID   string
	RequestID string
	UserID    string
	Err       *ErrorDetail
}

// NewRecord assembles a record from already-merged metadata and an
// extracted scope. The meta map is owned by the record afterwards: a
// value stored under ErrorKey is removed and normalized into Err, and
// the map is dropped entirely when nothing else remains, so empty
// metadata never reaches the wire.
func NewRecord(t time.Time, level Level, msg string, meta Metadata, sc Scope, includeStack bool) *Record {
	r := &Record{
		Time:      t,
		Level:     level,
		Message:   msg,
		TraceID:   sc.TraceID,
		RequestID: sc.RequestID,
		UserID:    sc.UserID,
	}
	if len(meta) > 0 {
		if v, ok := meta[ErrorKey]; ok {
			delete(meta, ErrorKey)
			r.Err = SerializeError(v, includeStack)
		}
		if len(meta) > 0 {
			r.Metadata = meta
		}
	}
	return r
}
