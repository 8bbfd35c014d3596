package core

import "maps"

// ErrorKey is the reserved metadata key. A value stored under it is
// lifted out of the metadata during record construction and normalized
// into the record's error detail; it never reaches the wire as a
// metadata member.
const ErrorKey = "error"

// Metadata is the open key-value set attached to log records. Values
// must be encodable by the configured formatter; the bundled
// formatters accept anything encoding/json can handle.
type Metadata map[string]any

// Merge returns a new map holding the receiver's entries with other's
// entries layered on top, other overriding key-by-key. Neither input
// is mutated. Merging two empty maps returns nil.
func (m Metadata) Merge(other Metadata) Metadata {
	if len(m) == 0 && len(other) == 0 {
		return nil
	}
	merged := make(Metadata, len(m)+len(other))
	maps.Copy(merged, m)
	maps.Copy(merged, other)
	return merged
}

// Clone returns a shallow copy of m, or nil when m is empty.
func (m Metadata) Clone() Metadata {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}

// With returns a copy of m with key set to value.
func (m Metadata) With(key string, value any) Metadata {
	merged := make(Metadata, len(m)+1)
	maps.Copy(merged, m)
	merged[key] = value
	return merged
}
