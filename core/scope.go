package core

// Scope is the ambient identity of the operation a record belongs to:
// the trace, request and user identifiers extracted from the calling
// context. An empty field is absent and stays off the wire.
type Scope struct {
	TraceID   string
	RequestID string
	UserID    string
}

// IsZero reports whether no field is set
func (s Scope) IsZero() bool {
	return s == Scope{}
}
