// Package core defines the record model shared across the ctxlog
// framework.
//
// It provides the Level type for severity filtering, the Metadata map
// with its layering Merge semantics, the Scope type carrying ambient
// trace/request/user identity, the ErrorDetail type that errors of any
// shape normalize into, and the Record type representing a single log
// event.
//
// Records are assembled exactly once, by NewRecord, and treated as
// read-only from then on. Handlers are free to retain a record past
// the Handle call (the async wrapper queues them), which is safe
// precisely because nothing mutates a record after construction.
//
// The metadata key "error" is reserved: NewRecord lifts it out of the
// merged metadata and normalizes its value through SerializeError, so
// error data appears on a record exactly once, in the Err field.
package core
