package core

import (
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strings"
)

// Detailer is implemented by error types that carry structured detail
// beyond their message. The returned entries are copied into the
// record's error detail alongside name, message and stack.
type Detailer interface {
	ErrorDetails() map[string]any
}

// StackTracer is implemented by error types that captured their own
// stack at creation time. A non-empty result is preferred over a
// stack captured at the serialization site.
type StackTracer interface {
	StackTrace() string
}

// ErrorDetail is the normalized form of an error value attached to a
// record. Name and Stack may be empty; Extra holds additional
// structured properties contributed by the error itself.
type ErrorDetail struct {
	Name    string
	Message string
	Stack   string
	Extra   map[string]any
}

// MarshalJSON renders the detail as a single object with the Extra
// entries flattened in next to name, message and stack. Extra keys
// colliding with the fixed members lose.
func (d *ErrorDetail) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(d.Extra)+3)
	for k, v := range d.Extra {
		obj[k] = v
	}
	if d.Name != "" {
		obj["name"] = d.Name
	}
	obj["message"] = d.Message
	if d.Stack != "" {
		obj["stack"] = d.Stack
	}
	return json.Marshal(obj)
}

// SerializeError normalizes an arbitrary error value into an
// ErrorDetail:
//
//   - nil yields nil (no error detail).
//   - *ErrorDetail passes through unchanged.
//   - error values yield their type name, Error() message, Detailer
//     entries when implemented, and a stack when includeStack is set.
//   - anything else yields a detail carrying only the value's textual
//     rendering as the message, with no name and no stack.
func SerializeError(v any, includeStack bool) *ErrorDetail {
	switch e := v.(type) {
	case nil:
		return nil
	case *ErrorDetail:
		return e
	case error:
		d := &ErrorDetail{Name: errorName(e), Message: e.Error()}
		if det, ok := e.(Detailer); ok {
			if extra := det.ErrorDetails(); len(extra) > 0 {
				d.Extra = make(map[string]any, len(extra))
				for k, val := range extra {
					d.Extra[k] = val
				}
			}
		}
		if includeStack {
			d.Stack = errorStack(e)
		}
		return d
	default:
		return &ErrorDetail{Message: fmt.Sprint(v)}
	}
}

// errorName derives the wire name from the error's dynamic type, with
// the pointer marker trimmed.
func errorName(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}

func errorStack(err error) string {
	if st, ok := err.(StackTracer); ok {
		if s := st.StackTrace(); s != "" {
			return s
		}
	}
	return string(debug.Stack())
}
