package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/ctxlog/core"
)

// MultiHandler fans each record out to every child handler. A failing
// child never stops delivery to the others; errors are combined.
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a handler that delivers to all of handlers
// in order.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]Handler, len(handlers))}
	copy(m.handlers, handlers)
	return m
}

// Handle delivers the record to every child and returns the combined
// error.
func (h *MultiHandler) Handle(r *core.Record) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Handle(r))
	}
	return err
}

// Close closes every child and returns the combined error.
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
