package benchmark

import (
	"github.com/philipp01105/ctxlog/core"
	"github.com/philipp01105/ctxlog/handler"
)

// noopHandler accepts records and discards them, so a benchmark can
// measure the logger pipeline without formatting or write cost.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(r *core.Record) error {
	_ = len(r.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
