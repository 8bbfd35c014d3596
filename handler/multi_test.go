package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/philipp01105/ctxlog/core"
)

func TestMultiHandler_FansOut(t *testing.T) {
	first := &memoryHandler{}
	second := &memoryHandler{}
	h := NewMultiHandler(first, second)

	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "both")))

	assert.Equal(t, []string{"both"}, first.messages())
	assert.Equal(t, []string{"both"}, second.messages())
}

func TestMultiHandler_DeliversDespiteFailure(t *testing.T) {
	failing := Func(func(r *core.Record) error {
		return errors.New("sink unavailable")
	})
	second := &memoryHandler{}
	h := NewMultiHandler(failing, second)

	err := h.Handle(testRecord(core.WarnLevel, "still delivered"))

	assert.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Equal(t, []string{"still delivered"}, second.messages())
}

func TestMultiHandler_CloseCombinesErrors(t *testing.T) {
	first := &memoryHandler{closeErr: errors.New("first close failed")}
	second := &memoryHandler{closeErr: errors.New("second close failed")}
	h := NewMultiHandler(first, second)

	err := h.Close()

	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, 1, first.closeCount)
	assert.Equal(t, 1, second.closeCount)
}

func TestMultiHandler_CopiesHandlerSlice(t *testing.T) {
	first := &memoryHandler{}
	handlers := []Handler{first}
	h := NewMultiHandler(handlers...)

	handlers[0] = &memoryHandler{}
	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "kept")))

	assert.Equal(t, []string{"kept"}, first.messages())
}

func TestMultiHandler_Empty(t *testing.T) {
	h := NewMultiHandler()

	assert.NoError(t, h.Handle(testRecord(core.InfoLevel, "nowhere")))
	assert.NoError(t, h.Close())
}
