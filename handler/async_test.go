package handler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/ctxlog/core"
)

// blockingInner blocks the worker on its first Handle call until
// released, so tests can fill the queue deterministically.
type blockingInner struct {
	memoryHandler
	started chan struct{}
	release chan struct{}
	first   sync.Once
}

func newBlockingInner() *blockingInner {
	return &blockingInner{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (b *blockingInner) Handle(r *core.Record) error {
	blocked := false
	b.first.Do(func() { blocked = true })
	if blocked {
		close(b.started)
		<-b.release
	}
	return b.memoryHandler.Handle(r)
}

func TestAsyncHandler_DeliversAll(t *testing.T) {
	inner := &memoryHandler{}
	h := NewAsyncHandler(inner, AsyncConfig{})

	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "one")))
	require.NoError(t, h.Handle(testRecord(core.WarnLevel, "two")))
	require.NoError(t, h.Handle(testRecord(core.ErrorLevel, "three")))
	require.NoError(t, h.Close())

	assert.Equal(t, []string{"one", "two", "three"}, inner.messages())
	assert.Equal(t, uint64(3), h.Stats().ProcessedTotal)
}

func TestAsyncHandler_DropNewest(t *testing.T) {
	inner := newBlockingInner()
	h := NewAsyncHandler(inner, AsyncConfig{
		BufferSize:     2,
		OverflowPolicy: map[core.Level]OverflowPolicy{core.InfoLevel: DropNewest},
	})

	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "w1")))
	<-inner.started

	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "q1")))
	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "q2")))
	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "overflow1")))
	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "overflow2")))

	assert.Equal(t, uint64(2), h.Stats().DroppedTotal[core.InfoLevel])

	close(inner.release)
	require.NoError(t, h.Close())

	assert.Equal(t, []string{"w1", "q1", "q2"}, inner.messages())
	assert.Equal(t, uint64(3), h.Stats().ProcessedTotal)
}

func TestAsyncHandler_DropOldest(t *testing.T) {
	inner := newBlockingInner()
	h := NewAsyncHandler(inner, AsyncConfig{
		BufferSize:     1,
		OverflowPolicy: map[core.Level]OverflowPolicy{core.WarnLevel: DropOldest},
	})

	require.NoError(t, h.Handle(testRecord(core.WarnLevel, "w1")))
	<-inner.started

	require.NoError(t, h.Handle(testRecord(core.WarnLevel, "old")))
	require.NoError(t, h.Handle(testRecord(core.WarnLevel, "new")))

	assert.Equal(t, uint64(1), h.Stats().DroppedTotal[core.WarnLevel])

	close(inner.release)
	require.NoError(t, h.Close())

	assert.Equal(t, []string{"w1", "new"}, inner.messages())
}

func TestAsyncHandler_BlockTimeout(t *testing.T) {
	inner := newBlockingInner()
	h := NewAsyncHandler(inner, AsyncConfig{
		BufferSize:     1,
		BlockTimeout:   20 * time.Millisecond,
		OverflowPolicy: map[core.Level]OverflowPolicy{core.ErrorLevel: Block},
	})

	require.NoError(t, h.Handle(testRecord(core.ErrorLevel, "w1")))
	<-inner.started
	require.NoError(t, h.Handle(testRecord(core.ErrorLevel, "q1")))

	// Queue full and the worker stuck: the record waits out the block
	// timeout, then the caller writes it synchronously.
	require.NoError(t, h.Handle(testRecord(core.ErrorLevel, "sync")))

	assert.Equal(t, []string{"sync"}, inner.messages())
	assert.Equal(t, uint64(1), h.Stats().BlockedTotal)

	close(inner.release)
	require.NoError(t, h.Close())

	assert.Equal(t, []string{"sync", "w1", "q1"}, inner.messages())
}

func TestAsyncHandler_HandleAfterClose(t *testing.T) {
	inner := &memoryHandler{}
	h := NewAsyncHandler(inner, AsyncConfig{})
	require.NoError(t, h.Close())

	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "late")))

	assert.Equal(t, []string{"late"}, inner.messages())
}

func TestAsyncHandler_CloseIdempotent(t *testing.T) {
	inner := &memoryHandler{closeErr: errors.New("sink failed to close")}
	h := NewAsyncHandler(inner, AsyncConfig{})

	err1 := h.Close()
	err2 := h.Close()

	assert.Error(t, err1)
	assert.Equal(t, err1, err2)
	assert.Equal(t, 1, inner.closeCount)
}

func TestAsyncHandler_WriteErrorKeepsWorkerAlive(t *testing.T) {
	var mu sync.Mutex
	var delivered []string
	calls := 0
	inner := Func(func(r *core.Record) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return errors.New("transient write failure")
		}
		delivered = append(delivered, r.Message)
		return nil
	})

	h := NewAsyncHandler(inner, AsyncConfig{})
	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "fails")))
	require.NoError(t, h.Handle(testRecord(core.InfoLevel, "succeeds")))
	require.NoError(t, h.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"succeeds"}, delivered)

	snap := h.Stats()
	assert.Equal(t, uint64(1), snap.WriteErrors)
	assert.Equal(t, uint64(1), snap.ProcessedTotal)
}

func BenchmarkAsyncHandler_DropNewest(b *testing.B) {
	h := NewAsyncHandler(Func(func(r *core.Record) error { return nil }), AsyncConfig{BufferSize: 1024})
	defer h.Close()

	r := testRecord(core.InfoLevel, "benchmark")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(r)
	}
}

func BenchmarkAsyncHandler_Block(b *testing.B) {
	h := NewAsyncHandler(Func(func(r *core.Record) error { return nil }), AsyncConfig{BufferSize: 1024})
	defer h.Close()

	r := testRecord(core.ErrorLevel, "benchmark")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(r)
	}
}
