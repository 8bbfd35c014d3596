package handler

import (
	"sync"
	"time"

	"github.com/philipp01105/ctxlog/core"
)

// AsyncConfig configures an AsyncHandler.
type AsyncConfig struct {
	// BufferSize is the queue capacity. Defaults to 1000.
	BufferSize int

	// OverflowPolicy maps each level to its behavior when the queue
	// is full. Defaults to DefaultLevelPolicy().
	OverflowPolicy map[core.Level]OverflowPolicy

	// BlockTimeout bounds how long a Block-policy record waits for
	// queue space before falling back to a synchronous write.
	// Defaults to 100ms.
	BlockTimeout time.Duration

	// DrainTimeout bounds how long Close waits for queued records to
	// flush. Defaults to 5s.
	DrainTimeout time.Duration
}

// AsyncHandler decouples record production from a slow inner handler
// through a bounded queue and a single worker goroutine. Queue
// overflow behavior is chosen per level, so routine records can be
// dropped while errors wait for space.
type AsyncHandler struct {
	inner          Handler
	queue          chan *core.Record
	overflowPolicy map[core.Level]OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	stats          *Stats
	wg             sync.WaitGroup
	closed         chan struct{}
	closeOnce      sync.Once
	closeErr       error
}

// NewAsyncHandler wraps inner with an asynchronous queue. The zero
// config applies all defaults.
func NewAsyncHandler(inner Handler, config AsyncConfig) *AsyncHandler {
	if config.BufferSize <= 0 {
		config.BufferSize = 1000
	}
	if config.OverflowPolicy == nil {
		config.OverflowPolicy = DefaultLevelPolicy()
	}
	if config.BlockTimeout <= 0 {
		config.BlockTimeout = 100 * time.Millisecond
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = 5 * time.Second
	}

	h := &AsyncHandler{
		inner:          inner,
		queue:          make(chan *core.Record, config.BufferSize),
		overflowPolicy: config.OverflowPolicy,
		blockTimeout:   config.BlockTimeout,
		drainTimeout:   config.DrainTimeout,
		stats:          NewStats(),
		closed:         make(chan struct{}),
	}

	h.wg.Add(1)
	go h.process()

	return h
}

// Handle enqueues the record for the worker. When the queue is full
// the level's overflow policy decides: drop it, evict the oldest
// queued record, or wait up to the block timeout. After Close the
// record is written synchronously so nothing is lost during shutdown.
func (h *AsyncHandler) Handle(r *core.Record) error {
	select {
	case <-h.closed:
		return h.write(r)
	default:
	}

	policy, ok := h.overflowPolicy[r.Level]
	if !ok {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case h.queue <- r:
			return nil
		default:
		}
		timer := time.NewTimer(h.blockTimeout)
		defer timer.Stop()
		select {
		case h.queue <- r:
			return nil
		case <-timer.C:
			h.stats.IncrementBlocked()
			return h.write(r)
		case <-h.closed:
			return h.write(r)
		}

	case DropOldest:
		select {
		case h.queue <- r:
			return nil
		default:
		}
		select {
		case dropped := <-h.queue:
			h.stats.IncrementDropped(dropped.Level)
		default:
		}
		select {
		case h.queue <- r:
		default:
			h.stats.IncrementDropped(r.Level)
		}
		return nil

	default: // DropNewest
		select {
		case h.queue <- r:
		default:
			h.stats.IncrementDropped(r.Level)
		}
		return nil
	}
}

func (h *AsyncHandler) write(r *core.Record) error {
	if err := h.inner.Handle(r); err != nil {
		h.stats.IncrementWriteError()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

func (h *AsyncHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case r := <-h.queue:
			// A write error must not kill the worker: it is counted
			// and the loop continues.
			_ = h.write(r)
		case <-h.closed:
			deadline := time.After(h.drainTimeout)
			for {
				select {
				case r := <-h.queue:
					_ = h.write(r)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// Close stops the worker after draining queued records, then closes
// the inner handler. Safe to call more than once.
func (h *AsyncHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
		h.wg.Wait()
		h.closeErr = h.inner.Close()
	})
	return h.closeErr
}

// Stats returns a snapshot of queue activity counters.
func (h *AsyncHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}
