package handler

import (
	"sync/atomic"

	"github.com/philipp01105/ctxlog/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the incoming record when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest evicts the oldest queued record when the queue is full
	DropOldest
	// Block waits for queue space up to the configured timeout, then
	// falls back to a synchronous write
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default level-based overflow
// policies: routine records are droppable, errors block briefly
// rather than disappear.
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.DebugLevel: DropNewest,
		core.InfoLevel:  DropNewest,
		core.WarnLevel:  DropNewest,
		core.ErrorLevel: Block,
	}
}

// Stats tracks async handler activity. All counters are atomic; read
// a consistent view through GetSnapshot.
type Stats struct {
	droppedDebug   atomic.Uint64
	droppedInfo    atomic.Uint64
	droppedWarn    atomic.Uint64
	droppedError   atomic.Uint64
	blockedTotal   atomic.Uint64
	processedTotal atomic.Uint64
	writeErrors    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	switch level {
	case core.DebugLevel:
		s.droppedDebug.Add(1)
	case core.InfoLevel:
		s.droppedInfo.Add(1)
	case core.WarnLevel:
		s.droppedWarn.Add(1)
	case core.ErrorLevel:
		s.droppedError.Add(1)
	}
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	s.blockedTotal.Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processedTotal.Add(1)
}

// IncrementWriteError atomically increments the write error counter
func (s *Stats) IncrementWriteError() {
	s.writeErrors.Add(1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	switch level {
	case core.DebugLevel:
		return s.droppedDebug.Load()
	case core.InfoLevel:
		return s.droppedInfo.Load()
	case core.WarnLevel:
		return s.droppedWarn.Load()
	case core.ErrorLevel:
		return s.droppedError.Load()
	default:
		return 0
	}
}

// GetBlocked returns the blocked count
func (s *Stats) GetBlocked() uint64 {
	return s.blockedTotal.Load()
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return s.processedTotal.Load()
}

// GetWriteErrors returns the write error count
func (s *Stats) GetWriteErrors() uint64 {
	return s.writeErrors.Load()
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	return s.droppedDebug.Load() +
		s.droppedInfo.Load() +
		s.droppedWarn.Load() +
		s.droppedError.Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.droppedDebug.Store(0)
	s.droppedInfo.Store(0)
	s.droppedWarn.Store(0)
	s.droppedError.Store(0)
	s.blockedTotal.Store(0)
	s.processedTotal.Store(0)
	s.writeErrors.Store(0)
}

// Snapshot is a point-in-time copy of current stats
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
	WriteErrors    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		DroppedTotal: map[core.Level]uint64{
			core.DebugLevel: s.GetDropped(core.DebugLevel),
			core.InfoLevel:  s.GetDropped(core.InfoLevel),
			core.WarnLevel:  s.GetDropped(core.WarnLevel),
			core.ErrorLevel: s.GetDropped(core.ErrorLevel),
		},
		BlockedTotal:   s.GetBlocked(),
		ProcessedTotal: s.GetProcessed(),
		WriteErrors:    s.GetWriteErrors(),
	}
}
