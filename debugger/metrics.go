package debugger

import "sync/atomic"

// Metrics tracks session activity for diagnostics. None of these
// counters participate in the wire protocol; they exist purely so an
// embedding host can expose adapter health, grounded on the teacher's
// ClientMetrics convention of atomic counters read without locking.
type Metrics struct {
	FramesRead      atomic.Uint64
	FramesWritten   atomic.Uint64
	BytesRead       atomic.Uint64
	BytesWritten    atomic.Uint64
	DispatchFailed  atomic.Uint64
	WriteFailed     atomic.Uint64
}

// Snapshot is a point-in-time copy of Metrics suitable for logging or
// display.
type Snapshot struct {
	FramesRead     uint64
	FramesWritten  uint64
	BytesRead      uint64
	BytesWritten   uint64
	DispatchFailed uint64
	WriteFailed    uint64
}

// Snapshot reads all counters without blocking writers.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		FramesRead:     m.FramesRead.Load(),
		FramesWritten:  m.FramesWritten.Load(),
		BytesRead:      m.BytesRead.Load(),
		BytesWritten:   m.BytesWritten.Load(),
		DispatchFailed: m.DispatchFailed.Load(),
		WriteFailed:    m.WriteFailed.Load(),
	}
}
