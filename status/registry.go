// Package status exposes the engine's per-frame counters as atomics so
// tools and overlays can observe a running room without touching its state.
package status

import "sync/atomic"

// Registry is the metrics facade for one room. The frame step writes
// directly to the atomics; readers may snapshot from any goroutine.
type Registry struct {
	FramesStepped  atomic.Int64
	PairsTested    atomic.Int64 // Narrow-phase tests run
	Collisions     atomic.Int64 // Pairs that actually overlapped
	CellMoves      atomic.Int64 // Bucket memberships added or removed
	LastStepMicros atomic.Int64 // Wall time of the most recent Step
}

// Snapshot is a point-in-time copy of the registry
type Snapshot struct {
	FramesStepped  int64
	PairsTested    int64
	Collisions     int64
	CellMoves      int64
	LastStepMicros int64
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot copies all counters
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		FramesStepped:  r.FramesStepped.Load(),
		PairsTested:    r.PairsTested.Load(),
		Collisions:     r.Collisions.Load(),
		CellMoves:      r.CellMoves.Load(),
		LastStepMicros: r.LastStepMicros.Load(),
	}
}
