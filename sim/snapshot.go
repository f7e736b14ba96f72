package sim

import (
	"log/slog"

	"github.com/pthm-cable/mycelium/systems"
)

// Snapshot is a read-only copy of simulator state for drawing.
type Snapshot struct {
	Nodes     []systems.GrowthNode
	Links     []systems.Link
	Resources systems.ResourcePools
	Want      systems.Want
	WantTimer float64
	Elapsed   float64
	Frames    int64
}

// Snapshot copies the current state. The returned slices are owned by
// the caller.
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{
		Nodes:     s.growth.Nodes(),
		Links:     s.growth.Links(),
		Resources: s.pools,
		Want:      s.want.Current,
		WantTimer: s.want.Timer,
		Elapsed:   s.elapsed,
		Frames:    s.frames,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("nodes", len(s.Nodes)),
		slog.Int("links", len(s.Links)),
		slog.Any("resources", s.Resources),
		slog.String("want", s.Want.String()),
		slog.Float64("elapsed", s.Elapsed),
	)
}
