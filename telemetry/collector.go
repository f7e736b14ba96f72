package telemetry

import "github.com/pthm-cable/mycelium/systems"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStartSec   float64
	windowStartFrame int64

	// Event counters for current window
	growths     int
	wantChanges int
	feeds       [len(systems.ResourceKinds)]int

	// Per-frame pool samples
	water     []float64
	nutrients []float64
	darkness  []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 1
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// RecordGrowth records a new node.
func (c *Collector) RecordGrowth() {
	c.growths++
}

// RecordWantChange records a want resample.
func (c *Collector) RecordWantChange() {
	c.wantChanges++
}

// RecordFeed records a user feed action.
func (c *Collector) RecordFeed(kind systems.ResourceKind) {
	if int(kind) < len(c.feeds) {
		c.feeds[kind]++
	}
}

// Sample records the pool levels for one frame.
func (c *Collector) Sample(pools systems.ResourcePools) {
	c.water = append(c.water, pools.Water)
	c.nutrients = append(c.nutrients, pools.Nutrients)
	c.darkness = append(c.darkness, pools.Darkness)
}

// ShouldFlush returns true if enough simulated time has passed to flush the window.
func (c *Collector) ShouldFlush(elapsedSec float64) bool {
	return elapsedSec-c.windowStartSec >= c.windowDurationSec
}

// WindowState is the simulator state captured at the end of a window.
type WindowState struct {
	ElapsedSec float64
	Frame      int64
	Nodes      int
	Links      int
	Want       systems.Want
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(state WindowState) WindowStats {
	duration := state.ElapsedSec - c.windowStartSec

	var growthPerSec float64
	if duration > 0 {
		growthPerSec = float64(c.growths) / duration
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   state.Frame,
		SimTimeSec:       state.ElapsedSec,

		Nodes: state.Nodes,
		Links: state.Links,
		Want:  state.Want.String(),

		Growths:      c.growths,
		GrowthPerSec: growthPerSec,
		WantChanges:  c.wantChanges,

		FeedsWater:     c.feeds[systems.ResourceWater],
		FeedsNutrients: c.feeds[systems.ResourceNutrients],
		FeedsDarkness:  c.feeds[systems.ResourceDarkness],
	}
	stats.setPools(
		ComputePoolStats(c.water),
		ComputePoolStats(c.nutrients),
		ComputePoolStats(c.darkness),
	)

	// Reset for next window
	c.windowStartSec = state.ElapsedSec
	c.windowStartFrame = state.Frame
	c.growths = 0
	c.wantChanges = 0
	c.feeds = [len(systems.ResourceKinds)]int{}
	c.water = c.water[:0]
	c.nutrients = c.nutrients[:0]
	c.darkness = c.darkness[:0]

	return stats
}

// Reset discards the current window and restarts timing from zero.
func (c *Collector) Reset() {
	c.Flush(WindowState{})
}

// WindowDurationSec returns the window length in simulated seconds.
func (c *Collector) WindowDurationSec() float64 {
	return c.windowDurationSec
}
