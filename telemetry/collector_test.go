package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/mycelium/systems"
)

func TestCollector_ShouldFlush(t *testing.T) {
	c := NewCollector(10)

	if c.ShouldFlush(9.99) {
		t.Error("flush before window elapsed")
	}
	if !c.ShouldFlush(10) {
		t.Error("no flush at window end")
	}

	c.Flush(WindowState{ElapsedSec: 10, Frame: 600})
	if c.ShouldFlush(15) {
		t.Error("second window flushed early")
	}
	if !c.ShouldFlush(20.5) {
		t.Error("second window not flushed")
	}
}

func TestCollector_NonPositiveWindow(t *testing.T) {
	c := NewCollector(0)
	if c.WindowDurationSec() != 1 {
		t.Errorf("window = %v, want fallback of 1", c.WindowDurationSec())
	}
}

func TestCollector_FlushCounts(t *testing.T) {
	c := NewCollector(10)

	for i := 0; i < 5; i++ {
		c.RecordGrowth()
	}
	c.RecordWantChange()
	c.RecordFeed(systems.ResourceWater)
	c.RecordFeed(systems.ResourceWater)
	c.RecordFeed(systems.ResourceDarkness)

	c.Sample(systems.ResourcePools{Water: 40, Nutrients: 30, Darkness: 50})
	c.Sample(systems.ResourcePools{Water: 60, Nutrients: 10, Darkness: 50})

	stats := c.Flush(WindowState{ElapsedSec: 10, Frame: 600, Nodes: 9, Links: 8, Want: systems.WantDarkness})

	if stats.Growths != 5 {
		t.Errorf("growths = %d, want 5", stats.Growths)
	}
	if math.Abs(stats.GrowthPerSec-0.5) > 1e-9 {
		t.Errorf("growth/sec = %v, want 0.5", stats.GrowthPerSec)
	}
	if stats.WantChanges != 1 {
		t.Errorf("want changes = %d, want 1", stats.WantChanges)
	}
	if stats.FeedsWater != 2 || stats.FeedsNutrients != 0 || stats.FeedsDarkness != 1 {
		t.Errorf("feeds = %d/%d/%d, want 2/0/1", stats.FeedsWater, stats.FeedsNutrients, stats.FeedsDarkness)
	}
	if stats.WaterMean != 50 || stats.WaterMin != 40 || stats.WaterMax != 60 {
		t.Errorf("water stats = %v/%v/%v", stats.WaterMean, stats.WaterMin, stats.WaterMax)
	}
	if stats.NutrientsMean != 20 {
		t.Errorf("nutrients mean = %v, want 20", stats.NutrientsMean)
	}
	if stats.Want != "Darkness" || stats.Nodes != 9 || stats.Links != 8 {
		t.Errorf("state not carried: %+v", stats)
	}
	if stats.WindowStartFrame != 0 || stats.WindowEndFrame != 600 {
		t.Errorf("frames = %d..%d, want 0..600", stats.WindowStartFrame, stats.WindowEndFrame)
	}

	// Counters reset for the next window
	next := c.Flush(WindowState{ElapsedSec: 20, Frame: 1200})
	if next.Growths != 0 || next.WantChanges != 0 || next.FeedsWater != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WaterMean != 0 {
		t.Errorf("samples not reset: water mean %v", next.WaterMean)
	}
	if next.WindowStartFrame != 600 {
		t.Errorf("next window start = %d, want 600", next.WindowStartFrame)
	}
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector(10)
	c.RecordGrowth()
	c.Flush(WindowState{ElapsedSec: 30, Frame: 1800})

	c.Reset()
	if c.ShouldFlush(5) {
		t.Error("reset should restart timing from zero")
	}
}
