package session

import (
	"testing"

	"github.com/pthm-cable/mycelium/sim"
	"github.com/pthm-cable/mycelium/systems"
	"github.com/pthm-cable/mycelium/telemetry"
)

type recordingCues struct {
	wants []systems.Want
	feeds []systems.ResourceKind
}

func (r *recordingCues) PlayWant(w systems.Want)          { r.wants = append(r.wants, w) }
func (r *recordingCues) PlayFeed(k systems.ResourceKind) { r.feeds = append(r.feeds, k) }

func newTestSession(t *testing.T, mutate func(*sim.Params), opts Options) (*Session, *recordingCues) {
	t.Helper()
	p := sim.DefaultParams()
	if mutate != nil {
		mutate(&p)
	}
	cues := &recordingCues{}
	opts.Cues = cues
	if opts.FeedAmount == 0 {
		opts.FeedAmount = 20
	}
	if opts.StatsWindowSec == 0 {
		opts.StatsWindowSec = 1
	}
	return New(sim.New(p, sim.WithSeed(7)), opts), cues
}

func TestTick_RecordsAndFlushes(t *testing.T) {
	var windows []telemetry.WindowStats
	s, cues := newTestSession(t, func(p *sim.Params) {
		p.GrowthRate = 1
		p.WantCycle = 0.05
	}, Options{StatsCallback: func(w telemetry.WindowStats) { windows = append(windows, w) }})

	// 8 x 0.125 lands exactly on the 1s window
	for i := 0; i < 8; i++ {
		step := s.Tick(0.125)
		if !step.WantChanged {
			t.Fatalf("tick %d: want should resample every frame", i)
		}
	}

	if len(cues.wants) != 8 {
		t.Errorf("want cues = %d, want 8", len(cues.wants))
	}
	if len(windows) != 1 {
		t.Fatalf("flushed %d windows, want 1", len(windows))
	}

	w := windows[0]
	if w.WantChanges != 8 {
		t.Errorf("want changes = %d, want 8", w.WantChanges)
	}
	if w.Growths == 0 {
		t.Error("expected growth with rate 1 and full pools")
	}
	if w.Nodes != 4+w.Growths || w.Links != w.Nodes-1 {
		t.Errorf("nodes = %d links = %d after %d growths", w.Nodes, w.Links, w.Growths)
	}
	if w.WindowEndFrame != 8 {
		t.Errorf("window end frame = %d, want 8", w.WindowEndFrame)
	}
}

func TestFeed(t *testing.T) {
	s, cues := newTestSession(t, nil, Options{})

	s.Feed(systems.ResourceDarkness)
	if got := s.Sim().Resources().Darkness; got != 70 {
		t.Errorf("darkness = %v, want 70", got)
	}
	if len(cues.feeds) != 1 || cues.feeds[0] != systems.ResourceDarkness {
		t.Errorf("feed cues = %v", cues.feeds)
	}

	stats := s.Flush()
	if stats.FeedsDarkness != 1 || stats.FeedsWater != 0 {
		t.Errorf("feeds = %d/%d/%d", stats.FeedsWater, stats.FeedsNutrients, stats.FeedsDarkness)
	}
}

func TestPause(t *testing.T) {
	s, _ := newTestSession(t, nil, Options{})

	if !s.TogglePause() {
		t.Fatal("TogglePause should report paused")
	}
	s.Tick(1)
	if s.Sim().Frames() != 0 || s.Sim().Elapsed() != 0 {
		t.Error("paused tick advanced the simulator")
	}

	// Feeding still applies while paused
	s.Feed(systems.ResourceWater)
	if got := s.Sim().Resources().Water; got != 70 {
		t.Errorf("water = %v, want 70", got)
	}

	s.TogglePause()
	s.Tick(1)
	if s.Sim().Frames() != 1 {
		t.Errorf("frames = %d, want 1", s.Sim().Frames())
	}
}

func TestMute(t *testing.T) {
	s, cues := newTestSession(t, nil, Options{})

	if !s.ToggleMute() || !s.Muted() {
		t.Fatal("expected muted")
	}
	s.Feed(systems.ResourceNutrients)
	if len(cues.feeds) != 0 {
		t.Error("muted session played a cue")
	}
}

func TestNilCues(t *testing.T) {
	s := New(sim.New(sim.DefaultParams(), sim.WithSeed(1)), Options{FeedAmount: 20, StatsWindowSec: 1})
	if !s.Muted() {
		t.Error("session without cues should report muted")
	}
	s.Feed(systems.ResourceWater)
	s.Tick(0.5)
}

func TestReset(t *testing.T) {
	s, _ := newTestSession(t, func(p *sim.Params) { p.GrowthRate = 1 }, Options{})
	for i := 0; i < 5; i++ {
		s.Tick(0.1)
	}
	s.Reset()

	if n := s.Sim().NodeCount(); n != 4 {
		t.Errorf("nodes after reset = %d, want 4", n)
	}
	stats := s.Flush()
	if stats.Growths != 0 {
		t.Errorf("growths after reset = %d, want 0", stats.Growths)
	}
}

func TestPerfTracksTicks(t *testing.T) {
	s, _ := newTestSession(t, nil, Options{PerfWindow: 4})

	if s.Perf().TicksPerSecond != 0 {
		t.Error("perf should be empty before any tick")
	}
	for i := 0; i < 6; i++ {
		s.Tick(0.01)
	}
	stats := s.Perf()
	if stats.MaxTick < stats.MinTick {
		t.Errorf("max %v < min %v", stats.MaxTick, stats.MinTick)
	}

	// Paused ticks are not timed
	s.TogglePause()
	before := s.Perf()
	s.Tick(0.01)
	if s.Perf() != before {
		t.Error("paused tick changed perf stats")
	}
}
