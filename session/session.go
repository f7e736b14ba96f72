// Package session drives one simulator on behalf of a frontend. It advances
// frames, applies feeds, records telemetry windows and triggers audio cues,
// so the raylib, terminal and headless loops share the same bookkeeping.
package session

import (
	"log/slog"

	"github.com/pthm-cable/mycelium/sim"
	"github.com/pthm-cable/mycelium/systems"
	"github.com/pthm-cable/mycelium/telemetry"
)

// Cues is notified of events worth a sound.
type Cues interface {
	PlayWant(systems.Want)
	PlayFeed(systems.ResourceKind)
}

// Options configures a Session.
type Options struct {
	FeedAmount     float64
	StatsWindowSec float64
	LogStats       bool
	Output         *telemetry.OutputManager // nil disables CSV output
	Cues           Cues                     // nil disables sound
	StatsCallback  func(telemetry.WindowStats)

	// PerfWindow is the number of ticks averaged for perf stats (0 = 60).
	PerfWindow int
}

// Session wraps a simulator with telemetry and cue hooks.
// Like the simulator it is driven from a single goroutine.
type Session struct {
	sim       *sim.Simulator
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	opts      Options

	paused bool
	muted  bool
}

// New creates a session around an existing simulator.
func New(s *sim.Simulator, opts Options) *Session {
	return &Session{
		sim:       s,
		collector: telemetry.NewCollector(opts.StatsWindowSec),
		perf:      telemetry.NewPerfCollector(opts.PerfWindow),
		opts:      opts,
	}
}

// Sim returns the wrapped simulator.
func (s *Session) Sim() *sim.Simulator {
	return s.sim
}

// Tick advances one frame unless paused.
func (s *Session) Tick(dt float64) sim.Step {
	if s.paused {
		return sim.Step{Want: s.sim.Want()}
	}

	s.perf.StartTick()
	defer s.perf.EndTick()

	s.perf.StartPhase(telemetry.PhaseSimulate)
	step := s.sim.Advance(dt)

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	if step.Grew {
		s.collector.RecordGrowth()
	}
	if step.WantChanged {
		s.collector.RecordWantChange()
		if s.cuesOn() {
			s.opts.Cues.PlayWant(step.Want)
		}
	}
	s.collector.Sample(s.sim.Resources())

	if s.collector.ShouldFlush(s.sim.Elapsed()) {
		s.Flush()
	}
	return step
}

// RecordFrame notes a rendered frame for FPS tracking.
func (s *Session) RecordFrame() {
	s.perf.RecordFrame()
}

// Perf returns timing stats over the recent ticks.
func (s *Session) Perf() telemetry.PerfStats {
	return s.perf.Stats()
}

// Feed adds the configured amount to one pool.
// Feeding works while paused.
func (s *Session) Feed(kind systems.ResourceKind) {
	s.sim.AddResource(kind, s.opts.FeedAmount)
	s.collector.RecordFeed(kind)
	if s.cuesOn() {
		s.opts.Cues.PlayFeed(kind)
	}
	slog.Debug("feed", "kind", kind.String(), "level", s.sim.Resources().Get(kind))
}

// Reset replants the organism and starts a new telemetry window.
func (s *Session) Reset() {
	s.sim.Reset()
	s.collector.Reset()
	slog.Info("reset", "root", s.sim.RootID())
}

// TogglePause flips the pause state and returns the new value.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Paused reports whether ticks are suspended.
func (s *Session) Paused() bool {
	return s.paused
}

// ToggleMute flips whether cues are played and returns the new value.
func (s *Session) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Muted reports whether cues are suppressed.
func (s *Session) Muted() bool {
	return s.muted || s.opts.Cues == nil
}

func (s *Session) cuesOn() bool {
	return s.opts.Cues != nil && !s.muted
}

// Flush closes the current telemetry window and emits it.
func (s *Session) Flush() telemetry.WindowStats {
	stats := s.collector.Flush(telemetry.WindowState{
		ElapsedSec: s.sim.Elapsed(),
		Frame:      s.sim.Frames(),
		Nodes:      s.sim.NodeCount(),
		Links:      s.sim.LinkCount(),
		Want:       s.sim.Want(),
	})

	if s.opts.StatsCallback != nil {
		s.opts.StatsCallback(stats)
	}
	perf := s.perf.Stats()
	if s.opts.LogStats {
		stats.LogStats()
		perf.LogStats()
	}
	if err := s.opts.Output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := s.opts.Output.WritePerf(perf, stats.WindowEndFrame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
	return stats
}
