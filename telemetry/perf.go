package telemetry

import (
	"log/slog"
	"time"
)

// Phase is a timed section of one frame.
type Phase uint8

const (
	PhaseSimulate  Phase = iota // simulator advance
	PhaseTelemetry              // sampling and window flush
	numPhases
)

func (p Phase) String() string {
	switch p {
	case PhaseSimulate:
		return "simulate"
	case PhaseTelemetry:
		return "telemetry"
	}
	return "unknown"
}

// perfSample holds timing data for a single tick.
type perfSample struct {
	tick   time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector tracks frame timings over a rolling window of ticks.
type PerfCollector struct {
	samples     []perfSample
	writeIndex  int
	sampleCount int

	current    perfSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	// Frame timing (graphics mode)
	lastFrameTime time.Time
	frameDuration time.Duration

	now func() time.Time
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of ticks to average over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		samples: make([]perfSample, windowSize),
		now:     time.Now,
	}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.current = perfSample{}
	p.inPhase = false
}

// StartPhase ends the running phase, if any, and begins timing phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := p.now()
	p.endPhase(now)
	p.phaseStart = now
	p.phase = phase
	p.inPhase = true
}

func (p *PerfCollector) endPhase(now time.Time) {
	if p.inPhase && p.phase < numPhases {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
	p.inPhase = false
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.endPhase(now)
	p.current.tick = now.Sub(p.tickStart)

	p.samples[p.writeIndex] = p.current
	p.writeIndex = (p.writeIndex + 1) % len(p.samples)
	if p.sampleCount < len(p.samples) {
		p.sampleCount++
	}
}

// RecordFrame records wall time between rendered frames.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgTick time.Duration
	MinTick time.Duration
	MaxTick time.Duration

	// Share of average tick time per phase, 0..100
	PhasePct [numPhases]float64

	TicksPerSecond float64
	FPS            float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	var stats PerfStats
	if p.frameDuration > 0 {
		stats.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.sampleCount == 0 {
		return stats
	}

	var total time.Duration
	var phaseSum [numPhases]time.Duration
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		total += s.tick
		if i == 0 || s.tick < stats.MinTick {
			stats.MinTick = s.tick
		}
		if s.tick > stats.MaxTick {
			stats.MaxTick = s.tick
		}
		for ph, d := range s.phases {
			phaseSum[ph] += d
		}
	}

	stats.AvgTick = total / time.Duration(p.sampleCount)
	if total > 0 {
		for ph, sum := range phaseSum {
			stats.PhasePct[ph] = float64(sum) / float64(total) * 100
		}
	}
	if stats.AvgTick > 0 {
		stats.TicksPerSecond = float64(time.Second) / float64(stats.AvgTick)
	}
	return stats
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("min_tick_us", s.MinTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for ph := Phase(0); ph < numPhases; ph++ {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.PhasePct[ph]))
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf", s)
}

// PerfRecord is a flat row for perf.csv.
type PerfRecord struct {
	WindowEnd    int64   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	SimulatePct  float64 `csv:"simulate_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// Record converts stats to a CSV row for the window ending at frame.
func (s PerfStats) Record(windowEnd int64) PerfRecord {
	return PerfRecord{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTick.Microseconds(),
		MinTickUS:    s.MinTick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		SimulatePct:  s.PhasePct[PhaseSimulate],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
