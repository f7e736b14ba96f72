package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/mycelium/config"
	"github.com/pthm-cable/mycelium/hud"
	"github.com/pthm-cable/mycelium/session"
	"github.com/pthm-cable/mycelium/sim"
	"github.com/pthm-cable/mycelium/systems"
	"github.com/pthm-cable/mycelium/telemetry"
)

const (
	frameDT     = 1.0 / 60.0
	statsWindow = 10.0 // seconds
)

// Player is the scripted user: every FeedInterval seconds it feeds the
// wanted resource, or the emptier of water and nutrients when the want is
// already above FullLevel.
type Player struct {
	FeedInterval float64
	FullLevel    float64
}

// Choose picks the pool to feed.
func (p Player) Choose(pools systems.ResourcePools, want systems.Want) systems.ResourceKind {
	if k := want.Resource(); pools.Get(k) < p.FullLevel {
		return k
	}
	if pools.Water <= pools.Nutrients {
		return systems.ResourceWater
	}
	return systems.ResourceNutrients
}

// FitnessEvaluator runs headless sessions and scores how close growth
// pacing comes to the target.
type FitnessEvaluator struct {
	params     *ParamVector
	baseConfig *config.Config
	seeds      []int64
	duration   float64 // simulated seconds per run
	target     float64 // nodes per minute
	player     Player

	mu          sync.Mutex
	lastMetrics Metrics
}

// Metrics summarizes one evaluation averaged over seeds.
type Metrics struct {
	NodesPerMin  float64
	DormantFrac  float64 // share of frames with the growth gate closed
	FeedsPerMin  float64
	GrowthStdDev float64 // spread of per-window growth rates, nodes/min
}

// steadinessWeight scales the penalty for bursty growth.
const steadinessWeight = 0.25

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, baseCfg *config.Config, seeds []int64, duration, target float64, player Player) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		baseConfig: baseCfg,
		seeds:      seeds,
		duration:   duration,
		target:     target,
		player:     player,
	}
}

// LastMetrics returns the metrics from the most recent evaluation.
func (fe *FitnessEvaluator) LastMetrics() Metrics {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastMetrics
}

// Evaluate computes fitness for a raw parameter vector (lower = better):
// squared relative error of the growth rate plus the dormant share.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Run all seeds in parallel
	results := make([]Metrics, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.run(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var avg Metrics
	for _, m := range results {
		avg.NodesPerMin += m.NodesPerMin
		avg.DormantFrac += m.DormantFrac
		avg.FeedsPerMin += m.FeedsPerMin
		avg.GrowthStdDev += m.GrowthStdDev
	}
	n := float64(len(results))
	avg.NodesPerMin /= n
	avg.DormantFrac /= n
	avg.FeedsPerMin /= n
	avg.GrowthStdDev /= n

	fe.mu.Lock()
	fe.lastMetrics = avg
	fe.mu.Unlock()

	return Score(avg, fe.target)
}

// Score combines metrics into a single value to minimize: squared relative
// error against the target rate, the dormant share, and a penalty for
// uneven growth across windows.
func Score(m Metrics, target float64) float64 {
	rel := (m.NodesPerMin - target) / target
	spread := m.GrowthStdDev / target
	return rel*rel + m.DormantFrac + steadinessWeight*spread*spread
}

// run plays one seeded session.
func (fe *FitnessEvaluator) run(cfg *config.Config, seed int64) Metrics {
	var windows []telemetry.WindowStats
	s := sim.New(sim.ParamsFromConfig(cfg), sim.WithSeed(seed))
	sess := session.New(s, session.Options{
		FeedAmount:     cfg.UI.FeedAmount,
		StatsWindowSec: statsWindow,
		StatsCallback:  func(w telemetry.WindowStats) { windows = append(windows, w) },
	})

	growth := s.Params().Growth
	startNodes := s.NodeCount()
	frames := int(math.Round(fe.duration / frameDT))
	feedEvery := max(1, int(math.Round(fe.player.FeedInterval/frameDT)))

	var dormant, feeds int
	for f := 1; f <= frames; f++ {
		sess.Tick(frameDT)
		if hud.StatusFor(s.Resources(), growth) == hud.StatusDormant {
			dormant++
		}
		if f%feedEvery == 0 {
			sess.Feed(fe.player.Choose(s.Resources(), s.Want()))
			feeds++
		}
	}

	rates := make([]float64, len(windows))
	for i, w := range windows {
		rates[i] = w.GrowthPerSec * 60
	}
	minutes := fe.duration / 60
	return Metrics{
		NodesPerMin:  float64(s.NodeCount()-startNodes) / minutes,
		DormantFrac:  float64(dormant) / float64(frames),
		FeedsPerMin:  float64(feeds) / minutes,
		GrowthStdDev: telemetry.ComputePoolStats(rates).Std,
	}
}

// copyConfig returns a shallow copy of the base config. Config holds only
// value fields, so a struct copy is independent.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	c := *fe.baseConfig
	return &c
}
