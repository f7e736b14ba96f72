// Package sim implements the mycelium growth simulation: a node graph that
// branches under resource-gated random rules, three decaying resource pools
// and a periodically resampled want.
//
// A Simulator is not safe for concurrent use. Every frontend drives it from
// a single loop: Advance once per frame, AddResource on user input, and
// Snapshot to read state for drawing.
package sim

import (
	"math/rand"
	"time"

	"github.com/pthm-cable/mycelium/config"
	"github.com/pthm-cable/mycelium/systems"
)

// Params holds every tunable the simulator reads.
type Params struct {
	Resources       systems.ResourceParams
	Growth          systems.GrowthParams
	GrowthRate      float64 // per-frame probability of a growth attempt
	WantCycle       float64 // seconds between want resamples
	InitialBranches int
	NodeAging       bool
}

// ParamsFromConfig extracts simulator parameters from the loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Resources: systems.ResourceParams{
			Initial:        cfg.Resources.Initial,
			Max:            cfg.Resources.Max,
			WaterDecay:     cfg.Resources.WaterDecay,
			NutrientsDecay: cfg.Resources.NutrientsDecay,
		},
		Growth: systems.GrowthParams{
			MinWater:        cfg.Growth.MinWater,
			MinNutrients:    cfg.Growth.MinNutrients,
			Cost:            cfg.Growth.Cost,
			MaxBranchAge:    cfg.Growth.MaxBranchAge,
			MinBranchLength: cfg.Growth.MinBranchLength,
			MaxBranchLength: cfg.Growth.MaxBranchLength,
			UpwardBias:      cfg.Growth.UpwardBias,
		},
		GrowthRate:      cfg.Growth.Rate,
		WantCycle:       cfg.Want.CycleSeconds,
		InitialBranches: cfg.Growth.InitialBranches,
		NodeAging:       cfg.Growth.NodeAging,
	}
}

// DefaultParams returns parameters from the embedded config defaults.
func DefaultParams() Params {
	return ParamsFromConfig(config.Defaults())
}

// Step reports what happened during one Advance call.
type Step struct {
	WantChanged bool
	Want        systems.Want
	Grew        bool
}

// Simulator owns the growth graph, the resource pools and the want cycle.
type Simulator struct {
	params Params
	rng    *rand.Rand

	growth *systems.GrowthSystem
	pools  systems.ResourcePools
	want   systems.WantCycle
	rootID string

	elapsed float64
	frames  int64
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRand injects the random source used for every draw.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) {
		s.rng = rng
	}
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// New creates a simulator and resets it to the initial state.
// Without an option the random source is seeded from the clock.
func New(params Params, opts ...Option) *Simulator {
	s := &Simulator{params: params}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.growth = systems.NewGrowthSystem(params.Growth)
	s.Reset()
	return s
}

// Reset plants a fresh root with its initial branches and refills the pools.
func (s *Simulator) Reset() {
	s.rootID = s.growth.Seed(s.params.InitialBranches, s.rng)
	s.pools = systems.NewResourcePools(s.params.Resources)
	s.want = systems.NewWantCycle(s.params.WantCycle)
	s.elapsed = 0
	s.frames = 0
}

// Advance runs one frame of dt seconds: want cycle, decay, then at most one
// growth attempt. The growth roll happens once per call regardless of dt.
func (s *Simulator) Advance(dt float64) Step {
	s.elapsed += dt
	s.frames++

	var step Step
	step.WantChanged = s.want.Advance(dt, s.rng)
	step.Want = s.want.Current

	s.pools.Decay(s.params.Resources, dt)

	if s.params.NodeAging {
		s.growth.AgeNodes(dt)
	}

	if s.rng.Float64() < s.params.GrowthRate {
		step.Grew = s.AttemptGrowth()
	}
	return step
}

// AttemptGrowth sprouts one node from a random eligible parent when water
// and nutrients allow it. Returns true when a node was added.
func (s *Simulator) AttemptGrowth() bool {
	return s.growth.AttemptGrowth(&s.pools, s.rng)
}

// GrowNode sprouts a child from the given node. Unknown ids are ignored.
func (s *Simulator) GrowNode(parentID string) bool {
	_, ok := s.growth.GrowNode(parentID, s.rng)
	return ok
}

// AddResource feeds a pool, capped at the configured maximum.
func (s *Simulator) AddResource(kind systems.ResourceKind, amount float64) {
	s.pools.Add(s.params.Resources, kind, amount)
}

// Resources returns the current pool levels.
func (s *Simulator) Resources() systems.ResourcePools {
	return s.pools
}

// Want returns the currently demanded resource.
func (s *Simulator) Want() systems.Want {
	return s.want.Current
}

// RootID returns the id of the permanent root node.
func (s *Simulator) RootID() string {
	return s.rootID
}

// NodeCount returns the number of nodes without copying them.
func (s *Simulator) NodeCount() int {
	return s.growth.NodeCount()
}

// LinkCount returns the number of links.
func (s *Simulator) LinkCount() int {
	return s.growth.LinkCount()
}

// Elapsed returns the simulated seconds since the last reset.
func (s *Simulator) Elapsed() float64 {
	return s.elapsed
}

// Frames returns the number of Advance calls since the last reset.
func (s *Simulator) Frames() int64 {
	return s.frames
}

// Params returns the parameters the simulator was built with.
func (s *Simulator) Params() Params {
	return s.params
}
