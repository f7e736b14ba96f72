package systems

import (
	"fmt"
	"math/rand"
)

// Want is the resource the organism currently asks for.
type Want uint8

const (
	WantWater Want = iota
	WantNutrients
	WantDarkness
)

// Wants lists every want in sampling order.
var Wants = [...]Want{WantWater, WantNutrients, WantDarkness}

func (w Want) String() string {
	switch w {
	case WantWater:
		return "Water"
	case WantNutrients:
		return "Nutrients"
	case WantDarkness:
		return "Darkness"
	default:
		return fmt.Sprintf("Want(%d)", uint8(w))
	}
}

// Resource returns the pool that satisfies this want.
func (w Want) Resource() ResourceKind {
	return ResourceKind(w)
}

// WantCycle accumulates elapsed time and resamples the want each cycle.
type WantCycle struct {
	Current Want
	Timer   float64
	Period  float64
}

// NewWantCycle starts a cycle asking for water with a zero timer.
func NewWantCycle(period float64) WantCycle {
	return WantCycle{Current: WantWater, Period: period}
}

// Advance adds dt to the timer. Once the timer exceeds the period it resets
// to zero (the overshoot is discarded) and a new want is drawn uniformly,
// possibly the same one. Returns true when a resample happened.
func (c *WantCycle) Advance(dt float64, rng *rand.Rand) bool {
	c.Timer += dt
	if c.Timer <= c.Period {
		return false
	}
	c.Timer = 0
	c.Current = Wants[rng.Intn(len(Wants))]
	return true
}
