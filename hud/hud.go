// Package hud describes the resource overlay independently of any graphics
// backend: which bars to show, the want banner, the feed actions and where
// everything goes on screen. The raylib and terminal frontends both draw it.
package hud

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/pthm-cable/mycelium/scene"
	"github.com/pthm-cable/mycelium/systems"
)

// Title is shown above the resource bars.
const Title = "MYCELIAL_SYMBIONT_V1"

// Bar is one resource gauge.
type Bar struct {
	Label string
	Kind  systems.ResourceKind
	Value float64
	Max   float64
	Color color.RGBA
}

// Fraction returns Value/Max clamped to [0, 1].
func (b Bar) Fraction() float64 {
	if b.Max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, b.Value/b.Max))
}

// Percent formats the value the way the overlay shows it, e.g. "42%".
func (b Bar) Percent() string {
	return fmt.Sprintf("%d%%", int(math.Round(math.Max(0, b.Value))))
}

var barLabels = [...]string{
	systems.ResourceWater:     "WATER_LEVEL",
	systems.ResourceNutrients: "NUTRIENT_DENSITY",
	systems.ResourceDarkness:  "AMBIENT_DARKNESS",
}

var barColors = [...]color.RGBA{
	systems.ResourceWater:     scene.WaterColor,
	systems.ResourceNutrients: scene.NutrientsColor,
	systems.ResourceDarkness:  scene.DarknessColor,
}

// Bars returns the three gauges in display order.
func Bars(pools systems.ResourcePools, max float64) [3]Bar {
	var bars [3]Bar
	for i, kind := range systems.ResourceKinds {
		bars[i] = Bar{
			Label: barLabels[kind],
			Kind:  kind,
			Value: pools.Get(kind),
			Max:   max,
			Color: barColors[kind],
		}
	}
	return bars
}

// Banner returns the want prompt, e.g. "ORGANISM REQUIRES: WATER".
func Banner(w systems.Want) string {
	return "ORGANISM REQUIRES: " + strings.ToUpper(w.String())
}

// Status is the one-word organism state shown beside the title.
type Status string

const (
	StatusGrowing Status = "GROWING"
	StatusDormant Status = "DORMANT"
)

// StatusFor reports GROWING while water and nutrients are above the growth
// thresholds, DORMANT otherwise.
func StatusFor(pools systems.ResourcePools, g systems.GrowthParams) Status {
	if pools.Water > g.MinWater && pools.Nutrients > g.MinNutrients {
		return StatusGrowing
	}
	return StatusDormant
}

// Action is a feed button.
type Action struct {
	Label string
	Sub   string
	Kind  systems.ResourceKind
	Key   rune
}

// Actions lists the feed buttons left to right.
var Actions = [...]Action{
	{Label: "MIST", Sub: "Add Water", Kind: systems.ResourceWater, Key: 'w'},
	{Label: "FEED", Sub: "Add Nutrients", Kind: systems.ResourceNutrients, Key: 'n'},
	{Label: "SHADE", Sub: "Increase Darkness", Kind: systems.ResourceDarkness, Key: 'd'},
}

// ActionForKey maps a key to its feed action. Matching is case-insensitive.
func ActionForKey(r rune) (Action, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for _, a := range Actions {
		if a.Key == r {
			return a, true
		}
	}
	return Action{}, false
}
