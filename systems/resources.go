package systems

import (
	"fmt"
	"log/slog"
	"strings"
)

// ResourceKind names one of the three pools the user can feed.
type ResourceKind uint8

const (
	ResourceWater ResourceKind = iota
	ResourceNutrients
	ResourceDarkness
)

// ResourceKinds lists every kind in HUD order.
var ResourceKinds = [...]ResourceKind{ResourceWater, ResourceNutrients, ResourceDarkness}

func (k ResourceKind) String() string {
	switch k {
	case ResourceWater:
		return "water"
	case ResourceNutrients:
		return "nutrients"
	case ResourceDarkness:
		return "darkness"
	default:
		return fmt.Sprintf("ResourceKind(%d)", uint8(k))
	}
}

// ParseResourceKind maps a lowercase name to its kind.
func ParseResourceKind(s string) (ResourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "water":
		return ResourceWater, nil
	case "nutrients":
		return ResourceNutrients, nil
	case "darkness":
		return ResourceDarkness, nil
	}
	return 0, fmt.Errorf("unknown resource kind %q", s)
}

// ResourceParams holds pool bounds and decay rates.
type ResourceParams struct {
	Initial        float64
	Max            float64
	WaterDecay     float64 // per second
	NutrientsDecay float64 // per second
}

// ResourcePools holds the three resource levels.
// Water and nutrients decay over time; darkness only changes when fed.
type ResourcePools struct {
	Water     float64
	Nutrients float64
	Darkness  float64
}

// NewResourcePools returns pools filled to the initial level.
func NewResourcePools(p ResourceParams) ResourcePools {
	return ResourcePools{
		Water:     p.Initial,
		Nutrients: p.Initial,
		Darkness:  p.Initial,
	}
}

// Get returns the level of the given pool.
func (r ResourcePools) Get(kind ResourceKind) float64 {
	switch kind {
	case ResourceWater:
		return r.Water
	case ResourceNutrients:
		return r.Nutrients
	case ResourceDarkness:
		return r.Darkness
	}
	return 0
}

func (r *ResourcePools) ptr(kind ResourceKind) *float64 {
	switch kind {
	case ResourceWater:
		return &r.Water
	case ResourceNutrients:
		return &r.Nutrients
	case ResourceDarkness:
		return &r.Darkness
	}
	return nil
}

// Decay drains water and nutrients for dt seconds, flooring each at zero.
func (r *ResourcePools) Decay(p ResourceParams, dt float64) {
	r.Water = max(0, r.Water-dt*p.WaterDecay)
	r.Nutrients = max(0, r.Nutrients-dt*p.NutrientsDecay)
}

// Add raises a pool by amount, capped at p.Max. The lower bound is not
// rechecked: pools entering here are never negative outside of the
// growth cost window.
func (r *ResourcePools) Add(p ResourceParams, kind ResourceKind, amount float64) {
	v := r.ptr(kind)
	if v == nil {
		return
	}
	*v = min(p.Max, *v+amount)
}

// Spend deducts a growth cost from water and nutrients.
// The result may dip below zero until the next Decay.
func (r *ResourcePools) Spend(cost float64) {
	r.Water -= cost
	r.Nutrients -= cost
}

// LogValue implements slog.LogValuer for structured logging.
func (r ResourcePools) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("water", r.Water),
		slog.Float64("nutrients", r.Nutrients),
		slog.Float64("darkness", r.Darkness),
	)
}
