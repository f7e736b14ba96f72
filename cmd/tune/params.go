package main

import "github.com/pthm-cable/mycelium/config"

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
// Defaults match config/defaults.yaml.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "growth_rate", Path: "growth.rate", Min: 0.005, Max: 0.25, Default: 0.05},
			{Name: "growth_cost", Path: "growth.cost", Min: 0.5, Max: 6, Default: 2},
			{Name: "water_decay", Path: "resources.water_decay", Min: 0.05, Max: 2, Default: 0.5},
			{Name: "nutrients_decay", Path: "resources.nutrients_decay", Min: 0.05, Max: 2, Default: 0.3},
			{Name: "feed_amount", Path: "ui.feed_amount", Min: 5, Max: 50, Default: 20},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes parameter values into cfg. Order must match Specs.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)
	cfg.Growth.Rate = c[0]
	cfg.Growth.Cost = c[1]
	cfg.Resources.WaterDecay = c[2]
	cfg.Resources.NutrientsDecay = c[3]
	cfg.UI.FeedAmount = c[4]
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Growth.Rate,
		cfg.Growth.Cost,
		cfg.Resources.WaterDecay,
		cfg.Resources.NutrientsDecay,
		cfg.UI.FeedAmount,
	}
}
