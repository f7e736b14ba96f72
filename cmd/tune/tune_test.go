package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/mycelium/config"
	"github.com/pthm-cable/mycelium/systems"
)

func TestParamVector_RoundTrip(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	got := pv.ExtractFromConfig(cfg)
	want := pv.DefaultVector()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: config %v, default %v", pv.Specs[i].Name, got[i], want[i])
		}
	}

	back := pv.Denormalize(pv.Normalize(got))
	for i := range got {
		if math.Abs(back[i]-got[i]) > 1e-12 {
			t.Errorf("%s: normalize round trip %v -> %v", pv.Specs[i].Name, got[i], back[i])
		}
	}
}

func TestParamVector_ApplyClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	pv.ApplyToConfig(cfg, []float64{-1, 100, 0.5, 0.5, 20})
	if cfg.Growth.Rate != pv.Specs[0].Min {
		t.Errorf("rate = %v, want clamped to %v", cfg.Growth.Rate, pv.Specs[0].Min)
	}
	if cfg.Growth.Cost != pv.Specs[1].Max {
		t.Errorf("cost = %v, want clamped to %v", cfg.Growth.Cost, pv.Specs[1].Max)
	}
}

func TestPlayer_Choose(t *testing.T) {
	p := Player{FullLevel: 80}
	tests := []struct {
		name  string
		pools systems.ResourcePools
		want  systems.Want
		kind  systems.ResourceKind
	}{
		{"feeds want", systems.ResourcePools{Water: 90, Nutrients: 10, Darkness: 30}, systems.WantDarkness, systems.ResourceDarkness},
		{"want full, water lower", systems.ResourcePools{Water: 30, Nutrients: 60, Darkness: 95}, systems.WantDarkness, systems.ResourceWater},
		{"want full, nutrients lower", systems.ResourcePools{Water: 85, Nutrients: 40}, systems.WantWater, systems.ResourceNutrients},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Choose(tt.pools, tt.want); got != tt.kind {
				t.Errorf("Choose = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, config.Defaults(), []int64{1, 2}, 60, 20, Player{FeedInterval: 3, FullLevel: 80})

	a := fe.Evaluate(pv.DefaultVector())
	ma := fe.LastMetrics()
	b := fe.Evaluate(pv.DefaultVector())

	if a != b {
		t.Errorf("same seeds gave %v and %v", a, b)
	}
	if ma.NodesPerMin <= 0 {
		t.Errorf("nodes/min = %v, expected growth with a feeding player", ma.NodesPerMin)
	}
	if ma.DormantFrac < 0 || ma.DormantFrac > 1 {
		t.Errorf("dormant fraction %v out of range", ma.DormantFrac)
	}
	if ma.FeedsPerMin != 20 {
		t.Errorf("feeds/min = %v, want 20", ma.FeedsPerMin)
	}
}

func TestScore(t *testing.T) {
	if s := Score(Metrics{NodesPerMin: 20}, 20); s != 0 {
		t.Errorf("perfect score = %v, want 0", s)
	}
	if Score(Metrics{NodesPerMin: 10}, 20) <= Score(Metrics{NodesPerMin: 18}, 20) {
		t.Error("further from target should score worse")
	}
	if Score(Metrics{NodesPerMin: 20, DormantFrac: 0.5}, 20) != 0.5 {
		t.Error("dormancy should add to the score")
	}
	// std 10 at target 20: 0.25 * 0.5^2
	if s := Score(Metrics{NodesPerMin: 20, GrowthStdDev: 10}, 20); math.Abs(s-0.0625) > 1e-12 {
		t.Errorf("bursty growth score = %v, want 0.0625", s)
	}
}
