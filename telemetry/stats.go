package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PoolStats summarizes one resource pool over a window.
type PoolStats struct {
	Mean float64
	Min  float64
	Max  float64
	Std  float64
}

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`

	// Graph size at window end
	Nodes int    `csv:"nodes"`
	Links int    `csv:"links"`
	Want  string `csv:"want"`

	// Events during window
	Growths      int     `csv:"growths"`
	GrowthPerSec float64 `csv:"growth_per_sec"`
	WantChanges  int     `csv:"want_changes"`

	FeedsWater     int `csv:"feeds_water"`
	FeedsNutrients int `csv:"feeds_nutrients"`
	FeedsDarkness  int `csv:"feeds_darkness"`

	// Pool levels sampled every frame
	WaterMean     float64 `csv:"water_mean"`
	WaterMin      float64 `csv:"water_min"`
	WaterMax      float64 `csv:"water_max"`
	NutrientsMean float64 `csv:"nutrients_mean"`
	NutrientsMin  float64 `csv:"nutrients_min"`
	NutrientsMax  float64 `csv:"nutrients_max"`
	DarknessMean  float64 `csv:"darkness_mean"`
	DarknessMin   float64 `csv:"darkness_min"`
	DarknessMax   float64 `csv:"darkness_max"`
}

// setPools copies pool summaries into the flat CSV columns.
func (s *WindowStats) setPools(water, nutrients, darkness PoolStats) {
	s.WaterMean, s.WaterMin, s.WaterMax = water.Mean, water.Min, water.Max
	s.NutrientsMean, s.NutrientsMin, s.NutrientsMax = nutrients.Mean, nutrients.Min, nutrients.Max
	s.DarknessMean, s.DarknessMin, s.DarknessMax = darkness.Mean, darkness.Min, darkness.Max
}

// ComputePoolStats calculates mean, min, max and standard deviation.
// Returns zeros for an empty slice.
func ComputePoolStats(values []float64) PoolStats {
	if len(values) == 0 {
		return PoolStats{}
	}

	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}

	return PoolStats{
		Mean: mean,
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		Std:  std,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartFrame),
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("nodes", s.Nodes),
		slog.Int("links", s.Links),
		slog.String("want", s.Want),
		slog.Int("growths", s.Growths),
		slog.Float64("growth_per_sec", s.GrowthPerSec),
		slog.Int("want_changes", s.WantChanges),
		slog.Int("feeds_water", s.FeedsWater),
		slog.Int("feeds_nutrients", s.FeedsNutrients),
		slog.Int("feeds_darkness", s.FeedsDarkness),
		slog.Float64("water_mean", s.WaterMean),
		slog.Float64("nutrients_mean", s.NutrientsMean),
		slog.Float64("darkness_mean", s.DarknessMean),
	)
}

// LogStats outputs the stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
