// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Resources ResourcesConfig `yaml:"resources"`
	Growth    GrowthConfig    `yaml:"growth"`
	Want      WantConfig      `yaml:"want"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
	UI        UIConfig        `yaml:"ui"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ResourcesConfig holds resource pool parameters.
type ResourcesConfig struct {
	Initial        float64 `yaml:"initial"`         // Starting level for all three pools
	Max            float64 `yaml:"max"`             // Upper clamp for AddResource
	WaterDecay     float64 `yaml:"water_decay"`     // Water lost per simulated second
	NutrientsDecay float64 `yaml:"nutrients_decay"` // Nutrients lost per simulated second
}

// GrowthConfig holds branching parameters.
type GrowthConfig struct {
	Rate            float64 `yaml:"rate"`              // Per-frame probability of a growth attempt
	MinWater        float64 `yaml:"min_water"`         // Growth requires water strictly above this
	MinNutrients    float64 `yaml:"min_nutrients"`     // Growth requires nutrients strictly above this
	Cost            float64 `yaml:"cost"`              // Water and nutrients spent per new node
	MaxBranchAge    float64 `yaml:"max_branch_age"`    // Nodes at or above this age never sprout
	MinBranchLength float64 `yaml:"min_branch_length"` // Shortest link length
	MaxBranchLength float64 `yaml:"max_branch_length"` // Longest link length
	UpwardBias      float64 `yaml:"upward_bias"`       // Upper bound of the Y direction sample
	InitialBranches int     `yaml:"initial_branches"`  // Branches grown from the root on reset
	NodeAging       bool    `yaml:"node_aging"`        // Advance node age with elapsed time
}

// WantConfig holds the demand cycle parameters.
type WantConfig struct {
	CycleSeconds float64 `yaml:"cycle_seconds"`
}

// CameraConfig holds orbit camera constraints.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	MaxPolar    float64 `yaml:"max_polar"` // Radians from the +Y axis
	Fovy        float64 `yaml:"fovy"`
	OrbitSpeed  float64 `yaml:"orbit_speed"` // Radians per pixel of mouse drag
	ZoomSpeed   float64 `yaml:"zoom_speed"`  // Distance change per wheel notch
}

// SceneConfig holds backdrop and mesh parameters.
type SceneConfig struct {
	StarCount     int     `yaml:"star_count"`
	StarRadius    float64 `yaml:"star_radius"` // Inner radius of the star shell
	StarDepth     float64 `yaml:"star_depth"`  // Thickness of the star shell
	NodeRadius    float64 `yaml:"node_radius"`
	GridSlices    int     `yaml:"grid_slices"`
	GridSpacing   float64 `yaml:"grid_spacing"`
	GridElevation float64 `yaml:"grid_elevation"`
	FogNear       float64 `yaml:"fog_near"`
	FogFar        float64 `yaml:"fog_far"`
}

// UIConfig holds HUD parameters.
type UIConfig struct {
	FeedAmount float64 `yaml:"feed_amount"` // Amount added per button press
}

// AudioConfig holds audio cue parameters.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // Linear gain, 0 = silent
	WantToneHz float64 `yaml:"want_tone_hz"`
	FeedToneHz float64 `yaml:"feed_tone_hz"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window length in simulated seconds
	FrameDT     float64 `yaml:"frame_dt"`     // Fixed delta used by headless runs
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	FogRange  float64 // Scene.FogFar - Scene.FogNear
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse merges the given YAML document over the embedded defaults.
// A nil or empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Unmarshal into same struct - only overwrites fields present in data
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Resources.Max <= 0 {
		errs = append(errs, errors.New("resources.max must be positive"))
	}
	if c.Resources.Initial < 0 || c.Resources.Initial > c.Resources.Max {
		errs = append(errs, fmt.Errorf("resources.initial must be in [0, %g]", c.Resources.Max))
	}
	if c.Resources.WaterDecay < 0 || c.Resources.NutrientsDecay < 0 {
		errs = append(errs, errors.New("resource decay rates must not be negative"))
	}
	if c.Growth.Rate < 0 || c.Growth.Rate > 1 {
		errs = append(errs, errors.New("growth.rate must be a probability"))
	}
	if c.Growth.MinBranchLength <= 0 || c.Growth.MinBranchLength > c.Growth.MaxBranchLength {
		errs = append(errs, errors.New("growth branch lengths must satisfy 0 < min <= max"))
	}
	if c.Growth.UpwardBias <= 0 {
		errs = append(errs, errors.New("growth.upward_bias must be positive"))
	}
	if c.Growth.InitialBranches < 0 {
		errs = append(errs, errors.New("growth.initial_branches must not be negative"))
	}
	if c.Want.CycleSeconds <= 0 {
		errs = append(errs, errors.New("want.cycle_seconds must be positive"))
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MinDistance > c.Camera.MaxDistance {
		errs = append(errs, errors.New("camera distances must satisfy 0 < min <= max"))
	}
	if c.Telemetry.FrameDT <= 0 {
		errs = append(errs, errors.New("telemetry.frame_dt must be positive"))
	}

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.FogRange = c.Scene.FogFar - c.Scene.FogNear
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
