// Package config loads the simulation and shell settings from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"falling-sand/internal/brush"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the simulator and its shells.
type Config struct {
	Seed int64 `yaml:"seed"`

	Grid   GridConfig   `yaml:"grid"`
	Window WindowConfig `yaml:"window"`
	Rules  RulesConfig  `yaml:"rules"`
	Brush  BrushConfig  `yaml:"brush"`

	Keys     map[string]string `yaml:"keys"`
	Fallback string            `yaml:"fallback_element"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
}

// GridConfig sets the world dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowConfig holds GUI settings.
type WindowConfig struct {
	Scale    int  `yaml:"scale"`     // screen pixels per cell
	TPS      int  `yaml:"tps"`       // simulation ticks per second
	HUDWidth int  `yaml:"hud_width"` // side panel width in pixels
	ShowHUD  bool `yaml:"show_hud"`
}

// RulesConfig mirrors sand.Params.
type RulesConfig struct {
	LiquidDispersion int     `yaml:"liquid_dispersion"`
	GasDiffusion     int     `yaml:"gas_diffusion"`
	FireRiseChance   float64 `yaml:"fire_rise_chance"`
	ImmovableSinks   bool    `yaml:"immovable_sinks"`
}

// BrushConfig sets the initial painter state.
type BrushConfig struct {
	Size    int    `yaml:"size"`
	Element string `yaml:"element"`
}

// TelemetryConfig controls headless output.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"` // empty disables CSV output
	LogEvery  int    `yaml:"log_every"`  // ticks between census log lines, 0 disables
}

// LogConfig selects the logger level and format (text or json).
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Keys present in the file overwrite; maps merge.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("grid: size %dx%d must be positive", c.Grid.Width, c.Grid.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("window: scale %d must be positive", c.Window.Scale)
	case c.Rules.LiquidDispersion < 0 || c.Rules.LiquidDispersion > sand.MaxLiquidDispersion:
		return fmt.Errorf("rules: liquid_dispersion %d outside [0,%d]", c.Rules.LiquidDispersion, sand.MaxLiquidDispersion)
	case c.Rules.GasDiffusion < 0 || c.Rules.GasDiffusion > sand.MaxGasDiffusion:
		return fmt.Errorf("rules: gas_diffusion %d outside [0,%d]", c.Rules.GasDiffusion, sand.MaxGasDiffusion)
	case c.Rules.FireRiseChance < 0 || c.Rules.FireRiseChance > 1:
		return fmt.Errorf("rules: fire_rise_chance %g outside [0,1]", c.Rules.FireRiseChance)
	case c.Brush.Size < brush.MinSize || c.Brush.Size > brush.MaxSize:
		return fmt.Errorf("brush: size %d outside [%d,%d]", c.Brush.Size, brush.MinSize, brush.MaxSize)
	}
	if _, ok := sand.ByName(c.Brush.Element); !ok {
		return fmt.Errorf("brush: unknown element %q", c.Brush.Element)
	}
	if c.Fallback != "" {
		if _, ok := sand.ByName(c.Fallback); !ok {
			return fmt.Errorf("fallback_element: unknown element %q", c.Fallback)
		}
	}
	return nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SandConfig converts the grid, seed and rule settings into a world config.
func (c *Config) SandConfig() sand.Config {
	return sand.Config{
		Width:  c.Grid.Width,
		Height: c.Grid.Height,
		Seed:   c.Seed,
		Params: sand.Params{
			LiquidDispersion: c.Rules.LiquidDispersion,
			GasDiffusion:     c.Rules.GasDiffusion,
			FireRiseChance:   c.Rules.FireRiseChance,
			ImmovableSinks:   c.Rules.ImmovableSinks,
		},
	}
}

// WorldOptions renders the grid, seed and rule settings as the key/value
// options accepted by the registered "sand" factory.
func (c *Config) WorldOptions() map[string]string {
	return map[string]string{
		"w":                 strconv.Itoa(c.Grid.Width),
		"h":                 strconv.Itoa(c.Grid.Height),
		"seed":              strconv.FormatInt(c.Seed, 10),
		"liquid_dispersion": strconv.Itoa(c.Rules.LiquidDispersion),
		"gas_diffusion":     strconv.Itoa(c.Rules.GasDiffusion),
		"fire_rise_chance":  strconv.FormatFloat(c.Rules.FireRiseChance, 'f', -1, 64),
		"immovable_sinks":   strconv.FormatBool(c.Rules.ImmovableSinks),
	}
}

// NewWorld builds the world through the registered "sand" factory.
func (c *Config) NewWorld() (*sand.World, error) {
	factory, ok := core.Sims()["sand"]
	if !ok {
		return nil, fmt.Errorf("sim %q not registered (have %v)", "sand", core.SimNames())
	}
	world, ok := factory(c.WorldOptions()).(*sand.World)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a falling sand world", "sand")
	}
	return world, nil
}

// ApplyOverrides applies key=value pairs using the world's FromMap keys
// (w, h, seed, liquid_dispersion, ...). Invalid values are ignored.
func (c *Config) ApplyOverrides(kv map[string]string) {
	sc := sand.ApplyMap(c.SandConfig(), kv)
	c.Grid.Width, c.Grid.Height = sc.Width, sc.Height
	c.Seed = sc.Seed
	c.Rules = RulesConfig{
		LiquidDispersion: sc.Params.LiquidDispersion,
		GasDiffusion:     sc.Params.GasDiffusion,
		FireRiseChance:   sc.Params.FireRiseChance,
		ImmovableSinks:   sc.Params.ImmovableSinks,
	}
}

// Keymap builds the key bindings. Keys are bound in sorted order so errors
// are reported deterministically.
func (c *Config) Keymap() (*brush.Keymap, error) {
	k := brush.DefaultKeymap()
	keys := make([]string, 0, len(c.Keys))
	for key := range c.Keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := k.Bind(key, c.Keys[key]); err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
	}
	if c.Fallback == "" {
		k.ClearFallback()
	} else {
		e, ok := sand.ByName(c.Fallback)
		if !ok {
			return nil, fmt.Errorf("fallback_element: unknown element %q", c.Fallback)
		}
		k.SetFallback(e)
	}
	return k, nil
}

// Painter returns a painter set to the configured brush.
func (c *Config) Painter() (*brush.Painter, error) {
	e, ok := sand.ByName(c.Brush.Element)
	if !ok {
		return nil, fmt.Errorf("brush: unknown element %q", c.Brush.Element)
	}
	p := brush.NewPainter()
	p.Select(e)
	p.SetSize(c.Brush.Size)
	return p, nil
}
