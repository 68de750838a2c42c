package sand

import "strconv"

// Params holds the tunable constants of the element rules.
type Params struct {
	// LiquidDispersion is the maximum number of cells a blocked liquid walks
	// sideways in one rule application.
	LiquidDispersion int
	// GasDiffusion is both the lateral probe distance of a blocked gas and,
	// divided by ten, the acceptance probability of each open probe.
	GasDiffusion int
	// FireRiseChance is the probability that fire with room above rises.
	FireRiseChance float64
	// ImmovableSinks lets immovable solids swap with liquid directly below.
	ImmovableSinks bool
}

// Upper bounds for the integer rule parameters.
const (
	MaxLiquidDispersion = 16
	MaxGasDiffusion     = 10
)

// Config controls the world dimensions, seed and rule parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  226,
		Height: 126,
		Seed:   42,
		Params: Params{
			LiquidDispersion: 6,
			GasDiffusion:     4,
			FireRiseChance:   0.7,
			ImmovableSinks:   true,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c with the recognised keys in cfg. Values that
// fail to parse or fall outside their valid range are ignored.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["liquid_dispersion"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxLiquidDispersion {
			c.Params.LiquidDispersion = parsed
		}
	}
	if v, ok := cfg["gas_diffusion"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxGasDiffusion {
			c.Params.GasDiffusion = parsed
		}
	}
	if v, ok := cfg["fire_rise_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.FireRiseChance = parsed
		}
	}
	if v, ok := cfg["immovable_sinks"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.ImmovableSinks = parsed
		}
	}
	return c
}
