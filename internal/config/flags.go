package config

import "flag"

// Flags are command-line settings layered over the YAML config. Zero values
// leave the config untouched.
type Flags struct {
	Path  string
	Scene string
	Scale int
	TPS   int
	Seed  int64
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Path, "config", f.Path, "YAML config file (defaults are embedded)")
	fs.StringVar(&f.Scene, "scene", f.Scene, "preset name or scene file to paint at start")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "ticks per second")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for the random source")
}

// Load reads the config file named by Path and applies the overrides.
func (f *Flags) Load() (*Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return nil, err
	}
	if f.Scale > 0 {
		cfg.Window.Scale = f.Scale
	}
	if f.TPS > 0 {
		cfg.Window.TPS = f.TPS
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	return cfg, nil
}
