package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"falling-sand/internal/brush"
	"falling-sand/internal/sims/sand"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsMatchWorldDefaults(t *testing.T) {
	cfg := Default()
	if got, want := cfg.SandConfig(), sand.DefaultConfig(); got != want {
		t.Fatalf("defaults.yaml %+v, world defaults %+v", got, want)
	}
	if cfg.Brush.Size != 3 || cfg.Brush.Element != "water" {
		t.Fatalf("brush defaults %+v", cfg.Brush)
	}
	if cfg.Window.TPS != 60 || cfg.Window.Scale != 5 {
		t.Fatalf("window defaults %+v", cfg.Window)
	}
}

func TestLoadOverlaysUserFile(t *testing.T) {
	path := writeFile(t, `
grid:
  width: 40
rules:
  fire_rise_chance: 0.25
keys:
  q: fire
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 126 {
		t.Fatalf("grid %+v", cfg.Grid)
	}
	if cfg.Rules.FireRiseChance != 0.25 || cfg.Rules.LiquidDispersion != 6 {
		t.Fatalf("rules %+v", cfg.Rules)
	}
	if cfg.Keys["q"] != "fire" || cfg.Keys["w"] != "water" {
		t.Fatalf("keys not merged: %v", cfg.Keys)
	}
	k, err := cfg.Keymap()
	if err != nil {
		t.Fatal(err)
	}
	if a := k.Lookup('q'); a.Element != sand.Fire {
		t.Fatalf("q selects %s", a.Element.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
	if _, err := Load(writeFile(t, "grid: [1, 2")); err == nil {
		t.Fatal("malformed yaml accepted")
	}
	if _, err := Load(writeFile(t, "rules:\n  gas_diffusion: 11\n")); err == nil {
		t.Fatal("gas_diffusion 11 accepted")
	}
	if _, err := Load(writeFile(t, "rules:\n  liquid_dispersion: 40\n")); err == nil {
		t.Fatal("liquid_dispersion 40 accepted")
	}
	if _, err := Load(writeFile(t, "brush:\n  element: lava\n")); err == nil {
		t.Fatal("unknown brush element accepted")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99
	cfg.Rules.ImmovableSinks = false
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.SandConfig() != cfg.SandConfig() {
		t.Fatalf("round trip %+v != %+v", loaded.SandConfig(), cfg.SandConfig())
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(map[string]string{"w": "64", "seed": "5", "gas_diffusion": "2", "h": "bad"})
	if cfg.Grid.Width != 64 || cfg.Grid.Height != 126 || cfg.Seed != 5 || cfg.Rules.GasDiffusion != 2 {
		t.Fatalf("overrides gave %+v seed %d", cfg.Grid, cfg.Seed)
	}
}

func TestDispersionBoundsMatchControls(t *testing.T) {
	if _, err := Load(writeFile(t, "rules:\n  liquid_dispersion: 16\n  gas_diffusion: 10\n")); err != nil {
		t.Fatalf("upper bounds rejected: %v", err)
	}
	cfg := Default()
	cfg.ApplyOverrides(map[string]string{"liquid_dispersion": "17"})
	if cfg.Rules.LiquidDispersion != 6 {
		t.Fatalf("override above bound applied: %d", cfg.Rules.LiquidDispersion)
	}
	w := sand.NewWithConfig(cfg.SandConfig())
	for _, c := range w.ParameterControls() {
		if c.Key == "liquid_dispersion" && c.Max != sand.MaxLiquidDispersion {
			t.Fatalf("control max %v, config bound %d", c.Max, sand.MaxLiquidDispersion)
		}
		if c.Key == "gas_diffusion" && c.Max != sand.MaxGasDiffusion {
			t.Fatalf("control max %v, config bound %d", c.Max, sand.MaxGasDiffusion)
		}
	}
}

func TestWorldOptionsRebuildSandConfig(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width, cfg.Grid.Height = 31, 17
	cfg.Seed = -4
	cfg.Rules = RulesConfig{LiquidDispersion: 2, GasDiffusion: 9, FireRiseChance: 0.35, ImmovableSinks: false}
	if got, want := sand.FromMap(cfg.WorldOptions()), cfg.SandConfig(); got != want {
		t.Fatalf("FromMap(WorldOptions) = %+v, want %+v", got, want)
	}
}

func TestNewWorldUsesRegistry(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width, cfg.Grid.Height = 12, 8
	cfg.Rules.GasDiffusion = 7
	world, err := cfg.NewWorld()
	if err != nil {
		t.Fatal(err)
	}
	if size := world.Size(); size.W != 12 || size.H != 8 {
		t.Fatalf("world size %+v", size)
	}
	if world.Config() != cfg.SandConfig() {
		t.Fatalf("world config %+v, want %+v", world.Config(), cfg.SandConfig())
	}
}

func TestPainterAndFallback(t *testing.T) {
	cfg := Default()
	cfg.Brush = BrushConfig{Size: 1, Element: "Sand"}
	p, err := cfg.Painter()
	if err != nil {
		t.Fatal(err)
	}
	if p.Selected() != sand.Sand || p.Size() != 1 {
		t.Fatalf("painter %s size %d", p.Selected().Name, p.Size())
	}

	cfg.Fallback = ""
	k, err := cfg.Keymap()
	if err != nil {
		t.Fatal(err)
	}
	if a := k.Lookup('#'); a.Kind != brush.ActionNone {
		t.Fatalf("empty fallback still selects %s", a.Element.Name)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Bind(fs)
	path := writeFile(t, "window:\n  scale: 2\n")
	if err := fs.Parse([]string{"-config", path, "-tps", "30", "-seed", "9"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Scale != 2 || cfg.Window.TPS != 30 || cfg.Seed != 9 {
		t.Fatalf("window %+v seed %d", cfg.Window, cfg.Seed)
	}
}
