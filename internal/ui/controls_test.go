package ui

import (
	"image"
	"strings"
	"testing"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
)

func newTestControls(t *testing.T) (*sand.World, *controlSet) {
	t.Helper()
	world := sand.New(8, 8)
	c := newControlSet(world)
	c.layout(240, controlsTop)
	c.refresh(world.Parameters())
	return world, c
}

func find(t *testing.T, c *controlSet, key string) *controlState {
	t.Helper()
	for i := range c.states {
		if c.states[i].control.Key == key {
			return &c.states[i]
		}
	}
	t.Fatalf("no control %q", key)
	return nil
}

func TestControlsReflectSnapshot(t *testing.T) {
	_, c := newTestControls(t)
	if got := find(t, c, "liquid_dispersion").value; got != "6" {
		t.Fatalf("dispersion shows %q", got)
	}
	if got := find(t, c, "fire_rise_chance").value; got != "0.70" {
		t.Fatalf("fire rise shows %q", got)
	}
	if got := find(t, c, "immovable_sinks").value; got != "on" {
		t.Fatalf("sinks shows %q", got)
	}
}

func TestAdjustIntClampsAtBounds(t *testing.T) {
	world, c := newTestControls(t)
	state := find(t, c, "gas_diffusion")
	for i := 0; i < 20; i++ {
		c.adjust(state, 1)
	}
	if world.Rules().Params.GasDiffusion != 10 || state.value != "10" {
		t.Fatalf("gas %d shown %q", world.Rules().Params.GasDiffusion, state.value)
	}
	if c.canAdjust(state, 1) {
		t.Fatal("plus enabled at max")
	}
	if !c.canAdjust(state, -1) {
		t.Fatal("minus disabled below max")
	}
}

func TestAdjustFloatAndBool(t *testing.T) {
	world, c := newTestControls(t)
	fire := find(t, c, "fire_rise_chance")
	if !c.adjust(fire, -1) {
		t.Fatal("fire rise not adjusted")
	}
	if got := world.Rules().Params.FireRiseChance; got < 0.649 || got > 0.651 {
		t.Fatalf("fire rise %f", got)
	}

	sinks := find(t, c, "immovable_sinks")
	if c.canAdjust(sinks, 1) {
		t.Fatal("plus should be disabled when already on")
	}
	if !c.adjust(sinks, -1) || world.Rules().Params.ImmovableSinks || sinks.value != "off" {
		t.Fatal("minus should switch sinks off")
	}
}

func TestPressHitsButtons(t *testing.T) {
	world, c := newTestControls(t)
	state := find(t, c, "liquid_dispersion")
	center := func(r image.Rectangle) (int, int) {
		return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
	}
	if !c.press(center(state.minusRect)) {
		t.Fatal("minus press missed")
	}
	if world.Rules().Params.LiquidDispersion != 5 {
		t.Fatalf("dispersion %d", world.Rules().Params.LiquidDispersion)
	}
	if c.press(0, 0) {
		t.Fatal("press outside buttons changed something")
	}
}

func TestControlsWithoutSetters(t *testing.T) {
	c := newControlSet(struct{}{})
	if len(c.states) != 0 {
		t.Fatal("controls for a sim with none")
	}
	c.refresh(core.ParameterSnapshot{})
}

func TestStatusLines(t *testing.T) {
	lines := Status{Element: "Sand", Brush: 2, Tick: 40, Paused: true}.Lines()
	if len(lines) != statusLines {
		t.Fatalf("%d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Sand") || !strings.Contains(lines[2], "40") || !strings.Contains(lines[3], "paused") {
		t.Fatalf("lines %q", lines)
	}
}
