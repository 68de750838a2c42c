package ui

import (
	"fmt"
	"image/color"
)

// Status is the painter and clock state shown above the parameter rows.
type Status struct {
	Element string
	Swatch  color.RGBA
	Brush   int
	Tick    uint64
	Paused  bool
}

// Lines renders the status block, one entry per HUD line.
func (s Status) Lines() []string {
	run := "running (space pauses)"
	if s.Paused {
		run = "paused (right arrow steps)"
	}
	return []string{
		fmt.Sprintf("element  %s", s.Element),
		fmt.Sprintf("brush    %d", s.Brush),
		fmt.Sprintf("tick     %d", s.Tick),
		run,
	}
}
