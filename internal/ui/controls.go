package ui

import (
	"image"
	"math"
	"strconv"

	"falling-sand/internal/core"
)

// controlSet tracks the HUD rows for a sim's adjustable parameters and
// applies +/- presses through whichever setters the sim implements.
type controlSet struct {
	states []controlState

	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
	bools  core.BoolParameterSetter
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	boolValue  bool
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlSet(sim any) *controlSet {
	c := &controlSet{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, controlState{control: ctrl, value: "--"})
		}
	}
	c.ints, _ = sim.(core.IntParameterSetter)
	c.floats, _ = sim.(core.FloatParameterSetter)
	c.bools, _ = sim.(core.BoolParameterSetter)
	return c
}

// refresh copies current values from a snapshot into the rows.
func (c *controlSet) refresh(snap core.ParameterSnapshot) {
	for i := range c.states {
		state := &c.states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.boolValue = parsed
			state.value = onOff(parsed)
		default:
			continue
		}
		state.hasValue = true
	}
}

// canAdjust reports whether pressing the button in direction would change
// the value. For bools, minus means off and plus means on.
func (c *controlSet) canAdjust(state *controlState, direction int) bool {
	if state == nil || direction == 0 || !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		return c.ints != nil && intTarget(state, direction) != state.intValue
	case core.ParamTypeFloat:
		return c.floats != nil && math.Abs(floatTarget(state, direction)-state.floatValue) >= 1e-9
	case core.ParamTypeBool:
		return c.bools != nil && state.boolValue != (direction > 0)
	default:
		return false
	}
}

// adjust applies one button press and reports whether the sim accepted it.
func (c *controlSet) adjust(state *controlState, direction int) bool {
	if !c.canAdjust(state, direction) {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		target := intTarget(state, direction)
		if !c.ints.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.floatValue = float64(target)
		state.value = strconv.Itoa(target)
	case core.ParamTypeFloat:
		target := floatTarget(state, direction)
		if !c.floats.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	case core.ParamTypeBool:
		target := direction > 0
		if !c.bools.SetBoolParameter(state.control.Key, target) {
			return false
		}
		state.boolValue = target
		state.value = onOff(target)
	}
	return true
}

// press finds the button under (x, y) in panel coordinates and applies it.
func (c *controlSet) press(x, y int) bool {
	for i := range c.states {
		state := &c.states[i]
		if pointInRect(x, y, state.minusRect) {
			return c.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return c.adjust(state, 1)
		}
	}
	return false
}

func (c *controlSet) layout(width, top int) {
	for i := range c.states {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		c.states[i].top = rowTop
		c.states[i].minusRect = minusRect
		c.states[i].plusRect = plusRect
	}
}

func intTarget(state *controlState, direction int) int {
	step := int(math.Round(state.control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if state.control.HasMin {
		target = max(target, int(math.Round(state.control.Min)))
	}
	if state.control.HasMax {
		target = min(target, int(math.Round(state.control.Max)))
	}
	return target
}

func floatTarget(state *controlState, direction int) float64 {
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(direction)*step
	if state.control.HasMin {
		target = max(target, state.control.Min)
	}
	if state.control.HasMax {
		target = min(target, state.control.Max)
	}
	return target
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	var precision int
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusLines    = 4
	statusSpacing  = 16
	controlsTop    = panelPadding + headerBaseline + 14 + statusLines*statusSpacing
)
