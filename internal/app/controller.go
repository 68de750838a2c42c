package app

import (
	"github.com/sirupsen/logrus"

	"falling-sand/internal/brush"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"
	"falling-sand/internal/ui"
	"falling-sand/pkg/logger"
)

// maxCatchUp bounds the ticks run for a single frame.
const maxCatchUp = 4

// cursorToggleKey shows or hides the brush outline.
const cursorToggleKey = '1'

// Controller owns the interactive session state independent of the window:
// the world, the painter and its bindings, the tick clock and pause state.
type Controller struct {
	world   *sand.World
	painter *brush.Painter
	keys    *brush.Keymap
	timer   *core.FixedStep

	paused       bool
	stepOnce     bool
	drawing      bool
	cursorHidden bool
}

// NewController wires a session together.
func NewController(world *sand.World, painter *brush.Painter, keys *brush.Keymap, timer *core.FixedStep) *Controller {
	return &Controller{world: world, painter: painter, keys: keys, timer: timer}
}

// World returns the simulated world.
func (c *Controller) World() *sand.World { return c.world }

// Painter returns the brush state.
func (c *Controller) Painter() *brush.Painter { return c.painter }

// Paused reports whether automatic ticking is suspended.
func (c *Controller) Paused() bool { return c.paused }

// TogglePause flips between running and paused.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	logger.Log.WithField("paused", c.paused).Debug("pause toggled")
}

// StepOnce queues a single tick while paused.
func (c *Controller) StepOnce() {
	if c.paused {
		c.stepOnce = true
	}
}

// CursorVisible reports whether the brush outline is drawn.
func (c *Controller) CursorVisible() bool { return !c.cursorHidden }

// TypeChars feeds typed characters to the painter. Space (pause) and the
// cursor toggle are handled by the shell and never reach the key map.
func (c *Controller) TypeChars(chars []rune) {
	for _, r := range chars {
		switch r {
		case ' ':
			continue
		case cursorToggleKey:
			c.cursorHidden = !c.cursorHidden
			logger.Log.WithField("visible", !c.cursorHidden).Debug("cursor toggled")
			continue
		}
		a := c.painter.HandleKey(c.keys, r)
		switch a.Kind {
		case brush.ActionReset:
			c.world.Reset(0)
			logger.Log.Info("grid reset")
		case brush.ActionSelect:
			logger.Log.WithField("element", a.Element.Name).Debug("element selected")
		case brush.ActionGrow, brush.ActionShrink:
			logger.Log.WithField("size", c.painter.Size()).Debug("brush resized")
		}
	}
}

// PointerDown paints at cell (x, y). A press starts a new stroke; holding
// extends it from the previous point.
func (c *Controller) PointerDown(x, y int) {
	if !c.drawing {
		c.painter.SetAnchor(x, y)
		c.drawing = true
	}
	c.painter.DrawTo(c.world.Grid(), x, y)
}

// PointerUp ends the current stroke.
func (c *Controller) PointerUp() {
	c.drawing = false
	c.painter.Release()
}

// Advance runs the ticks due this frame and returns how many ran.
func (c *Controller) Advance() int {
	n := 0
	if c.paused {
		if c.stepOnce {
			n = 1
		}
		c.stepOnce = false
	} else {
		n = c.timer.Steps(maxCatchUp)
	}
	for i := 0; i < n; i++ {
		c.world.Update()
	}
	if n > 0 && logger.Log.IsLevelEnabled(logrus.TraceLevel) {
		logger.Log.WithFields(logrus.Fields{"tick": c.world.Tick(), "ran": n}).Trace("advanced")
	}
	return n
}

// Status summarizes the session for the HUD.
func (c *Controller) Status() ui.Status {
	e := c.painter.Selected()
	return ui.Status{
		Element: e.Name,
		Swatch:  sand.Swatch(e),
		Brush:   c.painter.Size(),
		Tick:    c.world.Tick(),
		Paused:  c.paused,
	}
}
