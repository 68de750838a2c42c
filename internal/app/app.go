//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"falling-sand/internal/brush"
	"falling-sand/internal/render"
	"falling-sand/internal/ui"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	grid    *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
	chars []rune
}

// New constructs a Game. hudWidth 0 hides the side panel.
func New(ctl *Controller, scale, hudWidth int) *Game {
	size := ctl.World().Size()
	scale = max(scale, 1)
	return &Game{
		ctl:     ctl,
		grid:    render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(ctl.World(), hudWidth),
		overlay: ui.NewOverlay(size, scale),
		scale:   scale,
	}
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.ctl.StepOnce()
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	g.ctl.TypeChars(g.chars)

	g.overlay.SetVisible(g.ctl.CursorVisible())
	size := g.ctl.World().Size()
	onPanel := g.hud.Update(size.W * g.scale)

	if !onPanel && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if x, y, ok := g.cursorCell(); ok {
			g.ctl.PointerDown(x, y)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctl.PointerUp()
	}

	g.ctl.Advance()
	g.hud.SetStatus(g.ctl.Status())
	return nil
}

// cursorCell maps the mouse position to a grid cell.
func (g *Game) cursorCell() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	size := g.ctl.World().Size()
	x, y := mx/g.scale, my/g.scale
	if mx < 0 || my < 0 || x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

// Draw renders the grid, the brush cursor and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	world := g.ctl.World()
	g.grid.Blit(screen, world.Cells(), world.Palette(), g.scale)
	if x, y, ok := g.cursorCell(); ok {
		p := g.ctl.Painter()
		g.overlay.Draw(screen, x, y, brush.Offsets(p.Size()), g.ctl.Status().Swatch)
	}
	g.hud.Draw(screen, world.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.World().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
