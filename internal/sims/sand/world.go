package sand

import "falling-sand/internal/core"

// World owns a grid and advances it one tick at a time.
type World struct {
	cfg Config

	grid  *Grid
	rules *Rules
	rng   *core.RNG
	tick  uint64

	display []uint8
}

// New returns a world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	grid := NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	rng := core.NewRNG(cfg.Seed)
	return &World{
		cfg:     cfg,
		grid:    grid,
		rules:   NewRules(cfg.Params, rng),
		rng:     rng,
		display: make([]uint8, len(grid.Cells())),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Grid exposes the cell store for painting and inspection.
func (w *World) Grid() *Grid { return w.grid }

// Rules exposes the dispatcher used by Update.
func (w *World) Rules() *Rules { return w.rules }

// Config returns the active configuration, including parameter edits.
func (w *World) Config() Config {
	c := w.cfg
	c.Params = w.rules.Params
	return c
}

// Tick returns the number of ticks run since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// SetRandom replaces the random source, mostly for tests.
func (w *World) SetRandom(rnd Random) { w.rules.Rand = rnd }

// Reset empties the grid and reseeds the random source. A zero seed reuses
// the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.grid.Reset()
	w.tick = 0
}

// Step advances the simulation by one tick.
func (w *World) Step() { w.Update() }

// Update runs one tick: rows from the bottom up, each row left to right.
// Bottom-up order keeps a falling element from being stepped again in the row
// it fell into. An element that moves right or up lands in a cell the scan has
// not reached yet and is stepped again in the same tick; that bias is kept.
func (w *World) Update() {
	g := w.grid
	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			w.rules.Step(g, x, y)
		}
	}
	w.tick++
}

// Cells returns the display code of every cell in row-major order.
func (w *World) Cells() []uint8 {
	g := w.grid
	cells := g.Cells()
	for i, e := range cells {
		w.display[i] = displayCode(e, i%g.Width(), i/g.Width())
	}
	return w.display
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
