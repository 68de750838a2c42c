package sand

// Random supplies the uniform choices consumed by the element rules. Every
// call must produce a fresh draw.
type Random interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// Rules applies the per-element update rule to single cells.
type Rules struct {
	Params Params
	Rand   Random
}

// NewRules returns a dispatcher using p and drawing choices from rnd.
func NewRules(p Params, rnd Random) *Rules {
	return &Rules{Params: p, Rand: rnd}
}

// Step runs the rule of the element at (x, y) once. Each rule performs a
// handful of grid reads and at most a few moves, sets or swaps.
func (r *Rules) Step(g *Grid, x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	switch g.Get(x, y).Type {
	case TypeImmovableSolid:
		r.stepImmovableSolid(g, x, y)
	case TypeMoveableSolid:
		r.stepMoveableSolid(g, x, y)
	case TypeLiquid:
		r.stepLiquid(g, x, y)
	case TypeGas:
		r.stepGas(g, x, y)
	case TypePixelGenerator:
		r.stepPixelGenerator(g, x, y)
	case TypeMagic:
		r.stepMagic(g, x, y)
	case TypeFire:
		r.stepFire(g, x, y)
	case TypeMaze:
		r.stepMaze(g, x, y)
	case TypeNothing:
	}
}

func (r *Rules) stepImmovableSolid(g *Grid, x, y int) {
	if !r.Params.ImmovableSinks {
		return
	}
	if is(g, x, y+1, TypeLiquid) {
		g.Swap(x, y, x, y+1)
	}
}

func (r *Rules) stepMoveableSolid(g *Grid, x, y int) {
	switch {
	case is(g, x, y+1, TypeNothing):
		g.Move(x, y, x, y+1)
	case is(g, x, y+1, TypeLiquid):
		g.Swap(x, y, x, y+1)
	default:
		if nx, ok := r.pickDiagonal(g, x, y+1); ok {
			g.Move(x, y, nx, y+1)
		}
	}
}

func (r *Rules) stepLiquid(g *Grid, x, y int) {
	if is(g, x, y+1, TypeNothing) {
		if nx, ok := r.pickDiagonal(g, x, y+1); ok {
			g.Move(x, y, nx, y+1)
			return
		}
		g.Move(x, y, x, y+1)
		return
	}

	dir := r.direction()
	cx := x
	for i := 0; i < r.Params.LiquidDispersion; i++ {
		nx := cx + dir
		if !is(g, nx, y, TypeNothing) {
			break
		}
		g.Move(cx, y, nx, y)
		cx = nx
	}
}

func (r *Rules) stepGas(g *Grid, x, y int) {
	if is(g, x, y-1, TypeNothing) {
		g.Move(x, y, x, y-1)
		return
	}
	rate := r.Params.GasDiffusion
	if rate <= 0 {
		return
	}
	accept := float64(rate) / 10
	dir := r.direction()
	for i := 1; i <= rate; i++ {
		nx := x + dir*i
		if !is(g, nx, y, TypeNothing) {
			return
		}
		if r.Rand.Float64() < accept {
			g.Move(x, y, nx, y)
			return
		}
	}
}

func (r *Rules) stepPixelGenerator(g *Grid, x, y int) {
	if is(g, x, y+1, TypeNothing) {
		g.Set(x, y+1, Water)
	}
}

func (r *Rules) stepMagic(g *Grid, x, y int) {
	dy := 0
	if passable(g, x, y-1) {
		dy = -1
	}
	dx := 0
	dir := r.direction()
	if passable(g, x+dir, y+dy) {
		dx = dir
	}
	g.Swap(x, y, x+dx, y+dy)
}

func (r *Rules) stepFire(g *Grid, x, y int) {
	if is(g, x, y-1, TypeNothing) && r.Rand.Float64() < r.Params.FireRiseChance {
		g.Move(x, y, x, y-1)
		return
	}
	nx := x + r.Rand.IntN(3) - 1
	if is(g, nx, y, TypeNothing) {
		g.Move(x, y, nx, y)
		return
	}
	g.Set(x, y, Nothing)
}

func (r *Rules) stepMaze(g *Grid, x, y int) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) || g.Get(nx, ny).Type == TypeMaze {
				continue
			}
			if mazeNeighbors(g, nx, ny) == 3 {
				g.Set(nx, ny, Maze)
			}
		}
	}
	if g.Get(x, y).Type != TypeMaze {
		return
	}
	if n := mazeNeighbors(g, x, y); n < 1 || n > 5 {
		g.Set(x, y, Nothing)
	}
}

// pickDiagonal chooses uniformly between the open cells at (x-1, y) and
// (x+1, y).
func (r *Rules) pickDiagonal(g *Grid, x, y int) (int, bool) {
	var opts [2]int
	n := 0
	for _, nx := range [2]int{x - 1, x + 1} {
		if is(g, nx, y, TypeNothing) {
			opts[n] = nx
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return opts[r.Rand.IntN(n)], true
}

// direction returns -1 or +1 with equal probability.
func (r *Rules) direction() int {
	return r.Rand.IntN(2)*2 - 1
}

// is reports whether (x, y) is on the grid and holds an element of type t.
// The bounds check matters because off-grid reads return Nothing.
func is(g *Grid, x, y int, t ElementType) bool {
	return g.InBounds(x, y) && g.Get(x, y).Type == t
}

func passable(g *Grid, x, y int) bool {
	return is(g, x, y, TypeNothing) || is(g, x, y, TypeLiquid)
}

func mazeNeighbors(g *Grid, x, y int) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if is(g, x+dx, y+dy, TypeMaze) {
				n++
			}
		}
	}
	return n
}
