package sand

import "testing"

// scripted replays fixed draws and then repeats the fallback values.
type scripted struct {
	ints   []int
	floats []float64

	intFallback   int
	floatFallback float64
}

func (s *scripted) IntN(n int) int {
	v := s.intFallback
	if len(s.ints) > 0 {
		v = s.ints[0]
		s.ints = s.ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return s.floatFallback
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func newRules(rnd Random) *Rules {
	return NewRules(DefaultConfig().Params, rnd)
}

func expectAt(t *testing.T, g *Grid, x, y int, want Element) {
	t.Helper()
	if got := g.Get(x, y); got != want {
		t.Fatalf("cell (%d,%d)=%s, want %s", x, y, got.Name, want.Name)
	}
}

func count(g *Grid, t ElementType) int {
	n := 0
	for _, e := range g.Cells() {
		if e.Type == t {
			n++
		}
	}
	return n
}

func fillRow(g *Grid, y int, e Element) {
	for x := 0; x < g.Width(); x++ {
		g.Set(x, y, e)
	}
}

func TestNothingStepIsNoOp(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, Sand)
	r := newRules(&scripted{})
	r.Step(g, 1, 1)
	r.Step(g, -1, 5)
	expectAt(t, g, 0, 0, Sand)
	if count(g, TypeNothing) != 8 {
		t.Fatal("Nothing rule mutated the grid")
	}
}

func TestImmovableSolidSinksThroughLiquid(t *testing.T) {
	g := NewGrid(1, 2)
	g.Set(0, 0, Stone)
	g.Set(0, 1, Water)

	newRules(&scripted{}).Step(g, 0, 0)
	expectAt(t, g, 0, 0, Water)
	expectAt(t, g, 0, 1, Stone)
}

func TestImmovableSolidWithoutSinkingStaysPut(t *testing.T) {
	g := NewGrid(1, 2)
	g.Set(0, 0, Stone)
	g.Set(0, 1, Water)

	r := newRules(&scripted{})
	r.Params.ImmovableSinks = false
	r.Step(g, 0, 0)
	expectAt(t, g, 0, 0, Stone)
	expectAt(t, g, 0, 1, Water)
}

func TestImmovableSolidIgnoresEmptyBelow(t *testing.T) {
	g := NewGrid(1, 2)
	g.Set(0, 0, Stone)
	newRules(&scripted{}).Step(g, 0, 0)
	expectAt(t, g, 0, 0, Stone)
}

func TestMoveableSolidFalls(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 0, Sand)
	newRules(&scripted{}).Step(g, 1, 0)
	expectAt(t, g, 1, 0, Nothing)
	expectAt(t, g, 1, 1, Sand)
}

func TestMoveableSolidSwapsWithLiquidBelow(t *testing.T) {
	g := NewGrid(1, 3)
	g.Set(0, 0, Sand)
	g.Set(0, 1, Water)
	g.Set(0, 2, Stone)

	newRules(&scripted{}).Step(g, 0, 0)
	expectAt(t, g, 0, 0, Water)
	expectAt(t, g, 0, 1, Sand)
}

func TestMoveableSolidSlidesDiagonally(t *testing.T) {
	for _, tc := range []struct {
		name  string
		pick  int
		wantX int
	}{
		{"left", 0, 0},
		{"right", 1, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(3, 2)
			g.Set(1, 0, Sand)
			g.Set(1, 1, Stone)
			newRules(&scripted{ints: []int{tc.pick}}).Step(g, 1, 0)
			expectAt(t, g, tc.wantX, 1, Sand)
			expectAt(t, g, 1, 0, Nothing)
		})
	}
}

func TestMoveableSolidOnlyOpenDiagonal(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(1, 0, Sand)
	fillRow(g, 1, Stone)
	g.Set(2, 1, Nothing)

	newRules(&scripted{intFallback: 0}).Step(g, 1, 0)
	expectAt(t, g, 2, 1, Sand)
}

func TestMoveableSolidRestsOnBottomRow(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(1, 1, Sand)
	newRules(&scripted{}).Step(g, 1, 1)
	expectAt(t, g, 1, 1, Sand)
	if count(g, TypeMoveableSolid) != 1 {
		t.Fatal("sand duplicated or vanished at the bottom edge")
	}
}

func TestMoveableSolidAtEdgeColumnNeverWraps(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, Sand)
	g.Set(0, 1, Stone)
	g.Set(1, 1, Stone)

	newRules(&scripted{}).Step(g, 0, 0)
	expectAt(t, g, 0, 0, Sand)
	expectAt(t, g, 2, 1, Nothing)
}

func TestLiquidFallsDiagonallyWhenOpen(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 0, Water)
	newRules(&scripted{ints: []int{1}}).Step(g, 1, 0)
	expectAt(t, g, 2, 1, Water)
	if count(g, TypeLiquid) != 1 {
		t.Fatal("water count changed")
	}
}

func TestLiquidFallsStraightWhenDiagonalsBlocked(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 0, Water)
	g.Set(0, 1, Stone)
	g.Set(2, 1, Stone)
	newRules(&scripted{}).Step(g, 1, 0)
	expectAt(t, g, 1, 1, Water)
}

// The diagonal probe is (x-1, y+1) and (x+1, y+1); the cell at (x+1, y-1)
// must not influence the choice.
func TestLiquidDiagonalCheckIsSymmetric(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Water)
	g.Set(2, 0, Stone)
	g.Set(0, 2, Stone)

	newRules(&scripted{intFallback: 0}).Step(g, 1, 1)
	expectAt(t, g, 2, 2, Water)
	expectAt(t, g, 1, 1, Nothing)
	expectAt(t, g, 1, 2, Nothing)
}

func TestLiquidDispersionIsBounded(t *testing.T) {
	for _, tc := range []struct {
		name  string
		dir   int
		wantX int
	}{
		{"left", 0, 4},
		{"right", 1, 16},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(20, 2)
			fillRow(g, 1, Stone)
			g.Set(10, 0, Water)

			r := newRules(&scripted{ints: []int{tc.dir}})
			r.Step(g, 10, 0)
			expectAt(t, g, tc.wantX, 0, Water)
			if count(g, TypeLiquid) != 1 {
				t.Fatal("dispersion duplicated water")
			}
		})
	}
}

func TestLiquidDispersionStopsAtObstruction(t *testing.T) {
	g := NewGrid(20, 2)
	fillRow(g, 1, Stone)
	g.Set(10, 0, Water)
	g.Set(7, 0, Sand)

	newRules(&scripted{ints: []int{0}}).Step(g, 10, 0)
	expectAt(t, g, 8, 0, Water)
	expectAt(t, g, 7, 0, Sand)
}

func TestLiquidDispersionReachesColumnZero(t *testing.T) {
	g := NewGrid(10, 2)
	fillRow(g, 1, Stone)
	g.Set(2, 0, Water)

	newRules(&scripted{ints: []int{0}}).Step(g, 2, 0)
	expectAt(t, g, 0, 0, Water)
}

func TestLiquidOnBottomRowDisperses(t *testing.T) {
	g := NewGrid(10, 1)
	g.Set(5, 0, Water)
	newRules(&scripted{ints: []int{1}}).Step(g, 5, 0)
	expectAt(t, g, 9, 0, Water)
}

func TestGasRises(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 2, Steam)
	newRules(&scripted{}).Step(g, 1, 2)
	expectAt(t, g, 1, 1, Steam)
}

func TestGasDiffusesWithAcceptance(t *testing.T) {
	g := NewGrid(10, 2)
	g.Set(5, 0, Stone)
	g.Set(5, 1, Steam)

	// Acceptance is 0.4 with the default rate of 4: reject the first probe,
	// accept the second.
	r := newRules(&scripted{ints: []int{1}, floats: []float64{0.9, 0.1}})
	r.Step(g, 5, 1)
	expectAt(t, g, 7, 1, Steam)
	expectAt(t, g, 5, 1, Nothing)
}

func TestGasStopsAtObstruction(t *testing.T) {
	g := NewGrid(10, 2)
	g.Set(5, 0, Stone)
	g.Set(5, 1, Steam)
	g.Set(6, 1, Stone)

	newRules(&scripted{ints: []int{1}}).Step(g, 5, 1)
	expectAt(t, g, 5, 1, Steam)
}

func TestGasRejectedEverywhereStays(t *testing.T) {
	g := NewGrid(10, 1)
	g.Set(5, 0, Steam)
	newRules(&scripted{ints: []int{0}, floatFallback: 0.99}).Step(g, 5, 0)
	expectAt(t, g, 5, 0, Steam)
}

func TestGasWithZeroDiffusionIsStill(t *testing.T) {
	g := NewGrid(10, 1)
	g.Set(5, 0, Steam)
	r := newRules(&scripted{})
	r.Params.GasDiffusion = 0
	r.Step(g, 5, 0)
	expectAt(t, g, 5, 0, Steam)
}

func TestPixelGeneratorEmitsWater(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 0, Spout)
	newRules(&scripted{}).Step(g, 1, 0)
	expectAt(t, g, 1, 0, Spout)
	expectAt(t, g, 1, 1, Water)
}

func TestPixelGeneratorOnBottomRowWritesNothing(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(1, 0, Spout)
	newRules(&scripted{}).Step(g, 1, 0)
	if count(g, TypeLiquid) != 0 {
		t.Fatal("generator emitted off the grid")
	}
}

func TestMagicSwapsUpAndAcross(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Magic)
	g.Set(1, 0, Water)

	newRules(&scripted{ints: []int{1}}).Step(g, 1, 1)
	expectAt(t, g, 2, 0, Magic)
	expectAt(t, g, 1, 1, Nothing)
	expectAt(t, g, 1, 0, Water)
}

func TestMagicSwapsWithLiquidNeverDestroys(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(1, 1, Magic)
	g.Set(1, 0, Stone)
	g.Set(0, 1, Water)

	newRules(&scripted{ints: []int{0}}).Step(g, 1, 1)
	expectAt(t, g, 0, 1, Magic)
	expectAt(t, g, 1, 1, Water)
}

func TestMagicBoxedInStays(t *testing.T) {
	g := NewGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = Stone
	}
	g.Set(1, 1, Magic)
	newRules(&scripted{}).Step(g, 1, 1)
	expectAt(t, g, 1, 1, Magic)
}

func TestMagicAtCornerStaysOnGrid(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, Magic)
	newRules(&scripted{ints: []int{0}}).Step(g, 0, 0)
	expectAt(t, g, 0, 0, Magic)
}

func TestFireRises(t *testing.T) {
	g := NewGrid(1, 3)
	g.Set(0, 2, Fire)
	newRules(&scripted{floats: []float64{0.5}}).Step(g, 0, 2)
	expectAt(t, g, 0, 1, Fire)
	expectAt(t, g, 0, 2, Nothing)
}

func TestFireDriftsWhenNotRising(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(1, 1, Fire)
	newRules(&scripted{floats: []float64{0.9}, ints: []int{2}}).Step(g, 1, 1)
	expectAt(t, g, 2, 1, Fire)
	expectAt(t, g, 1, 1, Nothing)
}

func TestFireDecaysWhenDriftTargetsItself(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(1, 1, Fire)
	newRules(&scripted{floats: []float64{0.9}, ints: []int{1}}).Step(g, 1, 1)
	if count(g, TypeFire) != 0 {
		t.Fatal("fire should have decayed")
	}
}

func TestFireDecaysAgainstGridEdge(t *testing.T) {
	g := NewGrid(1, 1)
	g.Set(0, 0, Fire)
	newRules(&scripted{ints: []int{2}}).Step(g, 0, 0)
	expectAt(t, g, 0, 0, Nothing)
}

func TestMazeBirthWithThreeNeighbors(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(1, 1, Maze)
	g.Set(2, 1, Maze)
	g.Set(3, 1, Maze)

	newRules(&scripted{}).Step(g, 1, 1)
	expectAt(t, g, 2, 2, Maze)
	expectAt(t, g, 2, 0, Maze)
	expectAt(t, g, 1, 1, Maze)
}

func TestMazeDiesWhenIsolated(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(2, 2, Maze)
	newRules(&scripted{}).Step(g, 2, 2)
	if count(g, TypeMaze) != 0 {
		t.Fatal("isolated maze cell should die")
	}
}

func TestMazeDiesWhenOvercrowded(t *testing.T) {
	g := NewGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = Maze
	}
	g.Set(0, 0, Nothing)
	g.Set(1, 0, Nothing)

	newRules(&scripted{}).Step(g, 1, 1)
	expectAt(t, g, 1, 1, Nothing)
	expectAt(t, g, 0, 0, Nothing)
	expectAt(t, g, 1, 0, Nothing)
}

func TestMazeBirthOverwritesOtherElements(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(1, 1, Maze)
	g.Set(2, 1, Maze)
	g.Set(3, 1, Maze)
	g.Set(2, 2, Water)

	newRules(&scripted{}).Step(g, 1, 1)
	expectAt(t, g, 2, 2, Maze)
}
