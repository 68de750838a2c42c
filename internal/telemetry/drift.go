package telemetry

import (
	"sort"
	"sync"

	"falling-sand/internal/brush"
	"falling-sand/internal/sims/sand"
)

// DriftResult is the horizontal movement of water's centre of mass over one
// run of the dam-break scene.
type DriftResult struct {
	Seed   int64
	Steps  int
	Before float64
	After  float64
}

// Shift returns After - Before. Positive means the water drifted right.
func (r DriftResult) Shift() float64 { return r.After - r.Before }

// DamBreak paints a stone floor and a centred block of water a third of the
// grid wide and half its height.
func DamBreak(g *sand.Grid) {
	w, h := g.Width(), g.Height()
	p := brush.NewPainter()
	p.Select(sand.Stone)
	p.Fill(g, 0, h-1, w-1, h-1)
	p.Select(sand.Water)
	p.Fill(g, w/3, h/2, 2*w/3-1, h-2)
}

// MeasureDrift runs the dam-break scene for steps ticks using cfg and the
// given seed.
func MeasureDrift(cfg sand.Config, seed int64, steps int) DriftResult {
	world := sand.NewWithConfig(cfg)
	world.Reset(seed)
	DamBreak(world.Grid())
	before, _, _ := CenterOfMass(world.Grid(), sand.TypeLiquid)
	for i := 0; i < steps; i++ {
		world.Update()
	}
	after, _, _ := CenterOfMass(world.Grid(), sand.TypeLiquid)
	return DriftResult{Seed: seed, Steps: steps, Before: before, After: after}
}

// Sweep measures drift for every seed on a pool of workers. Results are
// ordered by seed.
func Sweep(cfg sand.Config, seeds []int64, steps, workers int) []DriftResult {
	workers = max(1, workers)
	jobs := make(chan int64)
	results := make(chan DriftResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- MeasureDrift(cfg, seed, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	all := make([]DriftResult, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all
}

// ShiftStats returns the mean and standard deviation of the shifts.
func ShiftStats(results []DriftResult) (mean, std float64) {
	xs := make([]float64, len(results))
	for i, r := range results {
		xs[i] = r.Shift()
	}
	if len(xs) == 0 {
		return 0, 0
	}
	return meanStdDev(xs)
}
