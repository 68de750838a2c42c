package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"falling-sand/internal/sims/sand"
)

// TypeStats is the spread of one element count over a run.
type TypeStats struct {
	Type   sand.ElementType
	Mean   float64
	StdDev float64
	Min    int
	Max    int
}

// Series accumulates censuses taken over a run.
type Series struct {
	counts [sand.NumElementTypes][]float64
}

// Add records one census.
func (s *Series) Add(c Census) {
	for t, v := range c {
		s.counts[t] = append(s.counts[t], float64(v))
	}
}

// Len returns the number of censuses recorded.
func (s *Series) Len() int { return len(s.counts[0]) }

// Summary returns per-type statistics for every type seen at least once.
func (s *Series) Summary() []TypeStats {
	var out []TypeStats
	for t, xs := range s.counts {
		if len(xs) == 0 {
			continue
		}
		lo, hi := xs[0], xs[0]
		for _, v := range xs[1:] {
			lo = min(lo, v)
			hi = max(hi, v)
		}
		if hi == 0 {
			continue
		}
		mean, std := meanStdDev(xs)
		out = append(out, TypeStats{
			Type:   sand.ElementType(t),
			Mean:   mean,
			StdDev: std,
			Min:    int(lo),
			Max:    int(hi),
		})
	}
	return out
}

// meanStdDev is stat.MeanStdDev with a zero deviation for a single sample.
func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		return stat.Mean(xs, nil), 0
	}
	return stat.MeanStdDev(xs, nil)
}
