package core

import "testing"

func TestRNGSeedRestartsSequence(t *testing.T) {
	r := NewRNG(7)
	first := []int{r.IntN(100), r.IntN(100), r.IntN(100)}
	f := r.Float64()
	r.Seed(7)
	for i, want := range first {
		if got := r.IntN(100); got != want {
			t.Fatalf("draw %d: %d after reseed, want %d", i, got, want)
		}
	}
	if r.Float64() != f {
		t.Fatal("float draw differs after reseed")
	}
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Fatal("IntN of empty range should be 0")
	}
}
