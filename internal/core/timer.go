package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// independently of the render loop.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Steps reports how many ticks are due since the previous call. The backlog is
// capped at limit so a stalled frame does not trigger a long catch-up burst.
func (f *FixedStep) Steps(limit int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < limit {
		f.accumulator -= f.step
		n++
	}
	if n == limit && f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}
