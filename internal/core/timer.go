package core

import "time"

// FixedStep paces generations at a steady ticks-per-second rate. A rate of
// zero or less means unpaced: every call reports a due tick.
type FixedStep struct {
	// step is zero when unpaced, as with "view --tps 0", so ShouldStep
	// never accumulates and the viewer advances once per frame.
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	tps int
	now func() time.Time
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
		f.tps, f.step = 0, 0
		return
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	if f.step == 0 {
		return true
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// TPS returns the current tick rate, 0 when unpaced.
func (f *FixedStep) TPS() int { return f.tps }
