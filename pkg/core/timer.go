package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// A zero or negative TPS disables pacing entirely.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now, sleep: time.Sleep}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick, zero when unpaced.
func (f *FixedStep) Interval() time.Duration { return f.step }

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

// Wait blocks until the next tick is due. Headless drivers use it instead of
// polling ShouldStep from a frame loop.
func (f *FixedStep) Wait() {
	for !f.ShouldStep() {
		f.sleep(f.step - f.accumulator)
	}
}
