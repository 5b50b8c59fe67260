package core

import "time"

// maxCatchUp bounds how many ticks Due reports after a stall.
const maxCatchUp = 4

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
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
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	f.advance()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Due returns how many ticks have elapsed since the last call, capped so a
// long pause does not trigger a burst of catch-up work.
func (f *FixedStep) Due() int {
	f.advance()
	n := int(f.accumulator / f.step)
	if n > maxCatchUp {
		n = maxCatchUp
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

func (f *FixedStep) advance() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}
