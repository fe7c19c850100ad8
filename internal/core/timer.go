package core

import "time"

// FixedStep paces simulation steps at a steady rate independent of the frame
// rate of whatever loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting the given steps per second.
// The first poll always reports a step.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to one step per
// second.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 1
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate reports the current steps per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// ShouldStep reports whether a step is due at now. At most one step is
// released per call; surplus time carries over to later polls.
func (f *FixedStep) ShouldStep(now time.Time) bool {
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
