package core

import "time"

// DefaultDropInterval is the delay between two drop steps.
const DefaultDropInterval = 600 * time.Millisecond

// Clock returns the current time.
type Clock func() time.Time

// FixedStep reports when a fixed interval has elapsed between host frames.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         Clock
}

// NewFixedStep constructs a FixedStep that fires once per interval using the
// wall clock.
func NewFixedStep(interval time.Duration) *FixedStep {
	return NewFixedStepClock(interval, time.Now)
}

// NewFixedStepClock is NewFixedStep with an explicit clock.
func NewFixedStepClock(interval time.Duration, now Clock) *FixedStep {
	if now == nil {
		now = time.Now
	}
	fs := &FixedStep{now: now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the step length. Non-positive values select
// DefaultDropInterval.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultDropInterval
	}
	f.step = interval
}

// Interval returns the step length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset starts a fresh interval from now.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = f.now()
}

// ShouldStep reports whether a full interval has passed since the previous
// step. At most one step is reported per call.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator >= f.step {
			// drop the backlog after a stall, e.g. a hidden browser tab
			f.accumulator = 0
		}
		return true
	}
	return false
}
