package driver

import (
	"context"
	"time"

	"cubespin/internal/mathutil"
)

// Clock yields the simulation time for each frame.
type Clock interface {
	// Tick returns the time for the current frame and advances the counter.
	Tick() float64
}

// StepClock advances by a fixed Step per frame, starting at zero. With Wrap
// set the counter is kept in [0, 2π).
type StepClock struct {
	Step float64
	Wrap bool

	t float64
}

func (c *StepClock) Tick() float64 {
	t := c.t
	c.t += c.Step
	if c.Wrap {
		c.t = mathutil.WrapAngle(c.t)
	}
	return t
}

// Sleeper paces frames.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper blocks for a relative duration; there is no drift correction.
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
