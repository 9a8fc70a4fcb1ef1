// Package loop provides a fixed-rate driver for running the game without a
// terminal. The interactive TUI drives ticks through Bubble Tea instead.
package loop

import (
	"context"
	"time"
)

// StepFunc advances the simulation by one tick of dt seconds.
// Returning false stops the driver.
type StepFunc func(dt float64) bool

// Driver calls a step function at a fixed cadence.
type Driver struct {
	rate int
}

// NewDriver creates a driver running at tickRate ticks per second.
// Non-positive rates fall back to 60.
func NewDriver(tickRate int) *Driver {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Driver{rate: tickRate}
}

// Interval returns the wall-clock time between ticks.
func (d *Driver) Interval() time.Duration {
	return time.Second / time.Duration(d.rate)
}

// Dt returns the nominal tick duration in seconds.
func (d *Driver) Dt() float64 {
	return 1.0 / float64(d.rate)
}

// Run calls step once per interval until step returns false or ctx is done.
// It returns the number of ticks executed. Cancellation is a normal way to
// stop and is not reported as an error.
func (d *Driver) Run(ctx context.Context, step StepFunc) int {
	ticker := time.NewTicker(d.Interval())
	defer ticker.Stop()

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			return ticks
		case <-ticker.C:
			ticks++
			if !step(d.Dt()) {
				return ticks
			}
		}
	}
}

// RunTicks calls step up to n times back to back with the nominal dt,
// without waiting between ticks. It returns the number of ticks executed.
func (d *Driver) RunTicks(n int, step StepFunc) int {
	for i := 0; i < n; i++ {
		if !step(d.Dt()) {
			return i + 1
		}
	}
	return n
}
