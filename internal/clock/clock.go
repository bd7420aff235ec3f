// Package clock reports animation time as seconds since a single start
// instant.
package clock

import "time"

// Source is anything that reports elapsed animation seconds.
type Source interface {
	Elapsed() float64
}

// Clock measures elapsed time from the instant it was started. time.Time
// values from time.Now carry a monotonic reading, so wall-clock adjustments
// do not move the animation.
type Clock struct {
	now   func() time.Time
	start time.Time
}

// Start returns a running clock.
func Start() *Clock {
	return StartWith(time.Now)
}

// StartWith returns a clock driven by now.
func StartWith(now func() time.Time) *Clock {
	return &Clock{now: now, start: now()}
}

// Elapsed returns seconds since start. It is recomputed from the start
// instant on every call and never summed from frame deltas.
func (c *Clock) Elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}

// Fixed is a Source frozen at one elapsed value. The snapshot command uses
// it to evaluate the scene at an arbitrary time.
type Fixed float64

func (f Fixed) Elapsed() float64 { return float64(f) }
