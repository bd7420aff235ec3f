package clock

import (
	"math"
	"testing"
	"time"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time { return f.t }

func TestClockElapsed(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := StartWith(ft.now)

	if got := c.Elapsed(); got != 0 {
		t.Errorf("expected 0 at start, got %f", got)
	}

	ft.t = ft.t.Add(1500 * time.Millisecond)
	if got := c.Elapsed(); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("expected 1.5, got %f", got)
	}
}

func TestClockNoAccumulation(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := StartWith(ft.now)

	// Irregular frame spacing must land on the same elapsed value.
	for _, d := range []time.Duration{7, 16, 33, 1, 250} {
		ft.t = ft.t.Add(d * time.Millisecond)
		c.Elapsed()
	}
	if got := c.Elapsed(); math.Abs(got-0.307) > 1e-12 {
		t.Errorf("expected 0.307, got %f", got)
	}
}

func TestFixed(t *testing.T) {
	var s Source = Fixed(math.Pi)
	if s.Elapsed() != math.Pi {
		t.Errorf("expected π, got %f", s.Elapsed())
	}
}

func TestStartMonotonic(t *testing.T) {
	c := Start()
	a := c.Elapsed()
	b := c.Elapsed()
	if b < a {
		t.Errorf("elapsed went backwards: %f then %f", a, b)
	}
}
