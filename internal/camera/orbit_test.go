package camera

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/geom"
)

func near3(a, b geom.Vec3, tol float64) bool {
	return a.Sub(b).Length() <= tol
}

func TestNew_DefaultPosition(t *testing.T) {
	c := New(Options{})

	if got := c.Position(); !near3(got, DefaultPosition, 1e-9) {
		t.Errorf("expected %v, got %v", DefaultPosition, got)
	}
	if c.FOV != 60 || c.Damping != 0.05 || c.MinDistance != 5 || c.MaxDistance != 50 {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestZoomClamped(t *testing.T) {
	c := New(Options{Damping: 1})

	for i := 0; i < 50; i++ {
		c.Zoom(0.5)
	}
	c.Update()
	if math.Abs(c.Distance()-5) > 1e-9 {
		t.Errorf("expected min distance 5, got %f", c.Distance())
	}

	for i := 0; i < 50; i++ {
		c.Zoom(2)
	}
	c.Update()
	if math.Abs(c.Distance()-50) > 1e-9 {
		t.Errorf("expected max distance 50, got %f", c.Distance())
	}

	c.Zoom(-1)
	c.Update()
	if math.Abs(c.Distance()-50) > 1e-9 {
		t.Error("non-positive zoom factor should be ignored")
	}
}

func TestUpdateDamped(t *testing.T) {
	c := New(Options{})
	start := c.Position()

	c.Rotate(math.Pi/2, 0)
	c.Update()
	first := c.Position()
	if near3(first, start, 1e-9) {
		t.Fatal("camera did not move after update")
	}

	for i := 0; i < 500; i++ {
		c.Update()
	}
	// Quarter turn about Y maps (15,15,15) to (-15,15,15).
	want := geom.Vec3{X: -15, Y: 15, Z: 15}
	if got := c.Position(); !near3(got, want, 1e-6) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPitchClamped(t *testing.T) {
	c := New(Options{Damping: 1})
	c.Rotate(0, 10)
	c.Update()

	p := c.Position()
	if p.Y >= c.Distance() {
		t.Errorf("camera should stay below the pole, got y=%f", p.Y)
	}
}

func TestProjectTargetCentered(t *testing.T) {
	c := New(Options{})
	v := c.View(160, 96)

	x, y, depth, ok := v.Project(geom.Vec3{})
	if !ok {
		t.Fatal("target should be visible")
	}
	if math.Abs(x-80) > 1e-9 || math.Abs(y-48) > 1e-9 {
		t.Errorf("expected center (80,48), got (%f,%f)", x, y)
	}
	if math.Abs(depth-c.Distance()) > 1e-9 {
		t.Errorf("expected depth %f, got %f", c.Distance(), depth)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	c := New(Options{})
	v := c.View(100, 100)

	if _, _, _, ok := v.Project(geom.Vec3{X: 40, Y: 40, Z: 40}); ok {
		t.Error("point behind the eye should not project")
	}
}

func TestProjectUpIsUp(t *testing.T) {
	c := New(Options{})
	v := c.View(100, 100)

	_, y0, _, _ := v.Project(geom.Vec3{})
	_, y1, _, _ := v.Project(geom.Vec3{Y: 2})
	if y1 >= y0 {
		t.Errorf("higher world point should appear higher on screen: %f vs %f", y1, y0)
	}
}

func TestRadiusShrinksWithDepth(t *testing.T) {
	v := New(Options{}).View(100, 100)
	if v.Radius(1, 10) <= v.Radius(1, 20) {
		t.Error("nearer spheres should be larger")
	}
	if v.Radius(1, 0) != 0 {
		t.Error("expected zero radius at the eye")
	}
}
