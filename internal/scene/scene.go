// Package scene builds the star system tree and evaluates it per frame.
//
// The tree is built once from the catalog. Each frame, [Scene.Frame] turns an
// elapsed time and the current speeds into plain transforms; rendering
// adapters copy those onto their own objects.
package scene

import (
	"math"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/geom"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/speed"
)

// GuideOpacity is the alpha of orbit guide lines.
const GuideOpacity = 0.6

// Sphere is a colored ball.
type Sphere struct {
	Color  string
	Radius float64
}

// Guide is the polyline drawn along a body's orbit.
type Guide struct {
	Color   string
	Opacity float64
	Points  []geom.Vec3
}

// Group pairs one orbiting body with its guide.
type Group struct {
	Body   catalog.Body
	Guide  Guide
	Sphere Sphere
}

// Scene is the static tree: the star at the origin and one group per body.
type Scene struct {
	Star   catalog.Body
	Sun    Sphere
	Groups []Group
}

// Build creates the scene tree for a catalog.
func Build(c catalog.Catalog) *Scene {
	s := &Scene{
		Star:   c.Star,
		Sun:    Sphere{Color: c.Star.Color, Radius: c.Star.Size},
		Groups: make([]Group, 0, len(c.Bodies)),
	}
	for _, b := range c.Bodies {
		s.Groups = append(s.Groups, Group{
			Body: b,
			Guide: Guide{
				Color:   b.Color,
				Opacity: GuideOpacity,
				Points:  orbit.Points(b.Distance, orbit.Segments),
			},
			Sphere: Sphere{Color: b.Color, Radius: b.Size},
		})
	}
	return s
}

// Transform places a sphere. RotationY is the spin about the vertical axis
// in radians.
type Transform struct {
	Position  geom.Vec3
	RotationY float64
}

// Frame is the evaluated scene at one instant. Bodies is indexed like
// Scene.Groups.
type Frame struct {
	Elapsed float64
	Star    Transform
	Bodies  []Transform
}

// Frame evaluates every body at elapsed seconds using the speeds in r. It
// only reads r. A store is read through one snapshot for the whole frame.
func (s *Scene) Frame(elapsed float64, r speed.Reader) Frame {
	if st, ok := r.(*speed.Store); ok {
		r = st.Snapshot()
	}
	f := Frame{
		Elapsed: elapsed,
		Star:    Transform{RotationY: orbit.StarRotationAt(elapsed)},
		Bodies:  make([]Transform, len(s.Groups)),
	}
	spin := orbit.SelfRotationAt(elapsed)
	for i, g := range s.Groups {
		x, z := orbit.PositionAt(elapsed, r.Speed(g.Body.ID), g.Body.Distance)
		f.Bodies[i] = Transform{Position: geom.Vec3{X: x, Z: z}, RotationY: spin}
	}
	return f
}

// Group returns the group for a body id.
func (s *Scene) Group(id string) (Group, bool) {
	for _, g := range s.Groups {
		if g.Body.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// Sample is one evaluated point of a body's path.
type Sample struct {
	Time      float64
	Position  geom.Vec3
	RotationY float64
}

// MaxSamples bounds one Sample call.
const MaxSamples = 1 << 20

// SampleCount is how many samples Sample would return for the range, or -1
// when the range is invalid.
func SampleCount(from, to, step float64) int {
	if !(step > 0) || !(to >= from) {
		return -1
	}
	n := math.Floor((to-from)/step+1e-9) + 1
	if math.IsInf(n, 0) || math.IsNaN(n) || n > MaxSamples {
		return -1
	}
	return int(n)
}

// Sample evaluates one body from `from` to `to` (inclusive) every step
// seconds. It returns nil for unknown ids, a non-positive step, or a range
// that needs more than MaxSamples samples.
func (s *Scene) Sample(id string, from, to, step float64, r speed.Reader) []Sample {
	g, ok := s.Group(id)
	n := SampleCount(from, to, step)
	if !ok || n < 0 {
		return nil
	}
	out := make([]Sample, 0, n)
	v := r.Speed(id)
	for i := 0; i < n; i++ {
		t := from + float64(i)*step
		x, z := orbit.PositionAt(t, v, g.Body.Distance)
		out = append(out, Sample{Time: t, Position: geom.Vec3{X: x, Z: z}, RotationY: orbit.SelfRotationAt(t)})
	}
	return out
}

// Bodies lists the orbiting bodies in group order.
func (s *Scene) Bodies() []catalog.Body {
	out := make([]catalog.Body, len(s.Groups))
	for i, g := range s.Groups {
		out[i] = g.Body
	}
	return out
}
