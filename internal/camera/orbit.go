// Package camera implements orbit controls: a camera circling a target that
// the user can rotate around and zoom towards, with damped motion.
package camera

import (
	"math"

	"github.com/san-kum/orrery/internal/geom"
)

const (
	DefaultFOV         = 60.0
	DefaultDamping     = 0.05
	DefaultMinDistance = 5.0
	DefaultMaxDistance = 50.0

	near       = 0.1
	pitchLimit = math.Pi/2 - 0.01
)

var (
	DefaultPosition = geom.Vec3{X: 15, Y: 15, Z: 15}
	up              = geom.Vec3{Y: 1}
)

// Options configures OrbitControls. Zero fields take the defaults above.
type Options struct {
	Position    geom.Vec3
	Target      geom.Vec3
	FOV         float64 // vertical, degrees
	Damping     float64
	MinDistance float64
	MaxDistance float64
}

func (o Options) withDefaults() Options {
	if o.Position == (geom.Vec3{}) {
		o.Position = DefaultPosition
	}
	if o.FOV <= 0 {
		o.FOV = DefaultFOV
	}
	if o.Damping <= 0 {
		o.Damping = DefaultDamping
	}
	if o.MinDistance <= 0 {
		o.MinDistance = DefaultMinDistance
	}
	if o.MaxDistance <= 0 {
		o.MaxDistance = DefaultMaxDistance
	}
	if o.MaxDistance < o.MinDistance {
		o.MaxDistance = o.MinDistance
	}
	return o
}

type spherical struct {
	yaw, pitch, dist float64
}

// OrbitControls tracks the current and goal orientation. Input moves the
// goal; Update eases the current orientation towards it.
type OrbitControls struct {
	Target      geom.Vec3
	FOV         float64
	Damping     float64
	MinDistance float64
	MaxDistance float64

	cur, goal spherical
}

// New places the camera at opts.Position looking at opts.Target.
func New(opts Options) *OrbitControls {
	opts = opts.withDefaults()
	c := &OrbitControls{
		Target:      opts.Target,
		FOV:         opts.FOV,
		Damping:     math.Min(opts.Damping, 1),
		MinDistance: opts.MinDistance,
		MaxDistance: opts.MaxDistance,
	}
	rel := opts.Position.Sub(opts.Target)
	d := rel.Length()
	s := spherical{
		yaw:   math.Atan2(rel.Z, rel.X),
		pitch: clamp(math.Asin(rel.Y/d), -pitchLimit, pitchLimit),
		dist:  clamp(d, c.MinDistance, c.MaxDistance),
	}
	c.cur, c.goal = s, s
	return c
}

// Rotate turns the goal orientation by the given angles in radians.
func (c *OrbitControls) Rotate(dYaw, dPitch float64) {
	c.goal.yaw += dYaw
	c.goal.pitch = clamp(c.goal.pitch+dPitch, -pitchLimit, pitchLimit)
}

// Zoom scales the goal distance; factors below one move closer.
func (c *OrbitControls) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.goal.dist = clamp(c.goal.dist*factor, c.MinDistance, c.MaxDistance)
}

// Update advances one frame of damping.
func (c *OrbitControls) Update() {
	k := c.Damping
	c.cur.yaw += (c.goal.yaw - c.cur.yaw) * k
	c.cur.pitch += (c.goal.pitch - c.cur.pitch) * k
	c.cur.dist += (c.goal.dist - c.cur.dist) * k
}

// Distance is the current distance to the target.
func (c *OrbitControls) Distance() float64 { return c.cur.dist }

// Position is the current camera position.
func (c *OrbitControls) Position() geom.Vec3 {
	s := c.cur
	cp := math.Cos(s.pitch)
	return c.Target.Add(geom.Vec3{
		X: s.dist * cp * math.Cos(s.yaw),
		Y: s.dist * math.Sin(s.pitch),
		Z: s.dist * cp * math.Sin(s.yaw),
	})
}

// Projection is a view fixed at one camera position, for projecting many
// points within a frame.
type Projection struct {
	eye, right, upv, fwd geom.Vec3
	focal                float64
	w, h                 float64
}

// View freezes the current orientation for a w×h viewport.
func (c *OrbitControls) View(w, h int) Projection {
	eye := c.Position()
	fwd := c.Target.Sub(eye).Normalize()
	right := fwd.Cross(up).Normalize()
	return Projection{
		eye:   eye,
		right: right,
		upv:   right.Cross(fwd),
		fwd:   fwd,
		focal: 1 / math.Tan(c.FOV*math.Pi/360),
		w:     float64(w),
		h:     float64(h),
	}
}

// Project maps p to viewport coordinates. ok is false when p is behind the
// camera. depth grows with distance from the eye.
func (v Projection) Project(p geom.Vec3) (x, y, depth float64, ok bool) {
	rel := p.Sub(v.eye)
	depth = rel.Dot(v.fwd)
	if depth <= near {
		return 0, 0, depth, false
	}
	scale := v.focal * v.h / 2 / depth
	x = v.w/2 + rel.Dot(v.right)*scale
	y = v.h/2 - rel.Dot(v.upv)*scale
	return x, y, depth, true
}

// Radius is the on-screen size of a sphere of world radius r at depth.
func (v Projection) Radius(r, depth float64) float64 {
	if depth <= near {
		return 0
	}
	return r * v.focal * v.h / 2 / depth
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
