package orbit

import (
	"math"

	"github.com/san-kum/orrery/internal/geom"
)

// Segments is the resolution of orbit guides.
const Segments = 64

// Points returns segments+1 points on the circle of the given radius in the
// y=0 plane. The last point repeats the first, closing the loop. A radius of
// zero or less is accepted; zero collapses every point onto the origin.
// Segment counts below one are treated as one.
func Points(distance float64, segments int) []geom.Vec3 {
	if segments < 1 {
		segments = 1
	}
	pts := make([]geom.Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		pts[i] = geom.Vec3{X: distance * math.Cos(angle), Y: 0, Z: distance * math.Sin(angle)}
	}
	return pts
}

// Angle is the orbital angle in radians after elapsed seconds.
func Angle(elapsed, speed float64) float64 { return elapsed * speed }

// PositionAt returns the body's position in the orbital plane. Negative
// speeds reverse direction; zero speed holds the body at angle zero.
func PositionAt(elapsed, speed, distance float64) (x, z float64) {
	sin, cos := math.Sincos(Angle(elapsed, speed))
	return distance * cos, distance * sin
}

// SelfRotationAt is the spin angle of every orbiting body. It does not depend
// on orbital speed.
func SelfRotationAt(elapsed float64) float64 { return 2 * elapsed }

// StarRotationAt is the spin angle of the central star, which never leaves
// the origin.
func StarRotationAt(elapsed float64) float64 { return 0.1 * elapsed }

// Period is the time for one revolution at the given speed, or +Inf when the
// body is stopped.
func Period(speed float64) float64 {
	if speed == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(speed)
}
