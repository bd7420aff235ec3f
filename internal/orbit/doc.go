// Package orbit computes circular orbit geometry and body motion.
//
// Everything here is a pure function of its arguments:
//
//   - [Points]: closed polyline approximating an orbit, for drawing guides
//   - [PositionAt]: orbital position at an elapsed time and speed
//   - [SelfRotationAt]: spin of an orbiting body
//   - [StarRotationAt]: spin of the central star
//
// # Frame evaluation
//
// Positions are evaluated from the absolute elapsed time on every frame.
// Nothing is accumulated between frames, so the result does not depend on
// frame rate and cannot drift:
//
//	x, z := orbit.PositionAt(clock.Elapsed(), store.Speed("earth"), 5)
package orbit
