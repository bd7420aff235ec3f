// Package catalog holds the compiled-in star system: one central star and
// the bodies orbiting it.
package catalog

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Body is a rendered star or planet. Values are fixed at startup.
type Body struct {
	ID       string
	Label    string
	Color    string // hex, e.g. "#6B93D6"
	Size     float64
	Distance float64
}

// RGB returns the body color as 8-bit channels.
func (b Body) RGB() (r, g, bl uint8, err error) {
	c, err := colorful.Hex(b.Color)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("body %s: %w", b.ID, err)
	}
	r, g, bl = c.RGB255()
	return r, g, bl, nil
}

// Catalog is the star plus its orbiting bodies, innermost first.
type Catalog struct {
	Star   Body
	Bodies []Body
}

var sun = Body{ID: "sun", Label: "Sun", Color: "#FDB813", Size: 1, Distance: 0}

var planets = []Body{
	{ID: "mercury", Label: "Mercury", Color: "#8C7853", Size: 0.15, Distance: 3},
	{ID: "venus", Label: "Venus", Color: "#FFC649", Size: 0.2, Distance: 4},
	{ID: "earth", Label: "Earth", Color: "#6B93D6", Size: 0.25, Distance: 5},
	{ID: "mars", Label: "Mars", Color: "#CD5C5C", Size: 0.2, Distance: 6.5},
	{ID: "jupiter", Label: "Jupiter", Color: "#D8CA9D", Size: 0.8, Distance: 9},
	{ID: "saturn", Label: "Saturn", Color: "#FAD5A5", Size: 0.7, Distance: 12},
	{ID: "uranus", Label: "Uranus", Color: "#4FD0E7", Size: 0.4, Distance: 15},
	{ID: "neptune", Label: "Neptune", Color: "#4B70DD", Size: 0.4, Distance: 18},
}

var defaultSpeeds = map[string]float64{
	"mercury": 2.0,
	"venus":   1.5,
	"earth":   1.0,
	"mars":    0.8,
	"jupiter": 0.4,
	"saturn":  0.3,
	"uranus":  0.2,
	"neptune": 0.1,
}

// Default returns the solar system catalog. The returned value owns its
// slice, so callers cannot alter the package data.
func Default() Catalog {
	bodies := make([]Body, len(planets))
	copy(bodies, planets)
	return Catalog{Star: sun, Bodies: bodies}
}

// DefaultSpeeds returns a fresh copy of the initial speed multipliers.
func DefaultSpeeds() map[string]float64 {
	out := make(map[string]float64, len(defaultSpeeds))
	for k, v := range defaultSpeeds {
		out[k] = v
	}
	return out
}

// Lookup finds an orbiting body by id.
func (c Catalog) Lookup(id string) (Body, bool) {
	for _, b := range c.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return Body{}, false
}

// IDs lists orbiting body ids in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c.Bodies))
	for i, b := range c.Bodies {
		ids[i] = b.ID
	}
	return ids
}
