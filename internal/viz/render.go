package viz

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/geom"
	"github.com/san-kum/orrery/internal/scene"
)

// dim scales a hex color towards black by opacity, which is how a
// translucent line reads over the black background.
func dim(hex string, opacity float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return colorful.Color{}.BlendRgb(c, opacity).Clamped().Hex()
}

type sprite struct {
	x, y, depth, r float64
	color          string
	marker         geom.Vec3
	hasMarker      bool
}

// DrawScene projects one evaluated frame onto the canvas: guides first, then
// spheres back to front.
func DrawScene(c *Canvas, s *scene.Scene, f scene.Frame, cam *camera.OrbitControls) {
	w, h := c.Dots()
	view := cam.View(w, h)

	for _, g := range s.Groups {
		color := dim(g.Guide.Color, g.Guide.Opacity)
		drawPolyline(c, view, g.Guide.Points, color)
	}

	sprites := make([]sprite, 0, len(s.Groups)+1)
	if sp, ok := project(view, f.Star, s.Sun); ok {
		sprites = append(sprites, sp)
	}
	for i, g := range s.Groups {
		if i >= len(f.Bodies) {
			break
		}
		if sp, ok := project(view, f.Bodies[i], g.Sphere); ok {
			sprites = append(sprites, sp)
		}
	}
	sort.Slice(sprites, func(i, j int) bool { return sprites[i].depth > sprites[j].depth })

	for _, sp := range sprites {
		c.FillCircle(int(math.Round(sp.x)), int(math.Round(sp.y)), sp.r, sp.color)
		if !sp.hasMarker {
			continue
		}
		mx, my, md, ok := view.Project(sp.marker)
		if ok && md < sp.depth {
			c.Unset(int(math.Round(mx)), int(math.Round(my)))
		}
	}
}

// project places a sphere and a surface marker that turns with RotationY,
// so spin is visible on spheres large enough to show it.
func project(view camera.Projection, tr scene.Transform, sph scene.Sphere) (sprite, bool) {
	x, y, depth, ok := view.Project(tr.Position)
	if !ok {
		return sprite{}, false
	}
	sp := sprite{x: x, y: y, depth: depth, r: view.Radius(sph.Radius, depth), color: sph.Color}
	if sp.r >= 2 {
		sin, cos := math.Sincos(tr.RotationY)
		sp.marker = tr.Position.Add(geom.Vec3{X: sph.Radius * cos * 0.7, Z: -sph.Radius * sin * 0.7})
		sp.hasMarker = true
	}
	return sp, true
}

func drawPolyline(c *Canvas, view camera.Projection, pts []geom.Vec3, color string) {
	w, h := c.Dots()
	// Segments passing close to the eye project to huge coordinates; skip
	// them rather than rasterise far off screen.
	far := func(x, y float64) bool {
		return math.Abs(x) > 4*float64(w) || math.Abs(y) > 4*float64(h)
	}
	for i := 1; i < len(pts); i++ {
		x0, y0, _, ok0 := view.Project(pts[i-1])
		x1, y1, _, ok1 := view.Project(pts[i])
		if !ok0 || !ok1 || far(x0, y0) || far(x1, y1) {
			continue
		}
		c.DrawLine(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), color)
	}
}
