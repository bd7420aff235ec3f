package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/viz"
)

const background = "#000000"

// SceneSVG draws the system from above (x to the right, z down) at one
// evaluated frame. The image is size×size pixels with the star centered.
func SceneSVG(s *scene.Scene, f scene.Frame, size int) string {
	if s == nil || size <= 0 {
		return ""
	}

	extent := s.Sun.Radius
	for _, g := range s.Groups {
		for _, p := range g.Guide.Points {
			extent = math.Max(extent, p.HorizontalRadius())
		}
		extent = math.Max(extent, g.Body.Distance+g.Sphere.Radius)
	}
	half := float64(size) / 2
	scale := half * 0.92 / extent
	px := func(x, z float64) (float64, float64) {
		return half + x*scale, half + z*scale
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, size, size, size, size, background))

	sb.WriteString("<g fill=\"none\" stroke-width=\"1\">\n")
	for _, g := range s.Groups {
		sb.WriteString(fmt.Sprintf(`<polyline stroke="%s" stroke-opacity="%.1f" points="`, g.Guide.Color, g.Guide.Opacity))
		for i, p := range g.Guide.Points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			x, y := px(p.X, p.Z)
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</g>\n")

	x, y := px(f.Star.Position.X, f.Star.Position.Z)
	sb.WriteString(fmt.Sprintf(`<circle id="%s" cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, s.Star.ID, x, y, bodyRadius(s.Sun.Radius, scale), s.Sun.Color))

	for i, t := range f.Bodies {
		if i >= len(s.Groups) {
			break
		}
		g := s.Groups[i]
		x, y := px(t.Position.X, t.Position.Z)
		sb.WriteString(fmt.Sprintf(`<circle id="%s" cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, g.Body.ID, x, y, bodyRadius(g.Sphere.Radius, scale), g.Sphere.Color))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// bodyRadius keeps small bodies visible at any image size.
func bodyRadius(r, scale float64) float64 {
	return math.Max(r*scale, 2)
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot in
// its cell's color.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	dotRadius := scale * 0.4
	dw, dh := canvas.Dots()
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			color := canvas.Colors[y/4][x/2]
			if color == "" {
				color = "#ffffff"
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, color))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
