package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/geom"
)

const sphereDetail = 32

var yAxis = rl.NewVector3(0, 1, 0)

func sphereModel(radius float64) rl.Model {
	return rl.LoadModelFromMesh(rl.GenMeshSphere(float32(radius), sphereDetail, sphereDetail))
}

// bodyColor converts a catalog color; unparsable input falls back to white.
func bodyColor(b catalog.Body, opacity float64) rl.Color {
	r, g, bl, err := b.RGB()
	if err != nil {
		r, g, bl = 255, 255, 255
	}
	return rl.NewColor(r, g, bl, uint8(math.Round(opacity*255)))
}

func toVector(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func toVectors(ps []geom.Vec3) []rl.Vector3 {
	out := make([]rl.Vector3, len(ps))
	for i, p := range ps {
		out[i] = toVector(p)
	}
	return out
}

func (a *App) drawSystem() {
	for i, pts := range a.guides {
		for j := 1; j < len(pts); j++ {
			rl.DrawLine3D(pts[j-1], pts[j], a.guideCol[i])
		}
	}

	drawSphere(a.sun, a.frame.Star.Position, a.frame.Star.RotationY, a.sunCol)
	for i, t := range a.frame.Bodies {
		if i >= len(a.spheres) {
			break
		}
		drawSphere(a.spheres[i], t.Position, t.RotationY, a.colors[i])
	}
}

// drawSphere draws a solid sphere with a darker wireframe on top so the
// spin about Y is visible.
func drawSphere(m rl.Model, pos geom.Vec3, rotY float64, col rl.Color) {
	p := toVector(pos)
	deg := float32(rotY * 180 / math.Pi)
	scale := rl.NewVector3(1, 1, 1)
	rl.DrawModelEx(m, p, yAxis, deg, scale, col)
	rl.DrawModelWiresEx(m, p, yAxis, deg, scale, rl.ColorBrightness(col, -0.4))
}

func (a *App) drawPanel() {
	l := a.layout
	box := rl.NewRectangle(float32(l.X), float32(l.Y), float32(l.Width), float32(l.Height()))
	rl.DrawRectangleRounded(box, 0.05, 8, ColPanel)
	rl.DrawRectangleLinesEx(box, 1, ColBorder)

	for i, row := range a.panel.Rows() {
		top := int(l.RowTop(i))
		x := int(l.X + l.Padding)
		labelCol := ColTextDim
		if row.Selected {
			labelCol = ColText
		}
		a.drawText(row.Label, x, top, 14, labelCol)
		right := int(l.X+l.Width-l.Padding) - a.textWidth(row.Readout, 12)
		a.drawText(row.Readout, right, top+2, 12, ColTextDim)

		tx, ty, tw, th := l.Track(i)
		track := rl.NewRectangle(float32(tx), float32(ty), float32(tw), float32(th))
		rl.DrawRectangleRounded(track, 1, 4, ColTrack)
		filled := track
		filled.Width = float32(tw * row.Fraction)
		rl.DrawRectangleRounded(filled, 1, 4, rl.Fade(a.rowCol[row.ID], 0.8))

		thumbX := int32(tx + tw*row.Fraction)
		thumbY := int32(ty + th/2)
		rl.DrawCircle(thumbX, thumbY, 7, a.rowCol[row.ID])
		if row.Selected {
			rl.DrawCircleLines(thumbX, thumbY, 9, ColText)
		}
	}
}
