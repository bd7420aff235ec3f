package panel

import "math"

// Layout positions the controls in screen pixels, top-right of the window.
type Layout struct {
	X, Y        float64 // top-left of the panel box
	Width       float64
	Padding     float64
	RowHeight   float64
	TrackOffset float64 // from a row's top to its slider track
	TrackHeight float64
	Rows        int
}

// DefaultLayout anchors the panel 20px from the top-right corner.
func DefaultLayout(screenWidth, rows int) Layout {
	const width = 250.0
	return Layout{
		X:           float64(screenWidth) - 20 - width,
		Y:           20,
		Width:       width,
		Padding:     15,
		RowHeight:   44,
		TrackOffset: 22,
		TrackHeight: 6,
		Rows:        rows,
	}
}

// Height of the whole panel box.
func (l Layout) Height() float64 {
	return 2*l.Padding + float64(l.Rows)*l.RowHeight
}

// RowTop is the y of row i's label line.
func (l Layout) RowTop(i int) float64 {
	return l.Y + l.Padding + float64(i)*l.RowHeight
}

// Track returns row i's slider track rectangle.
func (l Layout) Track(i int) (x, y, w, h float64) {
	return l.X + l.Padding, l.RowTop(i) + l.TrackOffset, l.Width - 2*l.Padding, l.TrackHeight
}

// Contains reports whether a point is inside the panel box.
func (l Layout) Contains(px, py float64) bool {
	return px >= l.X && px <= l.X+l.Width && py >= l.Y && py <= l.Y+l.Height()
}

// HitTrack finds the slider under a point, with a few pixels of vertical
// slack so thin tracks are easy to grab.
func (l Layout) HitTrack(px, py float64) (int, bool) {
	const slack = 6
	for i := 0; i < l.Rows; i++ {
		x, y, w, h := l.Track(i)
		if px >= x-slack && px <= x+w+slack && py >= y-slack && py <= y+h+slack {
			return i, true
		}
	}
	return 0, false
}

// FractionAt maps an x coordinate onto the track, clamped to [0, 1].
func (l Layout) FractionAt(px float64) float64 {
	x, _, w, _ := l.Track(0)
	if w <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, (px-x)/w))
}
