// Package panel is the speed control surface: one range control per body,
// bound to the speed store. Rendering adapters draw Rows and forward user
// input to the methods here.
package panel

import (
	"fmt"
	"math"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/speed"
)

// Range of every speed control.
const (
	Min  = 0.0
	Max  = 3.0
	Step = 0.1

	stepsPerUnit = 10
)

// Row is a rendered view of one control.
type Row struct {
	ID       string
	Label    string
	Color    string
	Value    float64
	Readout  string  // e.g. "0.8x"
	Fraction float64 // slider position in [0, 1]
	Selected bool
}

// Panel binds the catalog bodies to a store. It is the only writer of the
// store.
type Panel struct {
	bodies   []catalog.Body
	defaults map[string]float64
	store    *speed.Store
	selected int
	onChange func(id string, value float64)
}

// New creates a panel over the catalog's orbiting bodies.
func New(c catalog.Catalog, store *speed.Store) *Panel {
	bodies := make([]catalog.Body, len(c.Bodies))
	copy(bodies, c.Bodies)
	return &Panel{bodies: bodies, defaults: catalog.DefaultSpeeds(), store: store}
}

// OnChange registers a callback run after each committed write.
func (p *Panel) OnChange(fn func(id string, value float64)) { p.onChange = fn }

// Len is the number of controls.
func (p *Panel) Len() int { return len(p.bodies) }

// Selected returns the index of the focused control.
func (p *Panel) Selected() int { return p.selected }

// Rows renders every control from the current store contents.
func (p *Panel) Rows() []Row {
	snap := p.store.Snapshot()
	rows := make([]Row, len(p.bodies))
	for i, b := range p.bodies {
		v := snap.Get(b.ID)
		rows[i] = Row{
			ID:       b.ID,
			Label:    b.Label,
			Color:    b.Color,
			Value:    v,
			Readout:  Readout(v),
			Fraction: Fraction(v),
			Selected: i == p.selected,
		}
	}
	return rows
}

// Next focuses the following control, wrapping around.
func (p *Panel) Next() {
	if len(p.bodies) > 0 {
		p.selected = (p.selected + 1) % len(p.bodies)
	}
}

// Prev focuses the preceding control, wrapping around.
func (p *Panel) Prev() {
	if len(p.bodies) > 0 {
		p.selected = (p.selected - 1 + len(p.bodies)) % len(p.bodies)
	}
}

// Select focuses control i; out of range indices are ignored.
func (p *Panel) Select(i int) {
	if i >= 0 && i < len(p.bodies) {
		p.selected = i
	}
}

// Nudge moves the focused control by n steps.
func (p *Panel) Nudge(n int) {
	if id, ok := p.current(); ok {
		p.SetValue(id, p.store.Speed(id)+float64(n)*Step)
	}
}

// Zero stops the focused body.
func (p *Panel) Zero() {
	if id, ok := p.current(); ok {
		p.SetValue(id, Min)
	}
}

// Reset returns the focused control to its catalog default.
func (p *Panel) Reset() {
	id, ok := p.current()
	if !ok {
		return
	}
	v, ok := p.defaults[id]
	if !ok {
		v = speed.DefaultMultiplier
	}
	p.SetValue(id, v)
}

// SetValue snaps v to the control's step and range, then writes it.
func (p *Panel) SetValue(id string, v float64) {
	v = Quantize(v)
	p.store.Set(id, v)
	if p.onChange != nil {
		p.onChange(id, v)
	}
}

func (p *Panel) current() (string, bool) {
	if len(p.bodies) == 0 {
		return "", false
	}
	return p.bodies[p.selected].ID, true
}

// Quantize clamps v to [Min, Max] and rounds it to a multiple of Step.
func Quantize(v float64) float64 {
	if math.IsNaN(v) {
		return Min
	}
	v = math.Max(Min, math.Min(Max, v))
	// Dividing a whole step count avoids 0.30000000000000004-style values.
	return math.Round(v*stepsPerUnit) / stepsPerUnit
}

// Fraction is the slider position for v.
func Fraction(v float64) float64 {
	return (math.Max(Min, math.Min(Max, v)) - Min) / (Max - Min)
}

// Readout formats a speed to one decimal place.
func Readout(v float64) string {
	return fmt.Sprintf("%.1fx", v)
}

// Drag moves control i's slider to f, writing only when the snapped value
// differs from the stored one. It reports whether a write happened.
func (p *Panel) Drag(i int, f float64) bool {
	if i < 0 || i >= len(p.bodies) {
		return false
	}
	id := p.bodies[i].ID
	v := Quantize(Min + f*(Max-Min))
	if v == p.store.Speed(id) {
		return false
	}
	p.selected = i
	p.SetValue(id, v)
	return true
}
