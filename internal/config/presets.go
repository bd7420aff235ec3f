package config

import (
	"math"
	"sort"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/panel"
)

// Preset is a named starting set of speeds.
type Preset struct {
	Name        string
	Description string
	Speeds      func(catalog.Catalog) map[string]float64
}

// referenceDistance is the orbit that keeps speed 1.0 under the kepler
// preset.
const referenceDistance = 5.0

var Presets = map[string]Preset{
	"default": {
		Name:        "default",
		Description: "hand-tuned speeds, inner bodies fastest",
		Speeds:      func(catalog.Catalog) map[string]float64 { return catalog.DefaultSpeeds() },
	},
	"uniform": {
		Name:        "uniform",
		Description: "every body at 1.0x",
		Speeds:      func(c catalog.Catalog) map[string]float64 { return constant(c, 1) },
	},
	"frozen": {
		Name:        "frozen",
		Description: "all orbits stopped; bodies keep spinning",
		Speeds:      func(c catalog.Catalog) map[string]float64 { return constant(c, 0) },
	},
	"kepler": {
		Name:        "kepler",
		Description: "speed falls off as distance^-1.5, earth at 1.0x",
		Speeds:      kepler,
	},
}

// GetPreset looks up a preset by name.
func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func constant(c catalog.Catalog, v float64) map[string]float64 {
	out := make(map[string]float64, len(c.Bodies))
	for _, b := range c.Bodies {
		out[b.ID] = v
	}
	return out
}

func kepler(c catalog.Catalog) map[string]float64 {
	out := make(map[string]float64, len(c.Bodies))
	for _, b := range c.Bodies {
		if b.Distance <= 0 {
			out[b.ID] = panel.Max
			continue
		}
		out[b.ID] = panel.Quantize(math.Pow(b.Distance/referenceDistance, -1.5))
	}
	return out
}
