package config

import (
	"testing"

	"github.com/san-kum/orrery/internal/catalog"
)

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected miss for nonexistent preset")
	}
}

func TestPresetsCoverCatalog(t *testing.T) {
	cat := catalog.Default()
	for _, name := range ListPresets() {
		p, _ := GetPreset(name)
		speeds := p.Speeds(cat)
		for _, id := range cat.IDs() {
			v, ok := speeds[id]
			if !ok {
				t.Errorf("%s: missing %s", name, id)
			}
			if v < 0 || v > 3 {
				t.Errorf("%s: %s=%v outside control range", name, id, v)
			}
		}
	}
}

func TestKeplerPreset(t *testing.T) {
	p, _ := GetPreset("kepler")
	speeds := p.Speeds(catalog.Default())

	want := map[string]float64{
		"mercury": 2.2, "venus": 1.4, "earth": 1.0, "mars": 0.7,
		"jupiter": 0.4, "saturn": 0.3, "uranus": 0.2, "neptune": 0.1,
	}
	for id, v := range want {
		if speeds[id] != v {
			t.Errorf("%s: expected %v, got %v", id, v, speeds[id])
		}
	}
}

func TestFrozenPreset(t *testing.T) {
	p, _ := GetPreset("frozen")
	for id, v := range p.Speeds(catalog.Default()) {
		if v != 0 {
			t.Errorf("%s: expected 0, got %v", id, v)
		}
	}
}
