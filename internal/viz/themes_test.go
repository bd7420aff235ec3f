package viz

import "testing"

func TestGetTheme(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("expected retro theme")
	}
	if GetTheme("nope").Name != ThemeSpace.Name {
		t.Error("unknown theme should fall back to space")
	}
}

func TestNextThemeCycles(t *testing.T) {
	name := ThemeSpace.Name
	for range Themes {
		name = NextTheme(name).Name
	}
	if name != ThemeSpace.Name {
		t.Errorf("expected to cycle back to space, got %s", name)
	}
}

func TestThemeNames(t *testing.T) {
	if len(ThemeNames()) != len(Themes) {
		t.Error("names and themes disagree")
	}
}
