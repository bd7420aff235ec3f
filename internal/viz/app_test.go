package viz

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/speed"
)

var epoch = time.Unix(1_700_000_000, 0)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time { return f.t }

func newTestModelAt(store *speed.Store, ft *fakeTime) Model {
	return NewModel(Options{
		Scene: scene.Build(catalog.Default()),
		Store: store,
		Clock: clock.StartWith(ft.now),
		FPS:   30,
	})
}

func newTestModel(store *speed.Store) Model {
	return newTestModelAt(store, &fakeTime{t: epoch})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestTickEvaluatesFrameFromClock(t *testing.T) {
	ft := &fakeTime{t: epoch}
	m := newTestModelAt(speed.Default(), ft)
	pi := math.Pi
	ft.t = epoch.Add(time.Duration(pi * float64(time.Second)))
	m = send(m, TickMsg(ft.t))

	if math.Abs(m.frame.Elapsed-math.Pi) > 1e-6 {
		t.Fatalf("expected elapsed π, got %f", m.frame.Elapsed)
	}
	earth := m.frame.Bodies[2].Position
	if math.Abs(earth.X+5) > 1e-5 || math.Abs(earth.Z) > 1e-5 {
		t.Errorf("expected earth near (-5,0), got %v", earth)
	}
}

func TestTickIgnoresMessageTimestamp(t *testing.T) {
	ft := &fakeTime{t: epoch}
	m := newTestModelAt(speed.Default(), ft)
	ft.t = epoch.Add(2 * time.Second)

	// A late-delivered tick still evaluates the clock's current time.
	m = send(m, TickMsg(epoch.Add(time.Second)))
	if m.frame.Elapsed != 2 {
		t.Errorf("expected elapsed 2, got %f", m.frame.Elapsed)
	}
}

func TestFixedClockSource(t *testing.T) {
	m := NewModel(Options{
		Scene: scene.Build(catalog.Default()),
		Clock: clock.Fixed(math.Pi),
		FPS:   30,
	})
	m = send(m, TickMsg(epoch))

	earth := m.frame.Bodies[2].Position
	if math.Abs(earth.X+5) > 1e-9 || math.Abs(earth.Z) > 1e-9 {
		t.Errorf("expected earth near (-5,0), got %v", earth)
	}
}

func TestKeysWriteStore(t *testing.T) {
	store := speed.Default()
	m := newTestModel(store)

	// Mercury is selected first; move to mars and speed it up.
	m = send(m, key("down"), key("down"), key("down"), key("right"), key("right"))
	if got := store.Speed("mars"); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected mars 1.0, got %v", got)
	}

	m = send(m, key("0"))
	if store.Speed("mars") != 0 {
		t.Errorf("expected mars stopped, got %v", store.Speed("mars"))
	}

	send(m, key("r"))
	if store.Speed("mars") != 0.8 {
		t.Errorf("expected mars reset to 0.8, got %v", store.Speed("mars"))
	}
	if store.Speed("earth") != 1.0 {
		t.Error("other bodies must be untouched")
	}
}

func TestSpeedChangeVisibleNextFrame(t *testing.T) {
	store := speed.Default()
	ft := &fakeTime{t: epoch}
	m := newTestModelAt(store, ft)
	ft.t = epoch.Add(2 * time.Second)
	at := TickMsg(ft.t)

	m = send(m, at)
	before := m.frame.Bodies[0].Position
	m = send(m, key("0"), at)
	after := m.frame.Bodies[0].Position

	if before == after {
		t.Error("stopping mercury should move it to angle zero on the next frame")
	}
	if math.Abs(after.X-3) > 1e-9 || after.Z != 0 {
		t.Errorf("expected stopped mercury at (3,0), got %v", after)
	}
}

func TestViewShowsPanel(t *testing.T) {
	m := newTestModel(speed.Default())
	out := m.View()

	for _, want := range []string{"Orbital Speeds", "Mercury", "Neptune", "2.0x", "0.1x"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = send(m, key("?"))
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay should be shown")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(speed.Default())
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.canvas.Height != 28 || m.canvas.Width != 100-panelWidth-6 {
		t.Errorf("unexpected canvas %dx%d", m.canvas.Width, m.canvas.Height)
	}
}

func TestThemeCycle(t *testing.T) {
	m := newTestModel(speed.Default())
	m = send(m, key("t"))
	if m.theme.Name == ThemeSpace.Name {
		t.Error("theme should change")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(speed.Default())
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestDrawSceneLightsStar(t *testing.T) {
	s := scene.Build(catalog.Default())
	m := newTestModel(speed.Default())
	c := NewCanvas(80, 40)

	DrawScene(c, s, s.Frame(0, speed.Default()), m.cam)

	w, h := c.Dots()
	if !c.IsSet(w/2, h/2) {
		t.Error("star at the origin should cover the canvas center")
	}
}

func TestDim(t *testing.T) {
	if got := dim("#ffffff", 0.6); got != "#999999" {
		t.Errorf("expected #999999, got %s", got)
	}
	if got := dim("oops", 0.5); got != "oops" {
		t.Errorf("invalid colors pass through, got %s", got)
	}
}
