package viz

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/panel"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/speed"
)

const (
	defaultWidth  = 120
	defaultHeight = 40

	orbitStep = 0.08
	zoomStep  = 1.15
)

// TickMsg advances the animation by one frame.
type TickMsg time.Time

// Options wires a Model to its collaborators. Scene is required.
type Options struct {
	Scene  *scene.Scene
	Store  *speed.Store
	Panel  *panel.Panel
	Camera *camera.OrbitControls
	Clock  clock.Source
	FPS    int
	Theme  string
	Logger logging.Logger
}

// Model is the bubbletea model for the terminal frontend.
type Model struct {
	scene    *scene.Scene
	store    *speed.Store
	panel    *panel.Panel
	cam      *camera.OrbitControls
	clock    clock.Source
	interval time.Duration
	theme    Theme
	styles   styles
	log      logging.Logger

	canvas        *Canvas
	frame         scene.Frame
	width, height int
	showHelp      bool
	frames        int
}

// NewModel builds a Model. A nil Panel gets one over Store; a nil Store gets
// the default speeds.
func NewModel(opts Options) Model {
	if opts.Store == nil {
		opts.Store = speed.Default()
	}
	if opts.Panel == nil {
		opts.Panel = panel.New(catalog.Catalog{Star: opts.Scene.Star, Bodies: opts.Scene.Bodies()}, opts.Store)
	}
	if opts.Camera == nil {
		opts.Camera = camera.New(camera.Options{})
	}
	if opts.Clock == nil {
		opts.Clock = clock.Start()
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Logger == nil {
		opts.Logger = logging.Noop()
	}
	theme := GetTheme(opts.Theme)
	m := Model{
		scene:    opts.Scene,
		store:    opts.Store,
		panel:    opts.Panel,
		cam:      opts.Camera,
		clock:    opts.Clock,
		interval: time.Second / time.Duration(opts.FPS),
		theme:    theme,
		styles:   newStyles(theme),
		log:      opts.Logger,
	}
	m.resize(defaultWidth, defaultHeight)
	m.frame = m.scene.Frame(0, m.store)
	return m
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cw := w - panelWidth - 6
	ch := h - 2
	m.canvas = NewCanvas(cw, ch)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		m.cam.Update()
		m.frame = m.scene.Frame(m.clock.Elapsed(), m.store)
		m.frames++
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.log.Info(context.Background(), "terminal frontend closed",
			logging.Int("frames", m.frames), logging.Float("elapsed", m.frame.Elapsed))
		return m, tea.Quit
	case "up", "k":
		m.panel.Prev()
	case "down", "j", "tab":
		m.panel.Next()
	case "left", "h":
		m.panel.Nudge(-1)
	case "right", "l":
		m.panel.Nudge(1)
	case "H":
		m.panel.Nudge(-10)
	case "L":
		m.panel.Nudge(10)
	case "0":
		m.panel.Zero()
	case "r":
		m.panel.Reset()
	case "a":
		m.cam.Rotate(-orbitStep, 0)
	case "d":
		m.cam.Rotate(orbitStep, 0)
	case "w":
		m.cam.Rotate(0, orbitStep)
	case "s":
		m.cam.Rotate(0, -orbitStep)
	case "+", "=":
		m.cam.Zoom(1 / zoomStep)
	case "-", "_":
		m.cam.Zoom(zoomStep)
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// View renders the scene beside the speed panel.
func (m Model) View() string {
	m.canvas.Clear()
	DrawScene(m.canvas, m.scene, m.frame, m.cam)

	header := m.styles.title.Render("orrery") + " " +
		m.styles.muted.Render(fmt.Sprintf("t=%.1fs", m.frame.Elapsed))
	left := lipgloss.JoinVertical(lipgloss.Left, header, m.canvas.Render())
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", renderPanel(m.styles, m.panel.Rows()))
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

// Run starts the terminal frontend and blocks until the user quits.
func Run(opts Options) error {
	m := NewModel(opts)
	m.log.Info(context.Background(), "terminal frontend started",
		logging.Int("bodies", len(m.scene.Groups)), logging.String("theme", m.theme.Name))
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
