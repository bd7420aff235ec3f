// Package gui is the raylib frontend: a 3D window with the star system,
// orbit camera and an on-screen speed panel.
package gui

import (
	"context"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/panel"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/speed"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	dragSensitivity = 0.005
	wheelZoom       = 0.9
)

var (
	ColBg      = rl.Black
	ColPanel   = rl.NewColor(0, 0, 0, 230)
	ColBorder  = rl.NewColor(255, 255, 255, 26)
	ColText    = rl.NewColor(255, 255, 255, 255)
	ColTextDim = rl.NewColor(204, 204, 204, 255)
	ColTrack   = rl.NewColor(68, 68, 68, 255)
)

// Options wires an App to its collaborators. Scene is required.
type Options struct {
	Scene  *scene.Scene
	Store  *speed.Store
	Panel  *panel.Panel
	Camera *camera.OrbitControls
	Clock  clock.Source
	FPS    int
	Logger logging.Logger
}

// App owns the window resources and the per-frame input state.
type App struct {
	scene *scene.Scene
	store *speed.Store
	panel *panel.Panel
	cam   *camera.OrbitControls
	clock clock.Source
	log   logging.Logger

	Camera rl.Camera3D
	Font   rl.Font
	layout panel.Layout

	sun      rl.Model
	spheres  []rl.Model
	colors   []rl.Color
	guides   [][]rl.Vector3
	guideCol []rl.Color
	rowCol   map[string]rl.Color
	sunCol   rl.Color

	frame    scene.Frame
	dragRow  int
	orbiting bool
	quit     bool
}

func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "orrery")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// NewApp loads the GPU resources for the scene. The window must be open.
func NewApp(opts Options) *App {
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
	if opts.Logger == nil {
		opts.Logger = logging.Noop()
	}

	a := &App{
		scene:   opts.Scene,
		store:   opts.Store,
		panel:   opts.Panel,
		cam:     opts.Camera,
		clock:   opts.Clock,
		log:     opts.Logger,
		Font:    rl.GetFontDefault(),
		dragRow: -1,
	}

	a.sun = sphereModel(a.scene.Sun.Radius)
	a.sunCol = bodyColor(a.scene.Star, 1)
	a.rowCol = make(map[string]rl.Color, len(a.scene.Groups))
	for _, g := range a.scene.Groups {
		if _, _, _, err := g.Body.RGB(); err != nil {
			a.log.Warn(context.Background(), "bad body color", logging.Err(err))
		}
		col := bodyColor(g.Body, 1)
		a.spheres = append(a.spheres, sphereModel(g.Sphere.Radius))
		a.colors = append(a.colors, col)
		a.rowCol[g.Body.ID] = col
		a.guides = append(a.guides, toVectors(g.Guide.Points))
		a.guideCol = append(a.guideCol, bodyColor(g.Body, g.Guide.Opacity))
	}

	a.panel.OnChange(func(id string, v float64) {
		a.log.Debug(context.Background(), "speed changed",
			logging.String("body", id), logging.Float("speed", v))
	})
	a.syncCamera()
	return a
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(opts Options) {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	initWindow(fps)
	defer rl.CloseWindow()

	a := NewApp(opts)
	defer a.Unload()
	a.log.Info(context.Background(), "window opened",
		logging.Int("bodies", len(a.scene.Groups)), logging.Int("fps", fps))
	a.RunLoop()
	a.log.Info(context.Background(), "window closed", logging.Float("elapsed", a.frame.Elapsed))
}

// RunLoop updates and draws until the window closes or Q is pressed.
func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

// Unload releases the sphere models.
func (a *App) Unload() {
	rl.UnloadModel(a.sun)
	for _, m := range a.spheres {
		rl.UnloadModel(m)
	}
}

// Update handles input and evaluates the frame for the current time.
func (a *App) Update() {
	a.layout = panel.DefaultLayout(rl.GetScreenWidth(), a.panel.Len())

	a.handleKeys()
	a.handleMouse()

	a.cam.Update()
	a.syncCamera()
	a.frame = a.scene.Frame(a.clock.Elapsed(), a.store)
}

func (a *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	case rl.IsKeyPressed(rl.KeyUp):
		a.panel.Prev()
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyTab):
		a.panel.Next()
	case rl.IsKeyPressed(rl.KeyLeft):
		a.panel.Nudge(-1)
	case rl.IsKeyPressed(rl.KeyRight):
		a.panel.Nudge(1)
	case rl.IsKeyPressed(rl.KeyZero):
		a.panel.Zero()
	case rl.IsKeyPressed(rl.KeyR):
		a.panel.Reset()
	}
}

func (a *App) handleMouse() {
	m := rl.GetMousePosition()
	mx, my := float64(m.X), float64(m.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if row, ok := a.layout.HitTrack(mx, my); ok {
			a.dragRow = row
			a.panel.Drag(row, a.layout.FractionAt(mx))
		} else if !a.layout.Contains(mx, my) {
			a.orbiting = true
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.dragRow = -1
		a.orbiting = false
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		switch {
		case a.dragRow >= 0:
			a.panel.Drag(a.dragRow, a.layout.FractionAt(mx))
		case a.orbiting:
			d := rl.GetMouseDelta()
			a.cam.Rotate(float64(d.X)*dragSensitivity, float64(d.Y)*dragSensitivity)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !a.layout.Contains(mx, my) {
		a.cam.Zoom(math.Pow(wheelZoom, float64(wheel)))
	}
}

func (a *App) syncCamera() {
	a.Camera = rl.NewCamera3D(
		toVector(a.cam.Position()),
		toVector(a.cam.Target),
		rl.NewVector3(0, 1, 0),
		float32(a.cam.FOV),
		rl.CameraPerspective,
	)
}

// Draw renders the system, the panel and the key hints.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	a.drawSystem()
	rl.EndMode3D()

	a.drawPanel()
	a.drawText("[DRAG] ORBIT  [WHEEL] ZOOM  [ARROWS] SPEED  [0] STOP  [R] RESET  [Q] QUIT", 20, windowHeight-30, 14, ColTextDim)
	rl.DrawFPS(20, 20)

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) textWidth(text string, size int) int {
	return int(rl.MeasureTextEx(a.Font, text, float32(size), 1).X)
}
