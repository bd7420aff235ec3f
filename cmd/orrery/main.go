package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/geom"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/panel"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/speed"
	"github.com/san-kum/orrery/internal/viz"
	"github.com/spf13/cobra"
)

var (
	// Config file
	configFile string
	preset     string
	speedFlags []string
	logLevel   string
	logFormat  string
	logFile    string

	// Live view
	frameRate int
	theme     string

	// Snapshot
	snapAt    float64
	snapOut   string
	snapSize  int
	snapStyle string

	// Ephemeris
	ephTime float64
	ephStep float64
	ephCSV  string
	ephJSON string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "orrery",
		Short:         "animated star system with live speed controls",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrontend(cmd, config.FrontendGUI)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "speed preset (see `orrery presets`)")
	pf.StringArrayVar(&speedFlags, "speed", nil, "per-body speed override, id=value (repeatable)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the 3D window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrontend(cmd, config.FrontendGUI)
		},
	}
	guiCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrontend(cmd, config.FrontendTUI)
		},
	}
	tuiCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate")
	tuiCmd.Flags().StringVar(&theme, "theme", "", "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the catalog with initial speeds",
		Args:  cobra.NoArgs,
		RunE:  listBodies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list speed presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write an SVG of the system at a point in time",
		Args:  cobra.NoArgs,
		RunE:  writeSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&snapAt, "at", 0, "elapsed seconds")
	snapshotCmd.Flags().StringVar(&snapOut, "out", "orrery.svg", "output file")
	snapshotCmd.Flags().IntVar(&snapSize, "size", 800, "image size in pixels (vector style)")
	snapshotCmd.Flags().StringVar(&snapStyle, "style", "vector", "vector (top-down) or braille (camera view)")

	ephemerisCmd := &cobra.Command{
		Use:   "ephemeris [body]",
		Short: "plot a body's position over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotEphemeris,
	}
	ephemerisCmd.Flags().Float64Var(&ephTime, "time", 10, "duration in seconds")
	ephemerisCmd.Flags().Float64Var(&ephStep, "step", 0.05, "sample interval in seconds")
	ephemerisCmd.Flags().StringVar(&ephCSV, "csv", "", "also write samples to this CSV file")
	ephemerisCmd.Flags().StringVar(&ephJSON, "json", "", "also write samples to this JSON file")

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(catalog.Default())
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, bodiesCmd, presetsCmd, snapshotCmd, ephemerisCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads --config, then applies the persistent flags on top.
func loadConfig(cat catalog.Catalog) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}

	if preset != "" {
		cfg.Preset = preset
	}
	for _, kv := range speedFlags {
		id, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--speed %q: want id=value", kv)
		}
		if err := cfg.SetSpeed(cat, strings.TrimSpace(id), strings.TrimSpace(value)); err != nil {
			return nil, err
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if frameRate > 0 {
		cfg.FPS = frameRate
	}
	if theme != "" {
		cfg.Theme = theme
	}

	if err := cfg.Validate(cat); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger opens the configured log destination. The terminal frontend
// owns the screen, so it only logs when a file is given.
func newLogger(cfg config.LogConfig, frontend string) (logging.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case frontend == config.FrontendTUI:
		return logging.Noop(), closeFn, nil
	}
	return logging.New(logging.Config{Level: cfg.Level, Format: cfg.Format, Output: out}), closeFn, nil
}

func newCamera(cfg config.CameraConfig) *camera.OrbitControls {
	return camera.New(camera.Options{
		Position:    geom.Vec3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]},
		FOV:         cfg.FOV,
		Damping:     cfg.Damping,
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
	})
}

// newSystem builds the scene and a store seeded from cfg.
func newSystem(cat catalog.Catalog, cfg *config.Config) (*scene.Scene, *speed.Store, error) {
	speeds, err := cfg.InitialSpeeds(cat)
	if err != nil {
		return nil, nil, err
	}
	return scene.Build(cat), speed.New(speeds), nil
}

func runFrontend(cmd *cobra.Command, frontend string) error {
	cat := catalog.Default()
	cfg, err := loadConfig(cat)
	if err != nil {
		return err
	}
	cfg.Frontend = frontend

	log, closeLog, err := newLogger(cfg.Log, frontend)
	if err != nil {
		return err
	}
	defer closeLog()

	s, store, err := newSystem(cat, cfg)
	if err != nil {
		return err
	}
	p := panel.New(cat, store)
	cam := newCamera(cfg.Camera)

	log.Info(context.Background(), "starting",
		logging.String("frontend", frontend),
		logging.String("preset", cfg.Preset),
		logging.Int("fps", cfg.FPS))

	switch frontend {
	case config.FrontendTUI:
		return viz.Run(viz.Options{
			Scene:  s,
			Store:  store,
			Panel:  p,
			Camera: cam,
			Clock:  clock.Start(),
			FPS:    cfg.FPS,
			Theme:  cfg.Theme,
			Logger: log,
		})
	default:
		gui.Run(gui.Options{
			Scene:  s,
			Store:  store,
			Panel:  p,
			Camera: cam,
			Clock:  clock.Start(),
			FPS:    cfg.FPS,
			Logger: log,
		})
		return nil
	}
}

func listBodies(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	cfg, err := loadConfig(cat)
	if err != nil {
		return err
	}
	speeds, err := cfg.InitialSpeeds(cat)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tDISTANCE\tSIZE\tCOLOR\tSPEED\tPERIOD")
	fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2f\t%s\t-\t-\n",
		cat.Star.ID, cat.Star.Label, cat.Star.Distance, cat.Star.Size, cat.Star.Color)
	for _, b := range cat.Bodies {
		v := speeds[b.ID]
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.2f\t%s\t%s\t%s\n",
			b.ID, b.Label, b.Distance, b.Size, b.Color, panel.Readout(v), formatPeriod(orbit.Period(v)))
	}
	return w.Flush()
}

func formatPeriod(p float64) string {
	if math.IsInf(p, 1) {
		return "stopped"
	}
	return fmt.Sprintf("%.2fs", p)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
	}
	return w.Flush()
}

func writeSnapshot(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	cfg, err := loadConfig(cat)
	if err != nil {
		return err
	}
	s, store, err := newSystem(cat, cfg)
	if err != nil {
		return err
	}
	f := s.Frame(clock.Fixed(snapAt).Elapsed(), store)

	var svg string
	switch snapStyle {
	case "vector":
		svg = export.SceneSVG(s, f, snapSize)
	case "braille":
		c := viz.NewCanvas(120, 60)
		viz.DrawScene(c, s, f, newCamera(cfg.Camera))
		svg = export.CanvasToSVG(c, 4)
	default:
		return fmt.Errorf("unknown snapshot style: %s", snapStyle)
	}

	if err := os.WriteFile(snapOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (t=%.2fs)\n", snapOut, snapAt)
	return nil
}

func plotEphemeris(cmd *cobra.Command, args []string) error {
	id := args[0]
	cat := catalog.Default()
	if _, ok := cat.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", config.ErrUnknownBody, id)
	}
	if ephTime <= 0 || ephStep <= 0 {
		return fmt.Errorf("--time and --step must be positive")
	}
	if scene.SampleCount(0, ephTime, ephStep) < 0 {
		return fmt.Errorf("--time %g / --step %g needs more than %d samples", ephTime, ephStep, scene.MaxSamples)
	}

	cfg, err := loadConfig(cat)
	if err != nil {
		return err
	}
	s, store, err := newSystem(cat, cfg)
	if err != nil {
		return err
	}

	samples := s.Sample(id, 0, ephTime, ephStep, store)
	xs := make([]float64, len(samples))
	zs := make([]float64, len(samples))
	for i, sm := range samples {
		xs[i] = sm.Position.X
		zs[i] = sm.Position.Z
	}

	v := store.Speed(id)
	caption := fmt.Sprintf("%s x (red) and z (blue), speed %s, period %s",
		id, panel.Readout(v), formatPeriod(orbit.Period(v)))
	graph := asciigraph.PlotMany([][]float64{xs, zs},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)

	if ephCSV != "" {
		if err := writeFile(ephCSV, func(w io.Writer) error {
			return export.WriteEphemerisCSV(w, samples)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", ephCSV)
	}
	if ephJSON != "" {
		g, _ := s.Group(id)
		if err := writeFile(ephJSON, func(w io.Writer) error {
			return export.WriteEphemerisJSON(w, g, v, ephStep, samples)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", ephJSON)
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
