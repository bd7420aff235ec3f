package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/panel"
	"gopkg.in/yaml.v3"
)

const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"

	DefaultFPS    = 60
	DefaultTheme  = "space"
	DefaultPreset = "default"
)

// Config is the YAML configuration file.
type Config struct {
	Frontend string             `yaml:"frontend"`
	FPS      int                `yaml:"fps"`
	Theme    string             `yaml:"theme"`
	Preset   string             `yaml:"preset"`
	Speeds   map[string]float64 `yaml:"speeds,omitempty"`
	Camera   CameraConfig       `yaml:"camera"`
	Log      LogConfig          `yaml:"log"`
}

// CameraConfig seeds the orbit controls.
type CameraConfig struct {
	Position    [3]float64 `yaml:"position"`
	FOV         float64    `yaml:"fov"`
	Damping     float64    `yaml:"damping"`
	MinDistance float64    `yaml:"min_distance"`
	MaxDistance float64    `yaml:"max_distance"`
}

// LogConfig selects the log level, format and destination.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	p := camera.DefaultPosition
	return &Config{
		Frontend: FrontendGUI,
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		Preset:   DefaultPreset,
		Camera: CameraConfig{
			Position:    [3]float64{p.X, p.Y, p.Z},
			FOV:         camera.DefaultFOV,
			Damping:     camera.DefaultDamping,
			MinDistance: camera.DefaultMinDistance,
			MaxDistance: camera.DefaultMaxDistance,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every problem found, joined.
func (c *Config) Validate(cat catalog.Catalog) error {
	var errs []error
	switch c.Frontend {
	case FrontendGUI, FrontendTUI:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS))
	}
	if c.Preset != "" {
		if _, ok := GetPreset(c.Preset); !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownPreset, c.Preset))
		}
	}
	for _, id := range sortedKeys(c.Speeds) {
		if err := checkSpeed(cat, id, c.Speeds[id]); err != nil {
			errs = append(errs, err)
		}
	}
	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 || cam.Damping < 0 || cam.Damping > 1 {
		errs = append(errs, fmt.Errorf("%w: fov %g, damping %g", ErrInvalidCamera, cam.FOV, cam.Damping))
	}
	if cam.MinDistance <= 0 || cam.MaxDistance <= 0 || cam.MinDistance > cam.MaxDistance {
		errs = append(errs, fmt.Errorf("%w: distance %g..%g", ErrInvalidCamera, cam.MinDistance, cam.MaxDistance))
	}
	return errors.Join(errs...)
}

// SetSpeed records an override parsed from "value" text, as given on the
// command line.
func (c *Config) SetSpeed(cat catalog.Catalog, id, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("speed for %s: %w", id, err)
	}
	if err := checkSpeed(cat, id, v); err != nil {
		return err
	}
	if c.Speeds == nil {
		c.Speeds = make(map[string]float64)
	}
	c.Speeds[id] = v
	return nil
}

// InitialSpeeds layers catalog defaults, the preset, then per-body
// overrides.
func (c *Config) InitialSpeeds(cat catalog.Catalog) (map[string]float64, error) {
	speeds := catalog.DefaultSpeeds()
	if c.Preset != "" {
		p, ok := GetPreset(c.Preset)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, c.Preset)
		}
		for id, v := range p.Speeds(cat) {
			speeds[id] = v
		}
	}
	for id, v := range c.Speeds {
		if err := checkSpeed(cat, id, v); err != nil {
			return nil, err
		}
		speeds[id] = v
	}
	return speeds, nil
}

func checkSpeed(cat catalog.Catalog, id string, v float64) error {
	if _, ok := cat.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBody, id)
	}
	if v < panel.Min || v > panel.Max {
		return fmt.Errorf("%w: %s=%g (want %g..%g)", ErrSpeedRange, id, v, panel.Min, panel.Max)
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
