package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file, relative to the process working directory.
// The HEXBALL_CONFIG environment variable (which may come from .env) overrides it.
const ConfigPath = "config/hexball.yaml"

// EnvConfigPath names the environment variable holding an alternative config path.
const EnvConfigPath = "HEXBALL_CONFIG"

// Config holds everything needed to build and show the simulation.
type Config struct {
	Window WindowConfig `yaml:"window"`
	World  WorldConfig  `yaml:"world"`
	Ball   BallConfig   `yaml:"ball"`
	Cage   CageConfig   `yaml:"cage"`
	Debug  DebugConfig  `yaml:"debug"`
}

// WindowConfig controls the raylib window and the fixed tick rate (dt = 1/FPS).
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// WorldConfig holds the global forces. Damping is the per-tick velocity factor.
type WorldConfig struct {
	GravityX float64 `yaml:"gravity_x"`
	GravityY float64 `yaml:"gravity_y"`
	Damping  float64 `yaml:"damping"`
}

// BallConfig describes the dynamic ball.
type BallConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	VelocityX   float64 `yaml:"velocity_x"`
	VelocityY   float64 `yaml:"velocity_y"`
	Radius      float64 `yaml:"radius"`
	Mass        float64 `yaml:"mass"`
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
}

// CageConfig describes the rotating polygonal cage.
type CageConfig struct {
	X                 float64 `yaml:"x"`
	Y                 float64 `yaml:"y"`
	Radius            float64 `yaml:"radius"`
	Sides             int     `yaml:"sides"`
	Thickness         float64 `yaml:"thickness"`
	RotationDegPerSec float64 `yaml:"rotation_deg_per_sec"`
	Restitution       float64 `yaml:"restitution"`
	Friction          float64 `yaml:"friction"`
}

// DebugConfig toggles the overlays drawn on top of the scene.
type DebugConfig struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowStats    bool `yaml:"show_stats"`
	ShowVelocity bool `yaml:"show_velocity"`
}

// Default returns the stock scene: an 800x600 window at 60 FPS, a ball of radius 15 inside a
// hexagon of radius 150 turning 60°/s (1° per frame) under gravity 900 and damping 0.99.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "hexball",
			FPS:    60,
		},
		World: WorldConfig{
			GravityY: 900,
			Damping:  0.99,
		},
		Ball: BallConfig{
			X:           400,
			Y:           250,
			Radius:      15,
			Mass:        1,
			Restitution: 0.9,
			Friction:    0.4,
		},
		Cage: CageConfig{
			X:                 400,
			Y:                 300,
			Radius:            150,
			Sides:             6,
			Thickness:         3,
			RotationDegPerSec: 60,
			Restitution:       0.9,
			Friction:          0.5,
		},
		Debug: DebugConfig{
			ShowFPS:   true,
			ShowStats: true,
		},
	}
}

// Dt returns the fixed tick duration in seconds.
func (c Config) Dt() float64 {
	return 1 / float64(c.Window.FPS)
}

// Validate checks the values the physics package does not check itself.
// Masses, radii and materials are validated when the bodies are built.
func (c Config) Validate() error {
	if c.Window.FPS <= 0 {
		return fmt.Errorf("engineconfig: fps must be > 0, got %d", c.Window.FPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("engineconfig: window size must be > 0, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Cage.Sides < 3 {
		return fmt.Errorf("engineconfig: cage needs at least 3 sides, got %d", c.Cage.Sides)
	}
	return nil
}

// Path returns the config path to use: $HEXBALL_CONFIG if set, otherwise ConfigPath.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return ConfigPath
}

// Load reads the config from path. Keys missing from the file keep their Default() values.
// A missing file is not an error. If the file cannot be parsed, Default() is returned along
// with the error so the caller can report it and carry on.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("engineconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("engineconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path as YAML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Merge copies every non-zero field of overrides onto dst, section by section. It is used to
// apply command-line flags on top of a loaded file: flags left at their zero value do not
// override anything. Booleans can only be switched on this way.
func Merge(dst *Config, overrides Config) error {
	opt := copier.Option{IgnoreEmpty: true}
	sections := []struct {
		name     string
		dst, src interface{}
	}{
		{"window", &dst.Window, &overrides.Window},
		{"world", &dst.World, &overrides.World},
		{"ball", &dst.Ball, &overrides.Ball},
		{"cage", &dst.Cage, &overrides.Cage},
		{"debug", &dst.Debug, &overrides.Debug},
	}
	for _, s := range sections {
		if err := copier.CopyWithOption(s.dst, s.src, opt); err != nil {
			return fmt.Errorf("engineconfig: merge %s: %w", s.name, err)
		}
	}
	return nil
}
