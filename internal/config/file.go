package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"engine2d/internal/engine"

	"github.com/pelletier/go-toml/v2"
)

// Settings is the content of an engine2d TOML file.
type Settings struct {
	Window    WindowSettings    `toml:"window"`
	Life      LifeFileSettings  `toml:"life"`
	Shaders   ShaderSettings    `toml:"shaders"`
	Profiling ProfilingSettings `toml:"profiling"`
}

// WindowSettings configures the native window.
type WindowSettings struct {
	Width        int        `toml:"width"`
	Height       int        `toml:"height"`
	Title        string     `toml:"title"`
	SwapInterval int        `toml:"swap_interval"`
	FPSLimit     int        `toml:"fps_limit"`
	Transparent  bool       `toml:"transparent"`
	ClearColor   [4]float32 `toml:"clear_color"`
}

// LifeFileSettings configures the automaton demo.
type LifeFileSettings struct {
	Columns   int     `toml:"columns"`
	Rows      int     `toml:"rows"`
	Speed     int     `toml:"speed"`
	Density   float64 `toml:"density"`
	Seed      int64   `toml:"seed"`
	Pattern   string  `toml:"pattern"`
	PointSize float32 `toml:"point_size"`
}

// ShaderSettings points at the shader source directory.
type ShaderSettings struct {
	Dir string `toml:"dir"`
}

// ProfilingSettings configures slow frame logging.
type ProfilingSettings struct {
	SlowFrameMs int `toml:"slow_frame_ms"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:        1280,
			Height:       720,
			Title:        "engine2d",
			SwapInterval: 1,
			Transparent:  true,
			ClearColor:   [4]float32{0.2, 0.2, 0.2, 1.0},
		},
		Life: LifeFileSettings{
			Columns:   128,
			Rows:      72,
			Speed:     3,
			Density:   0.25,
			PointSize: 6,
		},
		Shaders:   ShaderSettings{Dir: "assets/shaders"},
		Profiling: ProfilingSettings{SlowFrameMs: 0},
	}
}

// Parse decodes TOML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Settings, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads path with Parse. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Validate rejects settings no window or grid can be built from.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	if s.Window.SwapInterval < 0 {
		return fmt.Errorf("config: swap_interval %d must not be negative", s.Window.SwapInterval)
	}
	if s.Window.FPSLimit < 0 {
		return fmt.Errorf("config: fps_limit %d must not be negative", s.Window.FPSLimit)
	}
	if s.Life.Columns <= 0 || s.Life.Rows <= 0 {
		return fmt.Errorf("config: life grid %dx%d must be positive", s.Life.Columns, s.Life.Rows)
	}
	if s.Life.Density < 0 || s.Life.Density > 1 {
		return fmt.Errorf("config: life density %v outside [0,1]", s.Life.Density)
	}
	return nil
}

// Apply pushes the runtime-tunable values into the global settings.
func (s Settings) Apply() {
	SetLifeSpeed(s.Life.Speed)
	SetFPSLimit(s.Window.FPSLimit)
}

// WindowConfig converts the window section for engine.RenderContext.NewWindowConfig.
func (s Settings) WindowConfig() engine.WindowConfig {
	cfg := engine.DefaultWindowConfig(s.Window.Width, s.Window.Height)
	if s.Window.Title != "" {
		cfg.Title = s.Window.Title
	}
	cfg.SwapInterval = s.Window.SwapInterval
	cfg.Transparent = s.Window.Transparent
	cfg.SlowFrame = time.Duration(s.Profiling.SlowFrameMs) * time.Millisecond
	return cfg
}

// ClearColor returns the configured clear color.
func (s Settings) ClearColor() engine.Color {
	c := s.Window.ClearColor
	return engine.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}
