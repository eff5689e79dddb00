package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	EnvWidth      = "QUICKFRAME_WIDTH"
	EnvHeight     = "QUICKFRAME_HEIGHT"
	EnvTitle      = "QUICKFRAME_TITLE"
	EnvBackground = "QUICKFRAME_BG"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "PygameQuick Window"
)

// DefaultBackground is the dark grey the canvas is cleared to every frame.
var DefaultBackground = RGB{41, 41, 41}

var ErrInvalidWindow = errors.New("invalid window config")

// RGB is a background color triple. Channels are ints so that out-of-range
// values from files or env survive until Validate reports them.
type RGB [3]int

// Window is the fixed configuration of the single facade window.
// It is set once before the facade opens and never changes afterwards.
type Window struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Background RGB    `toml:"background"`
}

func Default() Window {
	return Window{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Title:      DefaultTitle,
		Background: DefaultBackground,
	}
}

func (w Window) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidWindow, w.Width, w.Height)
	}
	for i, c := range w.Background {
		if c < 0 || c > 255 {
			return fmt.Errorf("%w: background channel %d out of range (got %d)", ErrInvalidWindow, i, c)
		}
	}
	return nil
}

// LoadFile overlays the TOML file at path onto base. Keys missing from the
// file keep the value from base; unknown keys are an error.
func LoadFile(path string, base Window) (Window, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	out := base
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return out, nil
}

// FromEnv overlays the QUICKFRAME_* environment variables onto base.
func FromEnv(base Window) (Window, error) {
	out := base
	if raw := os.Getenv(EnvWidth); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return base, fmt.Errorf("%s must be an integer (got %q): %w", EnvWidth, raw, err)
		}
		out.Width = v
	}
	if raw := os.Getenv(EnvHeight); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return base, fmt.Errorf("%s must be an integer (got %q): %w", EnvHeight, raw, err)
		}
		out.Height = v
	}
	if raw := os.Getenv(EnvTitle); raw != "" {
		out.Title = raw
	}
	if raw := os.Getenv(EnvBackground); raw != "" {
		bg, err := ParseRGB(raw)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvBackground, err)
		}
		out.Background = bg
	}
	return out, nil
}

// ParseRGB accepts "r,g,b" or "#rrggbb".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return RGB{}, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGB{int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("invalid color %q: want r,g,b", s)
	}
	var out RGB
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

// Load builds the window config from defaults, an optional file and the environment.
func Load(path string) (Window, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return cfg, err
		}
	}
	cfg, err := FromEnv(cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
