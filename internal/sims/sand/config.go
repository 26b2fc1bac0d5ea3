package sand

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"falling-sand/internal/core"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid sand config")

// BrushConfig sets the initial brush.
type BrushConfig struct {
	Radius   int    `yaml:"radius"`
	Material string `yaml:"material"`
}

// Config controls the sand world dimensions, tie-break source and palette.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`
	Ticks  string `yaml:"ticks"`

	Brush BrushConfig `yaml:"brush"`

	// Palette maps material names to "#rrggbb" or "#rrggbbaa" overrides.
	Palette map[string]string `yaml:"palette,omitempty"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 240,
		Seed:   42,
		Ticks:  core.TicksClock,
		Brush:  BrushConfig{Radius: MinBrushRadius, Material: Sand.String()},
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Values that do not parse or validate are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["ticks"]; ok {
		if v == core.TicksClock || v == core.TicksSeeded {
			c.Ticks = v
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinBrushRadius {
			c.Brush.Radius = parsed
		}
	}
	if v, ok := cfg["material"]; ok {
		if m, ok := ParseMaterial(v); ok {
			c.Brush.Material = m.String()
		}
	}
	return c
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	switch c.Ticks {
	case "", core.TicksClock, core.TicksSeeded:
	default:
		return fmt.Errorf("%w: unknown tick source %q", ErrInvalidConfig, c.Ticks)
	}
	if c.Brush.Radius < MinBrushRadius {
		return fmt.Errorf("%w: brush radius %d below %d", ErrInvalidConfig, c.Brush.Radius, MinBrushRadius)
	}
	if c.Brush.Material != "" {
		if _, ok := ParseMaterial(c.Brush.Material); !ok {
			return fmt.Errorf("%w: unknown brush material %q", ErrInvalidConfig, c.Brush.Material)
		}
	}
	if _, err := c.registryOptions(); err != nil {
		return err
	}
	return nil
}

func (c Config) registryOptions() ([]RegistryOption, error) {
	opts := make([]RegistryOption, 0, len(c.Palette))
	for name, hex := range c.Palette {
		m, ok := ParseMaterial(name)
		if !ok {
			return nil, fmt.Errorf("%w: palette entry for unknown material %q", ErrInvalidConfig, name)
		}
		col, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: palette %s: %v", ErrInvalidConfig, name, err)
		}
		opts = append(opts, WithColor(m, col))
	}
	return opts, nil
}

// ParseColor decodes "#rrggbb" or "#rrggbbaa". Alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
