// Package config provides YAML-based settings for the ambient parts of the
// game: logging, audio, window and colours.
package config

import (
	"fmt"
	"strings"

	"snakegl/internal/scene"
)

// Config contains all user-adjustable settings.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Audio   AudioConfig   `yaml:"audio"`
	Window  WindowConfig  `yaml:"window"`
	Palette PaletteConfig `yaml:"palette"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// AudioConfig defines sound effect playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Title string `yaml:"title"`
	VSync bool   `yaml:"vsync"`
}

// PaletteConfig holds colours as #rrggbb strings.
type PaletteConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
	Text string `yaml:"text"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	level := strings.ToLower(c.Log.Level)
	ok := false
	for _, l := range logLevels {
		if level == l {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("log.level %q: want one of %s", c.Log.Level, strings.Join(logLevels, ", "))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v: want 0..1", c.Audio.Volume)
	}
	return c.Palette.validate()
}

// validate checks every non-empty colour. Empty entries keep the default.
func (p PaletteConfig) validate() error {
	for _, f := range []struct{ name, val string }{
		{"head", p.Head},
		{"body", p.Body},
		{"food", p.Food},
		{"text", p.Text},
	} {
		if f.val == "" {
			continue
		}
		if _, err := scene.ParseHex(f.val); err != nil {
			return fmt.Errorf("palette.%s: %w", f.name, err)
		}
	}
	return nil
}
