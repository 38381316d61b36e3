package config

import (
	_ "embed"
)

//go:embed defaults/snakegl.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors defaults/snakegl.yaml.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.58,
		},
		Window: WindowConfig{
			Title: "Snake (OpenGL)",
			VSync: true,
		},
		Palette: PaletteConfig{
			Head: "#00ff00",
			Body: "#33cc33",
			Food: "#ff0000",
			Text: "#ff0000",
		},
	}
}
