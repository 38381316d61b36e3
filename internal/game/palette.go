package game

import (
	"fmt"

	"snakegl/internal/config"
	"snakegl/internal/scene"
)

// PaletteFromConfig applies configured colours over the default palette.
// Empty entries keep the default.
func PaletteFromConfig(pc config.PaletteConfig) (scene.Palette, error) {
	pal := scene.DefaultPalette()
	fields := []struct {
		name string
		val  string
		dst  *scene.RGB
	}{
		{"head", pc.Head, &pal.Head},
		{"body", pc.Body, &pal.Body},
		{"food", pc.Food, &pal.Food},
		{"text", pc.Text, &pal.Text},
	}
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		c, err := scene.ParseHex(f.val)
		if err != nil {
			return pal, fmt.Errorf("palette.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return pal, nil
}
