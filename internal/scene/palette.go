package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalized components for vertex data.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("parse colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Palette holds every colour the game draws with.
type Palette struct {
	Background RGB
	Head       RGB
	Body       RGB
	Food       RGB
	Text       RGB
	DimAlpha   uint8 // game-over backdrop opacity
}

// DefaultPalette matches the classic look: green snake, red food on black.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB{R: 0, G: 0, B: 0},
		Head:       RGB{R: 0, G: 255, B: 0},
		Body:       RGB{R: 51, G: 204, B: 51},
		Food:       RGB{R: 255, G: 0, B: 0},
		Text:       RGB{R: 255, G: 0, B: 0},
		DimAlpha:   178,
	}
}
