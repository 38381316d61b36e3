package scene

import (
	"strings"
	"testing"

	"snakegl/internal/engine"
)

func TestOverlayLines(t *testing.T) {
	s := sampleState()
	if lines := OverlayLines(s); lines != nil {
		t.Errorf("Expected no overlay while playing, got %v", lines)
	}

	s.GameOver = true
	s.Score = 7
	lines := OverlayLines(s)
	if len(lines) != 3 || lines[0] != "Game Over" || lines[1] != "Score: 7" {
		t.Errorf("Unexpected overlay %v", lines)
	}
	if !strings.Contains(lines[2], "'R'") {
		t.Errorf("Expected restart hint, got %q", lines[2])
	}

	s.Won = true
	if lines := OverlayLines(s); lines[0] != "Board Cleared" {
		t.Errorf("Expected win title, got %q", lines[0])
	}
}

func TestOverlayImage(t *testing.T) {
	pal := DefaultPalette()
	img := Overlay([]string{"Game Over", "Score: 3"}, pal, engine.SurfaceSize, engine.SurfaceSize)

	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 400 {
		t.Fatalf("Expected 400x400 overlay, got %v", b)
	}
	if c := img.RGBAAt(0, 0); c.A != pal.DimAlpha || c.R != 0 {
		t.Errorf("Expected dim backdrop at corner, got %v", c)
	}

	text := 0
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			if c := img.RGBAAt(x, y); c.A == 255 && c.R == pal.Text.R {
				text++
			}
		}
	}
	if text == 0 {
		t.Error("Expected some text pixels")
	}
}

func TestOverlayEmpty(t *testing.T) {
	img := Overlay(nil, DefaultPalette(), 40, 40)
	if c := img.RGBAAt(20, 20); c.A != DefaultPalette().DimAlpha {
		t.Errorf("Expected plain backdrop, got %v", c)
	}
}
