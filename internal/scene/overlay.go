package scene

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"snakegl/internal/engine"
)

// overlayScale enlarges the 7x13 bitmap face so it reads on a 400px surface.
const overlayScale = 2

// OverlayLines returns the game-over message, or nil while playing.
func OverlayLines(s engine.State) []string {
	if !s.GameOver {
		return nil
	}
	title := "Game Over"
	if s.Won {
		title = "Board Cleared"
	}
	return []string{
		title,
		fmt.Sprintf("Score: %d", s.Score),
		"Press 'R' to Restart",
	}
}

// Overlay renders lines centered on a dimmed, transparent surface of the
// given size. The result is premultiplied RGBA, ready for alpha blending.
func Overlay(lines []string, pal Palette, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	dim := color.RGBA{A: pal.DimAlpha}
	draw.Draw(out, out.Bounds(), image.NewUniform(dim), image.Point{}, draw.Src)
	if len(lines) == 0 {
		return out
	}

	// Text is laid out at 1x then scaled up with nearest neighbour to keep
	// the bitmap glyphs crisp.
	sw, sh := w/overlayScale, h/overlayScale
	small := image.NewRGBA(image.Rect(0, 0, sw, sh))
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(rgba(pal.Text, 255)),
		Face: face,
	}

	lineH := face.Metrics().Height.Ceil() + 4
	top := (sh-lineH*len(lines))/2 + face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		adv := d.MeasureString(line).Ceil()
		d.Dot = fixed.P((sw-adv)/2, top+i*lineH)
		d.DrawString(line)
	}

	xdraw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), draw.Over, nil)
	return out
}
