package scene

import (
	"image"
	"image/color"
	"image/draw"
)

// Rasterize draws f in software. It produces the same picture the GL
// renderer does and is used for tests and screenshots.
func Rasterize(f Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(f.Background, 255)), image.Point{}, draw.Src)
	for _, r := range f.Rects {
		box := image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H)).Intersect(img.Bounds())
		draw.Draw(img, box, image.NewUniform(rgba(r.Color, 255)), image.Point{}, draw.Src)
	}
	return img
}

func rgba(c RGB, a uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}
