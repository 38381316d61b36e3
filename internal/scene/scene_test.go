package scene

import (
	"testing"

	"snakegl/internal/engine"
)

func sampleState() engine.State {
	return engine.State{
		Snake:     []engine.Point{{X: 11, Y: 10}, {X: 10, Y: 10}},
		Food:      engine.Point{X: 3, Y: 4},
		Direction: engine.Right,
		Heading:   engine.Right,
		Score:     1,
	}
}

func TestBuildLayout(t *testing.T) {
	pal := DefaultPalette()
	f := Build(sampleState(), pal)

	if f.Width != 400 || f.Height != 400 {
		t.Errorf("Expected 400x400 surface, got %dx%d", f.Width, f.Height)
	}
	if len(f.Rects) != 3 {
		t.Fatalf("Expected 3 rects, got %d", len(f.Rects))
	}

	head := f.Rects[0]
	if head.X != 220 || head.Y != 200 || head.W != 19 || head.H != 19 {
		t.Errorf("Unexpected head rect %+v", head)
	}
	if head.Color != pal.Head {
		t.Errorf("Expected head colour %v, got %v", pal.Head, head.Color)
	}
	if f.Rects[1].Color != pal.Body {
		t.Errorf("Expected body colour %v, got %v", pal.Body, f.Rects[1].Color)
	}
	if food := f.Rects[2]; food.X != 60 || food.Y != 80 || food.Color != pal.Food {
		t.Errorf("Unexpected food rect %+v", food)
	}
}

func TestVertices(t *testing.T) {
	f := Build(sampleState(), DefaultPalette())

	buf := f.Vertices(make([]float32, 3))

	if f.VertexCount() != 18 {
		t.Errorf("Expected 18 vertices, got %d", f.VertexCount())
	}
	if len(buf) != f.VertexCount()*FloatsPerVertex {
		t.Fatalf("Expected %d floats, got %d", f.VertexCount()*FloatsPerVertex, len(buf))
	}

	want := []float32{220, 200, 0, 1, 0, 1}
	for i, v := range want {
		if buf[i] != v {
			t.Errorf("Float %d: expected %v, got %v", i, v, buf[i])
		}
	}
	// Last vertex of the head quad is its bottom-right corner.
	last := buf[5*FloatsPerVertex : 6*FloatsPerVertex]
	if last[0] != 239 || last[1] != 219 {
		t.Errorf("Expected bottom-right {239 219}, got {%v %v}", last[0], last[1])
	}
}

func TestRasterize(t *testing.T) {
	pal := DefaultPalette()
	img := Rasterize(Build(sampleState(), pal))

	check := func(x, y int, want RGB) {
		t.Helper()
		c := img.RGBAAt(x, y)
		if c.R != want.R || c.G != want.G || c.B != want.B || c.A != 255 {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, want, c)
		}
	}

	check(220, 200, pal.Head)
	check(238, 218, pal.Head)
	check(239, 200, pal.Background) // grid gap
	check(200, 200, pal.Body)
	check(65, 85, pal.Food)
	check(0, 0, pal.Background)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#33cc33")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c != (RGB{R: 51, G: 204, B: 51}) {
		t.Errorf("Expected {51 204 51}, got %v", c)
	}
	if c.Hex() != "#33cc33" {
		t.Errorf("Expected round trip #33cc33, got %s", c.Hex())
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
