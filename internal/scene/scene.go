// Package scene turns an engine snapshot into drawable geometry. It has no
// graphics-API dependency so frames can be built and checked headless.
package scene

import "snakegl/internal/engine"

// FloatsPerVertex is the interleaved layout: x, y, r, g, b, a.
const FloatsPerVertex = 6

// VerticesPerRect is two triangles.
const VerticesPerRect = 6

// Rect is a filled square in surface pixels (origin top-left).
type Rect struct {
	X, Y, W, H float32
	Color      RGB
}

// Frame is everything drawn for one state snapshot, back to front.
type Frame struct {
	Width, Height int
	Background    RGB
	Rects         []Rect
}

// Build lays out one rect per snake segment plus one for the food. Each
// rect is one pixel smaller than the cell, leaving a visible grid gap.
func Build(s engine.State, pal Palette) Frame {
	f := Frame{
		Width:      engine.SurfaceSize,
		Height:     engine.SurfaceSize,
		Background: pal.Background,
		Rects:      make([]Rect, 0, len(s.Snake)+1),
	}
	for i, seg := range s.Snake {
		col := pal.Body
		if i == 0 {
			col = pal.Head
		}
		f.Rects = append(f.Rects, cellRect(seg, col))
	}
	f.Rects = append(f.Rects, cellRect(s.Food, pal.Food))
	return f
}

func cellRect(p engine.Point, col RGB) Rect {
	const size = engine.CellSize - 1
	return Rect{
		X:     float32(p.X * engine.CellSize),
		Y:     float32(p.Y * engine.CellSize),
		W:     size,
		H:     size,
		Color: col,
	}
}

// Vertices appends the frame's triangles to buf (reset to length 0) and
// returns it, so callers can reuse one buffer across frames.
func (f Frame) Vertices(buf []float32) []float32 {
	buf = buf[:0]
	for _, r := range f.Rects {
		x1, y1 := r.X, r.Y
		x2, y2 := r.X+r.W, r.Y+r.H
		cr, cg, cb := r.Color.Floats()
		buf = append(buf,
			x1, y1, cr, cg, cb, 1,
			x2, y1, cr, cg, cb, 1,
			x1, y2, cr, cg, cb, 1,
			x1, y2, cr, cg, cb, 1,
			x2, y1, cr, cg, cb, 1,
			x2, y2, cr, cg, cb, 1,
		)
	}
	return buf
}

// VertexCount returns the number of vertices Vertices produces.
func (f Frame) VertexCount() int { return len(f.Rects) * VerticesPerRect }
