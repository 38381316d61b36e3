// Package render draws scene frames with OpenGL 4.1 core. All functions must
// be called on the thread that owns the current GL context.
package render

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"snakegl/internal/scene"
)

// Init loads the GL function pointers for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	return nil
}

// Version returns the driver's GL version string.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// initialRectCapacity sizes the streaming buffer for a modest snake; it
// grows on demand.
const initialRectCapacity = 64

type Renderer struct {
	// Rect program.
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32
	rectCap  int // vertices the VBO can hold
	uRes     int32

	// Game-over overlay program.
	overlayProg uint32
	overlayVAO  uint32
	overlayVBO  uint32
	overlayTex  uint32
	overlayW    int
	overlayH    int
	uTex        int32

	// Reusable vertex buffer to avoid per-frame heap allocations.
	verts []float32
}

// New compiles the programs and allocates buffers. On error every object
// created so far is released.
func New() (*Renderer, error) {
	r := &Renderer{}
	if err := r.init(); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) init() error {
	var err error
	r.rectProg, err = linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return fmt.Errorf("rect program: %w", err)
	}
	r.overlayProg, err = linkProgram(overlayVertSrc, overlayFragSrc)
	if err != nil {
		return fmt.Errorf("overlay program: %w", err)
	}

	// Rect VAO/VBO: streaming buffer, 6 floats per vertex (x, y, r, g, b, a).
	gl.GenVertexArrays(1, &r.rectVAO)
	gl.GenBuffers(1, &r.rectVBO)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)

	stride := int32(scene.FloatsPerVertex * 4)
	r.rectCap = initialRectCapacity * scene.VerticesPerRect
	gl.BufferData(gl.ARRAY_BUFFER, r.rectCap*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))

	gl.UseProgram(r.rectProg)
	r.uRes = gl.GetUniformLocation(r.rectProg, gl.Str("uResolution\x00"))

	// Overlay VAO/VBO: a unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.overlayVAO)
	gl.GenBuffers(1, &r.overlayVBO)
	gl.BindVertexArray(r.overlayVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(r.overlayProg)
	r.uTex = gl.GetUniformLocation(r.overlayProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	gl.GenTextures(1, &r.overlayTex)
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return nil
}

// Destroy releases every GL object. It is safe on a partially built renderer.
func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.overlayVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.overlayVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.overlayProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.overlayTex != 0 {
		gl.DeleteTextures(1, &r.overlayTex)
	}
	*r = Renderer{}
}

// Draw clears the framebuffer and draws every rect of f. The frame is in
// surface pixels; fbW/fbH is the framebuffer size, which differs on HiDPI.
func (r *Renderer) Draw(f scene.Frame, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bgR, bgG, bgB := f.Background.Floats()
	gl.ClearColor(bgR, bgG, bgB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.verts = f.Vertices(r.verts)
	if len(r.verts) == 0 {
		return
	}
	count := f.VertexCount()

	gl.UseProgram(r.rectProg)
	gl.Uniform2f(r.uRes, float32(f.Width), float32(f.Height))
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)

	stride := scene.FloatsPerVertex * 4
	if count > r.rectCap {
		for r.rectCap < count {
			r.rectCap *= 2
		}
		gl.BufferData(gl.ARRAY_BUFFER, r.rectCap*stride, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.verts)*4, gl.Ptr(r.verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.BindVertexArray(0)
}

// SetOverlay uploads img as the overlay texture. Call it only when the
// overlay content changes.
func (r *Renderer) SetOverlay(img *image.RGBA) {
	b := img.Bounds()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	r.overlayW, r.overlayH = b.Dx(), b.Dy()
}

// DrawOverlay blends the last uploaded overlay over the whole surface.
func (r *Renderer) DrawOverlay() {
	if r.overlayW == 0 || r.overlayH == 0 {
		return
	}
	gl.UseProgram(r.overlayProg)
	gl.BindVertexArray(r.overlayVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.overlayTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA) // premultiplied
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
}
