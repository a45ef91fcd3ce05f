package game

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// maxPolyVerts bounds one polygon batch upload; the batch flushes itself
// mid-frame when a layer exceeds it.
const maxPolyVerts = 1 << 16

// Renderer batches everything the game draws into three GL paths: flat
// and gradient polygons (road, sprites, HUD), rotated square points
// (particles), and additive radial points (glows). All coordinates are
// screen pixels; uOrigin carries the camera shake per layer.
type Renderer struct {
	polyProg    uint32
	polyVAO     uint32
	polyVBO     uint32
	polyURes    int32
	polyUOrigin int32
	polyBuf     []float32

	pointProg    uint32
	pointURes    int32
	pointUOrigin int32

	glowProg    uint32
	glowURes    int32
	glowUOrigin int32

	pointVAO uint32
	pointVBO uint32

	// Canvas glow calls accumulate here and flush as one additive pass.
	glowBuf []float32

	fbW, fbH         int
	originX, originY float32
}

// The renderer is the one real Canvas in the game.
var _ Canvas = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	polyProg, err := linkProgram(polyVertSrc, polyFragSrc)
	if err != nil {
		return nil, fmt.Errorf("poly program: %w", err)
	}
	pointProg, err := linkProgram(pointVertSrc, pointFragSrc)
	if err != nil {
		gl.DeleteProgram(polyProg)
		return nil, fmt.Errorf("point program: %w", err)
	}
	glowProg, err := linkProgram(glowVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(polyProg)
		gl.DeleteProgram(pointProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		polyProg:  polyProg,
		pointProg: pointProg,
		glowProg:  glowProg,
		polyBuf:   make([]float32, 0, maxPolyVerts*6),
		glowBuf:   make([]float32, 0, 256*8),
	}

	// Poly VAO/VBO: streaming triangles, pos(2) + color(4).
	var pVAO, pVBO uint32
	gl.GenVertexArrays(1, &pVAO)
	gl.GenBuffers(1, &pVBO)
	gl.BindVertexArray(pVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, pVBO)

	polyStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxPolyVerts*int(polyStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, polyStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, polyStride, glOffset(2*4))
	r.polyVAO = pVAO
	r.polyVBO = pVBO

	gl.UseProgram(polyProg)
	r.polyURes = gl.GetUniformLocation(polyProg, gl.Str("uResolution\x00"))
	r.polyUOrigin = gl.GetUniformLocation(polyProg, gl.Str("uOrigin\x00"))

	// Point VAO/VBO: streaming buffer shared by the particle and glow
	// passes. Each point: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	pointStride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticles*int(pointStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aScreenPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, pointStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aSize
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, pointStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, pointStride, glOffset(3*4))
	gl.EnableVertexAttribArray(3) // aRotation
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, pointStride, glOffset(7*4))
	r.pointVAO = sVAO
	r.pointVBO = sVBO

	gl.UseProgram(pointProg)
	r.pointURes = gl.GetUniformLocation(pointProg, gl.Str("uResolution\x00"))
	r.pointUOrigin = gl.GetUniformLocation(pointProg, gl.Str("uOrigin\x00"))

	gl.UseProgram(glowProg)
	r.glowURes = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))
	r.glowUOrigin = gl.GetUniformLocation(glowProg, gl.Str("uOrigin\x00"))

	gl.BindVertexArray(0)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.polyVBO, r.pointVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.polyVAO, r.pointVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.polyProg, r.pointProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	r.fbW = fbW
	r.fbH = fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.originX = 0
	r.originY = 0
	r.polyBuf = r.polyBuf[:0]
	r.glowBuf = r.glowBuf[:0]
}

// SetOrigin flushes pending geometry and moves the pixel origin for the
// following draws. The road layer runs with the shake offset, sky and
// HUD with zero.
func (r *Renderer) SetOrigin(x, y float64) {
	r.FlushPolys()
	r.FlushGlow()
	r.originX = float32(x)
	r.originY = float32(y)
}

// FlushPolys uploads and draws the buffered triangles.
func (r *Renderer) FlushPolys() {
	n := len(r.polyBuf) / 6
	if n == 0 {
		return
	}
	gl.UseProgram(r.polyProg)
	gl.BindVertexArray(r.polyVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.polyVBO)
	gl.Uniform2f(r.polyURes, float32(r.fbW), float32(r.fbH))
	gl.Uniform2f(r.polyUOrigin, r.originX, r.originY)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.polyBuf)*4, gl.Ptr(r.polyBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	gl.Disable(gl.BLEND)

	r.polyBuf = r.polyBuf[:0]
}

// FlushGlow draws the Canvas glow calls additively.
func (r *Renderer) FlushGlow() {
	r.drawPoints(r.glowBuf, r.glowProg, r.glowURes, r.glowUOrigin, true)
	r.glowBuf = r.glowBuf[:0]
}

// DrawParticles draws a particle render buffer with alpha blending.
func (r *Renderer) DrawParticles(buf []float32) {
	r.drawPoints(buf, r.pointProg, r.pointURes, r.pointUOrigin, false)
}

// DrawParticleGlow draws the additive particle buffer.
func (r *Renderer) DrawParticleGlow(buf []float32) {
	r.drawPoints(buf, r.glowProg, r.glowURes, r.glowUOrigin, true)
}

func (r *Renderer) drawPoints(buf []float32, prog uint32, uRes, uOrigin int32, additive bool) {
	n := len(buf) / 8
	if n == 0 {
		return
	}
	if n > MaxParticles {
		n = MaxParticles
		buf = buf[:n*8]
	}
	gl.UseProgram(prog)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.Uniform2f(uRes, float32(r.fbW), float32(r.fbH))
	gl.Uniform2f(uOrigin, r.originX, r.originY)

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(n))
	gl.Disable(gl.BLEND)
}

// ensurePoly flushes early when the next primitive would overflow the
// batch, so callers never have to think about batch limits.
func (r *Renderer) ensurePoly(verts int) {
	if len(r.polyBuf)+verts*6 > maxPolyVerts*6 {
		r.FlushPolys()
	}
}

func (r *Renderer) pushVert(x, y float64, cr, cg, cb, ca float32) {
	r.polyBuf = append(r.polyBuf, float32(x), float32(y), cr, cg, cb, ca)
}

func colorF(col RGB, alpha float64) (float32, float32, float32, float32) {
	a := clampF(alpha, 0, 1)
	return float32(col.R) / 255, float32(col.G) / 255, float32(col.B) / 255, float32(a)
}

// Quad fills a convex quad given clockwise from the top-left corner.
func (r *Renderer) Quad(x1, y1, x2, y2, x3, y3, x4, y4 float64, col RGB, alpha float64) {
	cr, cg, cb, ca := colorF(col, alpha)
	r.ensurePoly(6)
	r.pushVert(x1, y1, cr, cg, cb, ca)
	r.pushVert(x2, y2, cr, cg, cb, ca)
	r.pushVert(x3, y3, cr, cg, cb, ca)
	r.pushVert(x1, y1, cr, cg, cb, ca)
	r.pushVert(x3, y3, cr, cg, cb, ca)
	r.pushVert(x4, y4, cr, cg, cb, ca)
}

// QuadGrad fills a quad with the first two corners in top and the last
// two in bottom color.
func (r *Renderer) QuadGrad(x1, y1, x2, y2, x3, y3, x4, y4 float64, top, bottom RGB, alpha float64) {
	tr, tg, tb, ta := colorF(top, alpha)
	br, bg, bb, ba := colorF(bottom, alpha)
	r.ensurePoly(6)
	r.pushVert(x1, y1, tr, tg, tb, ta)
	r.pushVert(x2, y2, tr, tg, tb, ta)
	r.pushVert(x3, y3, br, bg, bb, ba)
	r.pushVert(x1, y1, tr, tg, tb, ta)
	r.pushVert(x3, y3, br, bg, bb, ba)
	r.pushVert(x4, y4, br, bg, bb, ba)
}

func (r *Renderer) Rect(x, y, w, h float64, col RGB, alpha float64) {
	r.Quad(x, y, x+w, y, x+w, y+h, x, y+h, col, alpha)
}

func (r *Renderer) RectGrad(x, y, w, h float64, top, bottom RGB, alpha float64) {
	r.QuadGrad(x, y, x+w, y, x+w, y+h, x, y+h, top, bottom, alpha)
}

// Circle fans the disc; segment count follows the radius.
func (r *Renderer) Circle(cx, cy, radius float64, col RGB, alpha float64) {
	if radius <= 0 {
		return
	}
	n := int(clampF(8+radius*0.7, 10, 48))
	cr, cg, cb, ca := colorF(col, alpha)
	r.ensurePoly(n * 3)
	px := cx + radius
	py := cy
	for i := 1; i <= n; i++ {
		ang := float64(i) / float64(n) * 2 * math.Pi
		nx := cx + math.Cos(ang)*radius
		ny := cy + math.Sin(ang)*radius
		r.pushVert(cx, cy, cr, cg, cb, ca)
		r.pushVert(px, py, cr, cg, cb, ca)
		r.pushVert(nx, ny, cr, cg, cb, ca)
		px, py = nx, ny
	}
}

// Glow queues an additive radial light; size is the glow radius.
func (r *Renderer) Glow(cx, cy, size float64, col RGB, intensity float64) {
	if size <= 0 || intensity <= 0 {
		return
	}
	in := float32(clampF(intensity, 0, 1))
	r.glowBuf = append(r.glowBuf,
		float32(cx), float32(cy), float32(size*2),
		float32(col.R)/255*in, float32(col.G)/255*in, float32(col.B)/255*in, in, 0,
	)
}
