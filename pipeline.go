package pixelforge

import (
	"github.com/gogpu/pixelforge/internal/raster"
	"github.com/gogpu/pixelforge/math3"
)

// The vertex pipeline: each issued vertex is transformed by the
// modelview matrix into eye space (where lighting runs), then by the
// projection matrix into clip space. The perspective divide is
// deferred to the rasterizer, after clipping.

// fbSurface adapts the framebuffer to the rasterizer's pixel sink.
type fbSurface struct {
	fb *Framebuffer
}

func (s fbSurface) Size() (int, int) {
	return s.fb.width, s.fb.height
}

func (s fbSurface) Set(x, y int, c raster.RGBA) {
	s.fb.set(y*s.fb.width+x, Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

// rasterState snapshots the per-primitive decision vector the
// rasterizer inner loops dispatch on.
func (c *Context) rasterState() raster.State {
	st := raster.State{
		Viewport: c.viewport,
		Width:    c.fb.width,
		Height:   c.fb.height,
		FrontCCW: c.frontFace == CCW,
	}
	if c.isEnabled(DepthTest) && c.fb.depth != nil {
		st.DepthTest = true
		st.Depth = c.fb.depth
	}
	if c.isEnabled(CullFace) {
		switch c.cullFace {
		case Front:
			st.Cull = raster.CullFront
		case Back:
			st.Cull = raster.CullBack
		case FrontAndBack:
			st.Cull = raster.CullFrontAndBack
		}
	}
	if c.isEnabled(Texture2D) && c.texture != nil {
		st.Tex = textureSampler{tex: c.texture}
	}
	return st
}

// transformVertex runs one vertex through transform and lighting,
// producing a clip-space raster vertex. lit overrides the computed
// color when non-nil (flat shading).
func (c *Context) transformVertex(v *vertex, lit *Color) raster.Vertex {
	var col Color
	var clip math3.Vec4
	switch {
	case lit != nil:
		col = *lit
		clip = c.mvp.MulVec4(v.pos)
	case c.isEnabled(Lighting):
		eye := c.modelView.current().MulVec4(v.pos)
		col = c.lightVertex(eyePosition(eye), c.eyeNormal(v.normal), v.color)
		clip = c.projection.current().MulVec4(eye)
	default:
		col = v.color
		clip = c.mvp.MulVec4(v.pos)
	}
	return raster.Vertex{
		Pos: clip,
		Color: [4]float32{
			float32(col.R),
			float32(col.G),
			float32(col.B),
			float32(col.A),
		},
		U: v.uv.X,
		V: v.uv.Y,
	}
}

// eyePosition resolves a transformed position to 3D eye space.
func eyePosition(eye math3.Vec4) math3.Vec3 {
	p := math3.Vec3FromVec4(eye)
	if eye.W != 0 && eye.W != 1 {
		p = math3.Scale(1/eye.W, p)
	}
	return p
}

// eyeNormal transforms a surface normal to eye space by the
// inverse-transpose of the modelview matrix and renormalizes.
func (c *Context) eyeNormal(n math3.Vec3) math3.Vec3 {
	return math3.Unit(c.normalMatrix.MulDirection(n))
}

// flatColor computes the lit color of the provoking vertex when the
// shade model is FLAT, so it can be copied to the whole primitive.
func (c *Context) flatColor(provoking *vertex) *Color {
	if c.shadeModel != Flat {
		return nil
	}
	col := provoking.color
	if c.isEnabled(Lighting) {
		eye := c.modelView.current().MulVec4(provoking.pos)
		col = c.lightVertex(eyePosition(eye), c.eyeNormal(provoking.normal), provoking.color)
	}
	return &col
}

// processPolygon transforms, lights, clips and rasterizes one convex
// polygon. provoking is the index of the primitive's last issued
// vertex, whose color covers the whole primitive under FLAT shading.
func (c *Context) processPolygon(verts []vertex, provoking int) {
	var clipVerts [4]raster.Vertex
	if len(verts) > len(clipVerts) {
		c.setError(OutOfMemory)
		return
	}
	c.updateMatrices()
	lit := c.flatColor(&verts[provoking])

	for i := range verts {
		clipVerts[i] = c.transformVertex(&verts[i], lit)
	}
	surface := fbSurface{fb: c.fb}
	st := c.rasterState()
	raster.DrawPolygon(surface, &st, clipVerts[:len(verts)])
}

// processLine transforms and rasterizes one line segment; b is the
// provoking vertex.
func (c *Context) processLine(a, b vertex) {
	c.updateMatrices()
	lit := c.flatColor(&b)
	ra := c.transformVertex(&a, lit)
	rb := c.transformVertex(&b, lit)
	st := c.rasterState()
	raster.DrawLine(fbSurface{fb: c.fb}, &st, ra, rb)
}

// processPoint transforms and rasterizes one point.
func (c *Context) processPoint(v vertex) {
	c.updateMatrices()
	rv := c.transformVertex(&v, nil)
	st := c.rasterState()
	raster.DrawPoint(fbSurface{fb: c.fb}, &st, rv)
}
