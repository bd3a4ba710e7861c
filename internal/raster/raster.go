// Package raster implements primitive rasterization for the pixelforge
// pipeline: clip-space polygon and line clipping, perspective divide,
// viewport transform, and perspective-correct scanline fill with depth
// testing and texture modulation.
package raster

import (
	math "github.com/chewxy/math32"

	"github.com/gogpu/pixelforge/math3"
)

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A uint8
}

// Surface is an interface for writing pixels (avoids import cycle).
type Surface interface {
	Size() (width, height int)
	Set(x, y int, c RGBA)
}

// Sampler fetches a filtered, wrapped texel for a texture coordinate.
type Sampler interface {
	Sample(u, v float32) RGBA
}

// CullMode selects which triangle facing is discarded.
type CullMode int

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

// State is the per-primitive rasterization state. The pipeline computes
// it once per primitive; the inner loops only read it.
type State struct {
	Viewport [4]int // x, y, w, h in window coordinates

	Width  int // bound color buffer width
	Height int // bound color buffer height

	DepthTest bool
	Depth     []float32 // len Width*Height when DepthTest is set

	Cull     CullMode
	FrontCCW bool

	Tex Sampler // nil when texturing is disabled
}

// Vertex is a clip-space vertex with its interpolable attributes.
// Color channels are carried as float32 on the 0-255 scale so the
// clipper and scanline loops interpolate them directly.
type Vertex struct {
	Pos   math3.Vec4
	Color [4]float32
	U, V  float32
}

// screenVert is a vertex after perspective divide and viewport
// transform. All attributes are pre-divided by w; iw is 1/w. Linear
// interpolation of these in screen space plus a per-pixel divide by the
// interpolated iw yields perspective-correct attribute values.
type screenVert struct {
	x, y float32
	zw   float32 // z_win / w
	iw   float32 // 1 / w
	c    [4]float32
	u, v float32
}

const minW = 1e-6

func project(v *Vertex, vp [4]int) screenVert {
	w := v.Pos.W
	if w < minW {
		w = minW
	}
	iw := 1 / w
	ndcX := v.Pos.X * iw
	ndcY := v.Pos.Y * iw
	ndcZ := v.Pos.Z * iw
	// NDC y points up; buffer rows grow downward. The viewport
	// transform flips so that +1 maps to the viewport's top row.
	return screenVert{
		x:  float32(vp[0]) + (ndcX+1)*0.5*float32(vp[2]),
		y:  float32(vp[1]) + (1-ndcY)*0.5*float32(vp[3]),
		zw: (ndcZ + 1) * 0.5 * iw,
		iw: iw,
		c: [4]float32{
			v.Color[0] * iw,
			v.Color[1] * iw,
			v.Color[2] * iw,
			v.Color[3] * iw,
		},
		u: v.U * iw,
		v: v.V * iw,
	}
}

// lerpScreen interpolates every field of a screen vertex.
func lerpScreen(a, b *screenVert, t float32) screenVert {
	return screenVert{
		x:  a.x + (b.x-a.x)*t,
		y:  a.y + (b.y-a.y)*t,
		zw: a.zw + (b.zw-a.zw)*t,
		iw: a.iw + (b.iw-a.iw)*t,
		c: [4]float32{
			a.c[0] + (b.c[0]-a.c[0])*t,
			a.c[1] + (b.c[1]-a.c[1])*t,
			a.c[2] + (b.c[2]-a.c[2])*t,
			a.c[3] + (b.c[3]-a.c[3])*t,
		},
		u: a.u + (b.u-a.u)*t,
		v: a.v + (b.v-a.v)*t,
	}
}

// DrawPolygon clips, culls and scanline-fills a convex polygon given in
// clip space. Non-convex input is not supported; the immediate-mode
// assembler only produces triangles and quads.
func DrawPolygon(dst Surface, st *State, poly []Vertex) {
	var scratch [MaxClipVerts]Vertex
	clipped := ClipPolygon(poly, scratch[:0])
	if len(clipped) < 3 {
		return
	}

	var pts [MaxClipVerts]screenVert
	for i := range clipped {
		pts[i] = project(&clipped[i], st.Viewport)
	}
	n := len(clipped)

	// Signed area of the projected polygon decides facing. The fan
	// below shares the polygon's winding, so one test covers all
	// triangles. Window y grows downward, so a counter-clockwise
	// polygon has negative shoelace area.
	if st.Cull != CullNone {
		area := float32(0)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			area += pts[i].x*pts[j].y - pts[j].x*pts[i].y
		}
		front := (area < 0) == st.FrontCCW
		switch st.Cull {
		case CullFrontAndBack:
			return
		case CullFront:
			if front {
				return
			}
		case CullBack:
			if !front {
				return
			}
		}
	}

	for i := 1; i+1 < n; i++ {
		fillTriangle(dst, st, &pts[0], &pts[i], &pts[i+1])
	}
}

// fillTriangle scanline-fills one screen-space triangle. Pixels are
// sampled at their centers with half-open spans, so triangles sharing
// an edge never overlap or leave gaps.
func fillTriangle(dst Surface, st *State, v0, v1, v2 *screenVert) {
	a, b, c := v0, v1, v2
	if b.y < a.y {
		a, b = b, a
	}
	if c.y < a.y {
		a, c = c, a
	}
	if c.y < b.y {
		b, c = c, b
	}
	if c.y == a.y {
		return
	}

	yMin, yMax := scanRangeY(st, a.y, c.y)
	for y := yMin; y < yMax; y++ {
		yc := float32(y) + 0.5

		// Long edge a-c always spans the scanline; the short side is
		// a-b above the middle vertex, b-c below.
		long := edgeAt(a, c, yc)
		var short screenVert
		if yc < b.y {
			if b.y == a.y {
				continue
			}
			short = edgeAt(a, b, yc)
		} else {
			if c.y == b.y {
				continue
			}
			short = edgeAt(b, c, yc)
		}

		left, right := &long, &short
		if right.x < left.x {
			left, right = right, left
		}
		if right.x == left.x {
			continue
		}

		xMin, xMax := scanRangeX(st, left.x, right.x)
		invSpan := 1 / (right.x - left.x)
		for x := xMin; x < xMax; x++ {
			t := (float32(x) + 0.5 - left.x) * invSpan
			px := lerpScreen(left, right, t)
			shade(dst, st, x, y, &px)
		}
	}
}

// edgeAt interpolates an edge's attributes at scanline center yc.
func edgeAt(a, b *screenVert, yc float32) screenVert {
	t := (yc - a.y) / (b.y - a.y)
	return lerpScreen(a, b, t)
}

// scanRangeY clamps a vertical pixel-center range to viewport and buffer.
func scanRangeY(st *State, y0, y1 float32) (int, int) {
	lo := int(math.Ceil(y0 - 0.5))
	hi := int(math.Ceil(y1 - 0.5))
	if min := st.Viewport[1]; lo < min {
		lo = min
	}
	if lo < 0 {
		lo = 0
	}
	if max := st.Viewport[1] + st.Viewport[3]; hi > max {
		hi = max
	}
	if hi > st.Height {
		hi = st.Height
	}
	return lo, hi
}

// scanRangeX clamps a horizontal pixel-center range to viewport and buffer.
func scanRangeX(st *State, x0, x1 float32) (int, int) {
	lo := int(math.Ceil(x0 - 0.5))
	hi := int(math.Ceil(x1 - 0.5))
	if min := st.Viewport[0]; lo < min {
		lo = min
	}
	if lo < 0 {
		lo = 0
	}
	if max := st.Viewport[0] + st.Viewport[2]; hi > max {
		hi = max
	}
	if hi > st.Width {
		hi = st.Width
	}
	return lo, hi
}

// shade resolves one pixel: perspective reconstruction, depth test,
// texture modulation, and the final write. Depth is written only after
// the depth test passes.
func shade(dst Surface, st *State, x, y int, px *screenVert) {
	if px.iw <= 0 {
		return
	}
	w := 1 / px.iw

	var z float32
	var di int
	if st.DepthTest {
		z = math3.Clamp(px.zw*w, 0, 1)
		di = y*st.Width + x
		if z >= st.Depth[di] {
			return
		}
	}

	c := RGBA{
		R: channel(px.c[0] * w),
		G: channel(px.c[1] * w),
		B: channel(px.c[2] * w),
		A: channel(px.c[3] * w),
	}
	if st.Tex != nil {
		c = Modulate(c, st.Tex.Sample(px.u*w, px.v*w))
	}
	dst.Set(x, y, c)
	if st.DepthTest {
		st.Depth[di] = z
	}
}

// Modulate multiplies two colors component-wise in 8-bit space,
// rounding toward zero.
func Modulate(a, b RGBA) RGBA {
	return RGBA{
		R: uint8(uint32(a.R) * uint32(b.R) / 255),
		G: uint8(uint32(a.G) * uint32(b.G) / 255),
		B: uint8(uint32(a.B) * uint32(b.B) / 255),
		A: uint8(uint32(a.A) * uint32(b.A) / 255),
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// DrawLine clips and rasterizes one clip-space line segment using an
// integer Bresenham walk with linear attribute stepping along the
// major axis.
func DrawLine(dst Surface, st *State, a, b Vertex) {
	ca, cb, ok := ClipLine(a, b)
	if !ok {
		return
	}
	p0 := project(&ca, st.Viewport)
	p1 := project(&cb, st.Viewport)

	x0 := int(math.Floor(p0.x))
	y0 := int(math.Floor(p0.y))
	x1 := int(math.Floor(p1.x))
	y1 := int(math.Floor(p1.y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	steps := dx
	if -dy > steps {
		steps = -dy
	}

	e := dx + dy
	x, y := x0, y0
	for i := 0; ; i++ {
		var t float32
		if steps > 0 {
			t = float32(i) / float32(steps)
		}
		px := lerpScreen(&p0, &p1, t)
		if inScissor(st, x, y) {
			shade(dst, st, x, y, &px)
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// DrawPoint rasterizes a single clip-space point as one pixel.
func DrawPoint(dst Surface, st *State, v Vertex) {
	if !PointInside(v.Pos) {
		return
	}
	p := project(&v, st.Viewport)
	x := int(math.Floor(p.x))
	y := int(math.Floor(p.y))
	if !inScissor(st, x, y) {
		return
	}
	shade(dst, st, x, y, &p)
}

// inScissor reports whether (x, y) lies inside both the viewport and
// the bound buffer.
func inScissor(st *State, x, y int) bool {
	if x < st.Viewport[0] || x >= st.Viewport[0]+st.Viewport[2] ||
		y < st.Viewport[1] || y >= st.Viewport[1]+st.Viewport[3] {
		return false
	}
	return x >= 0 && x < st.Width && y >= 0 && y < st.Height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
