package pixelforge

import "github.com/gogpu/pixelforge/math3"

// The vertex array path: caller-bound attribute slices feed the same
// transform, lighting, clipping and rasterization pipeline as the
// immediate-mode assembler. Attributes without a bound array fall back
// to the current latched values.

// vertexArrays holds the bound attribute slices. Positions and normals
// are three floats per vertex, texture coordinates two floats, colors
// one Color value.
type vertexArrays struct {
	positions []float32
	normals   []float32
	texcoords []float32
	colors    []Color
}

// EnableStatePointer binds an attribute array. POSITION, NORMAL and
// TEXCOORD arrays are []float32; the COLOR array is []Color. A value
// of the wrong type latches INVALID_VALUE.
func (c *Context) EnableStatePointer(kind ArrayKind, data any) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	switch kind {
	case PositionArray, NormalArray, TexCoordArray:
		f, ok := data.([]float32)
		if !ok {
			c.setError(InvalidValue)
			return
		}
		switch kind {
		case PositionArray:
			c.arrays.positions = f
		case NormalArray:
			c.arrays.normals = f
		case TexCoordArray:
			c.arrays.texcoords = f
		}
	case ColorArray:
		col, ok := data.([]Color)
		if !ok {
			c.setError(InvalidValue)
			return
		}
		c.arrays.colors = col
	default:
		c.setError(InvalidEnum)
	}
}

// DisableStatePointer unbinds an attribute array; the attribute
// reverts to its latched value.
func (c *Context) DisableStatePointer(kind ArrayKind) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	switch kind {
	case PositionArray:
		c.arrays.positions = nil
	case NormalArray:
		c.arrays.normals = nil
	case TexCoordArray:
		c.arrays.texcoords = nil
	case ColorArray:
		c.arrays.colors = nil
	default:
		c.setError(InvalidEnum)
	}
}

// arrayVertex assembles the vertex at array index i, falling back to
// the latched attributes for unbound arrays.
func (c *Context) arrayVertex(i int) vertex {
	v := vertex{
		pos:    math3.Vec4{W: 1},
		normal: c.curNormal,
		uv:     c.curUV,
		color:  c.curColor,
	}
	if p := c.arrays.positions; p != nil {
		v.pos.X, v.pos.Y, v.pos.Z = p[i*3], p[i*3+1], p[i*3+2]
	}
	if n := c.arrays.normals; n != nil {
		v.normal = math3.Vec3{X: n[i*3], Y: n[i*3+1], Z: n[i*3+2]}
	}
	if t := c.arrays.texcoords; t != nil {
		v.uv = math3.Vec2{X: t[i*2], Y: t[i*2+1]}
	}
	if col := c.arrays.colors; col != nil {
		v.color = col[i]
	}
	return v
}

// arrayBounds checks that every bound array covers vertex indices up
// to max (exclusive).
func (c *Context) arrayBounds(max int) bool {
	if p := c.arrays.positions; p != nil && len(p) < max*3 {
		return false
	}
	if n := c.arrays.normals; n != nil && len(n) < max*3 {
		return false
	}
	if t := c.arrays.texcoords; t != nil && len(t) < max*2 {
		return false
	}
	if col := c.arrays.colors; col != nil && len(col) < max {
		return false
	}
	return true
}

// DrawVertexArray issues count vertices starting at index first from
// the bound arrays, assembled as the given primitive mode.
func (c *Context) DrawVertexArray(mode PrimitiveMode, first, count int) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if !mode.valid() {
		c.setError(InvalidEnum)
		return
	}
	if first < 0 || count < 0 || !c.arrayBounds(first+count) {
		c.setError(InvalidValue)
		return
	}
	c.Begin(mode)
	for i := first; i < first+count; i++ {
		c.appendVertex(c.arrayVertex(i))
	}
	c.End()
}

// DrawVertexArrayElements issues count vertices selected by
// indices[first:first+count], assembled as the given primitive mode.
func (c *Context) DrawVertexArrayElements(mode PrimitiveMode, first, count int, indices []int) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if !mode.valid() {
		c.setError(InvalidEnum)
		return
	}
	if first < 0 || count < 0 || first+count > len(indices) {
		c.setError(InvalidValue)
		return
	}
	maxIndex := 0
	for _, idx := range indices[first : first+count] {
		if idx < 0 {
			c.setError(InvalidValue)
			return
		}
		if idx >= maxIndex {
			maxIndex = idx + 1
		}
	}
	if !c.arrayBounds(maxIndex) {
		c.setError(InvalidValue)
		return
	}
	c.Begin(mode)
	for _, idx := range indices[first : first+count] {
		c.appendVertex(c.arrayVertex(idx))
	}
	c.End()
}
