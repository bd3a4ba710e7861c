package pixelforge

import "github.com/gogpu/pixelforge/math3"

// vertex is one immediate-mode vertex record: an object-space position
// plus the attribute latches captured at the time it was issued.
type vertex struct {
	pos    math3.Vec4
	normal math3.Vec3
	uv     math3.Vec2
	color  Color
}

// Color3f latches the current color from [0, 1] components, opaque.
func (c *Context) Color3f(r, g, b float32) {
	c.curColor = ColorFromFloats(r, g, b, 1)
}

// Color4f latches the current color from [0, 1] components.
func (c *Context) Color4f(r, g, b, a float32) {
	c.curColor = ColorFromFloats(r, g, b, a)
}

// Color4ub latches the current color from 8-bit components.
func (c *Context) Color4ub(r, g, b, a uint8) {
	c.curColor = Color{R: r, G: g, B: b, A: a}
}

// Normal3f latches the current normal. The vector is not normalized
// here; the vertex pipeline renormalizes after transforming to eye
// space.
func (c *Context) Normal3f(x, y, z float32) {
	c.curNormal = math3.Vec3{X: x, Y: y, Z: z}
}

// TexCoord2f latches the current texture coordinate.
func (c *Context) TexCoord2f(u, v float32) {
	c.curUV = math3.Vec2{X: u, Y: v}
}

// Vertex2f issues a vertex at (x, y, 0).
func (c *Context) Vertex2f(x, y float32) {
	c.Vertex4f(x, y, 0, 1)
}

// Vertex3f issues a vertex at (x, y, z).
func (c *Context) Vertex3f(x, y, z float32) {
	c.Vertex4f(x, y, z, 1)
}

// Vertex4f issues a homogeneous vertex, copying the latched color,
// normal and texture coordinate into its record. Outside a Begin/End
// pair the call latches INVALID_OPERATION.
func (c *Context) Vertex4f(x, y, z, w float32) {
	if !c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	c.appendVertex(vertex{
		pos:    math3.Vec4{X: x, Y: y, Z: z, W: w},
		normal: c.curNormal,
		uv:     c.curUV,
		color:  c.curColor,
	})
}
