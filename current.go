package pixelforge

import "github.com/gogpu/pixelforge/math3"

// Package-level entry points mirroring the classic fixed-function call
// surface. Each forwards to the current context installed by
// MakeCurrent; without one the call is a no-op and NO_CONTEXT is
// latched for GetError to report.

// noContext records NO_CONTEXT for a package-level call that found no
// current context.
func noContext() {
	noCtxErr.CompareAndSwap(int32(NoError), int32(NoContext))
}

// GetError returns the latched error of the current context and clears
// it. Without a current context it reports NO_CONTEXT latched by
// earlier contextless calls, or NO_CONTEXT itself.
func GetError() ErrorCode {
	if c := Current(); c != nil {
		return c.GetError()
	}
	if prev := ErrorCode(noCtxErr.Swap(int32(NoError))); prev != NoError {
		return prev
	}
	return NoContext
}

// Begin opens a primitive on the current context.
func Begin(mode PrimitiveMode) {
	if c := Current(); c != nil {
		c.Begin(mode)
	} else {
		noContext()
	}
}

// End closes the open primitive on the current context.
func End() {
	if c := Current(); c != nil {
		c.End()
	} else {
		noContext()
	}
}

// Vertex2f issues a vertex at (x, y, 0) on the current context.
func Vertex2f(x, y float32) {
	if c := Current(); c != nil {
		c.Vertex2f(x, y)
	} else {
		noContext()
	}
}

// Vertex3f issues a vertex on the current context.
func Vertex3f(x, y, z float32) {
	if c := Current(); c != nil {
		c.Vertex3f(x, y, z)
	} else {
		noContext()
	}
}

// Vertex4f issues a homogeneous vertex on the current context.
func Vertex4f(x, y, z, w float32) {
	if c := Current(); c != nil {
		c.Vertex4f(x, y, z, w)
	} else {
		noContext()
	}
}

// Color3f latches the current color, opaque.
func Color3f(r, g, b float32) {
	if c := Current(); c != nil {
		c.Color3f(r, g, b)
	} else {
		noContext()
	}
}

// Color4f latches the current color.
func Color4f(r, g, b, a float32) {
	if c := Current(); c != nil {
		c.Color4f(r, g, b, a)
	} else {
		noContext()
	}
}

// Color4ub latches the current color from 8-bit components.
func Color4ub(r, g, b, a uint8) {
	if c := Current(); c != nil {
		c.Color4ub(r, g, b, a)
	} else {
		noContext()
	}
}

// Normal3f latches the current normal.
func Normal3f(x, y, z float32) {
	if c := Current(); c != nil {
		c.Normal3f(x, y, z)
	} else {
		noContext()
	}
}

// TexCoord2f latches the current texture coordinate.
func TexCoord2f(u, v float32) {
	if c := Current(); c != nil {
		c.TexCoord2f(u, v)
	} else {
		noContext()
	}
}

// SetMatrixMode selects the active matrix stack.
func SetMatrixMode(mode MatrixMode) {
	if c := Current(); c != nil {
		c.MatrixMode(mode)
	} else {
		noContext()
	}
}

// LoadIdentity replaces the active matrix with the identity.
func LoadIdentity() {
	if c := Current(); c != nil {
		c.LoadIdentity()
	} else {
		noContext()
	}
}

// LoadMatrix replaces the active matrix with m.
func LoadMatrix(m math3.Mat4) {
	if c := Current(); c != nil {
		c.LoadMatrix(m)
	} else {
		noContext()
	}
}

// MultMatrix post-multiplies the active matrix by m.
func MultMatrix(m math3.Mat4) {
	if c := Current(); c != nil {
		c.MultMatrix(m)
	} else {
		noContext()
	}
}

// PushMatrix duplicates the top of the active stack.
func PushMatrix() {
	if c := Current(); c != nil {
		c.PushMatrix()
	} else {
		noContext()
	}
}

// PopMatrix discards the top of the active stack.
func PopMatrix() {
	if c := Current(); c != nil {
		c.PopMatrix()
	} else {
		noContext()
	}
}

// Translatef post-multiplies the active matrix by a translation.
func Translatef(x, y, z float32) {
	if c := Current(); c != nil {
		c.Translatef(x, y, z)
	} else {
		noContext()
	}
}

// Rotatef post-multiplies the active matrix by a rotation in degrees.
func Rotatef(angleDegrees, x, y, z float32) {
	if c := Current(); c != nil {
		c.Rotatef(angleDegrees, x, y, z)
	} else {
		noContext()
	}
}

// Scalef post-multiplies the active matrix by a scale.
func Scalef(x, y, z float32) {
	if c := Current(); c != nil {
		c.Scalef(x, y, z)
	} else {
		noContext()
	}
}

// Frustum post-multiplies the active matrix by a perspective volume.
func Frustum(left, right, bottom, top, near, far float64) {
	if c := Current(); c != nil {
		c.Frustum(left, right, bottom, top, near, far)
	} else {
		noContext()
	}
}

// Ortho post-multiplies the active matrix by an orthographic volume.
func Ortho(left, right, bottom, top, near, far float64) {
	if c := Current(); c != nil {
		c.Ortho(left, right, bottom, top, near, far)
	} else {
		noContext()
	}
}

// Viewport sets the window rectangle of the current context.
func Viewport(x, y, width, height int) {
	if c := Current(); c != nil {
		c.Viewport(x, y, width, height)
	} else {
		noContext()
	}
}

// Enable turns on a capability of the current context.
func Enable(cap Capability) {
	if c := Current(); c != nil {
		c.Enable(cap)
	} else {
		noContext()
	}
}

// Disable turns off a capability of the current context.
func Disable(cap Capability) {
	if c := Current(); c != nil {
		c.Disable(cap)
	} else {
		noContext()
	}
}

// EnableDepthTest is shorthand for Enable(DepthTest).
func EnableDepthTest() { Enable(DepthTest) }

// DisableDepthTest is shorthand for Disable(DepthTest).
func DisableDepthTest() { Disable(DepthTest) }

// EnableLight turns on one light slot.
func EnableLight(light Capability) {
	if c := Current(); c != nil {
		c.EnableLight(light)
	} else {
		noContext()
	}
}

// DisableLight turns off one light slot.
func DisableLight(light Capability) {
	if c := Current(); c != nil {
		c.DisableLight(light)
	} else {
		noContext()
	}
}

// Lightfv sets a light parameter on the current context.
func Lightfv(light Capability, param LightParam, values []float32) {
	if c := Current(); c != nil {
		c.Lightfv(light, param, values)
	} else {
		noContext()
	}
}

// Materialfv sets a material channel on the current context.
func Materialfv(face Face, param MaterialParam, values []float32) {
	if c := Current(); c != nil {
		c.Materialfv(face, param, values)
	} else {
		noContext()
	}
}

// SetColorMaterial selects the material channel tracking vertex color.
func SetColorMaterial(face Face, mode MaterialParam) {
	if c := Current(); c != nil {
		c.ColorMaterial(face, mode)
	} else {
		noContext()
	}
}

// SetCullFace selects the culled facing.
func SetCullFace(face Face) {
	if c := Current(); c != nil {
		c.CullFace(face)
	} else {
		noContext()
	}
}

// SetShadeModel selects flat or smooth shading.
func SetShadeModel(model ShadeModel) {
	if c := Current(); c != nil {
		c.ShadeModel(model)
	} else {
		noContext()
	}
}

// ClearColor sets the clear color of the current context.
func ClearColor(col Color) {
	if c := Current(); c != nil {
		c.ClearColor(col)
	} else {
		noContext()
	}
}

// Clear resets the buffers named by mask on the current context.
func Clear(mask ClearMask) {
	if c := Current(); c != nil {
		c.Clear(mask)
	} else {
		noContext()
	}
}

// EnableTexture binds tex and enables texturing.
func EnableTexture(tex *Texture) {
	if c := Current(); c != nil {
		c.EnableTexture(tex)
	} else {
		noContext()
	}
}

// DisableTexture disables texturing.
func DisableTexture() {
	if c := Current(); c != nil {
		c.DisableTexture()
	} else {
		noContext()
	}
}

// EnableStatePointer binds a vertex attribute array.
func EnableStatePointer(kind ArrayKind, data any) {
	if c := Current(); c != nil {
		c.EnableStatePointer(kind, data)
	} else {
		noContext()
	}
}

// DisableStatePointer unbinds a vertex attribute array.
func DisableStatePointer(kind ArrayKind) {
	if c := Current(); c != nil {
		c.DisableStatePointer(kind)
	} else {
		noContext()
	}
}

// DrawVertexArray issues vertices from the bound arrays.
func DrawVertexArray(mode PrimitiveMode, first, count int) {
	if c := Current(); c != nil {
		c.DrawVertexArray(mode, first, count)
	} else {
		noContext()
	}
}

// DrawVertexArrayElements issues indexed vertices from the bound
// arrays.
func DrawVertexArrayElements(mode PrimitiveMode, first, count int, indices []int) {
	if c := Current(); c != nil {
		c.DrawVertexArrayElements(mode, first, count, indices)
	} else {
		noContext()
	}
}

// SetAuxBuffer installs an auxiliary color buffer on the current
// context.
func SetAuxBuffer(pixels []byte) {
	if c := Current(); c != nil {
		c.SetAuxBuffer(pixels)
	} else {
		noContext()
	}
}

// SwapBuffers exchanges the primary and auxiliary color buffers.
func SwapBuffers() {
	if c := Current(); c != nil {
		c.SwapBuffers()
	} else {
		noContext()
	}
}

// SetDefaultPixelGetter overrides the pixel decoder of the current
// context.
func SetDefaultPixelGetter(getter PixelGetter) {
	if c := Current(); c != nil {
		c.SetDefaultPixelGetter(getter)
	} else {
		noContext()
	}
}

// SetDefaultPixelSetter overrides the pixel encoder of the current
// context.
func SetDefaultPixelSetter(setter PixelSetter) {
	if c := Current(); c != nil {
		c.SetDefaultPixelSetter(setter)
	} else {
		noContext()
	}
}
