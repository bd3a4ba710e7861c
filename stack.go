package pixelforge

import "github.com/gogpu/pixelforge/math3"

// Matrix stack capacities. MODELVIEW must hold at least 16 entries,
// PROJECTION at least 2.
const (
	modelViewStackDepth  = 32
	projectionStackDepth = 4
)

// matrixStack is a fixed-capacity stack of 4x4 matrices with a current
// top. It starts with a single identity entry.
type matrixStack struct {
	entries []math3.Mat4
	top     int
}

func newMatrixStack(capacity int) matrixStack {
	s := matrixStack{entries: make([]math3.Mat4, capacity)}
	s.entries[0] = math3.Identity()
	return s
}

func (s *matrixStack) current() *math3.Mat4 {
	return &s.entries[s.top]
}

func (s *matrixStack) push() bool {
	if s.top+1 >= len(s.entries) {
		return false
	}
	s.entries[s.top+1] = s.entries[s.top]
	s.top++
	return true
}

func (s *matrixStack) pop() bool {
	if s.top == 0 {
		return false
	}
	s.top--
	return true
}

// activeStack returns the stack selected by the current matrix mode.
func (c *Context) activeStack() *matrixStack {
	if c.matrixMode == Projection {
		return &c.projection
	}
	return &c.modelView
}

// MatrixMode selects the stack subsequent matrix operations apply to.
func (c *Context) MatrixMode(mode MatrixMode) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if mode != Projection && mode != ModelView {
		c.setError(InvalidEnum)
		return
	}
	c.matrixMode = mode
}

// LoadIdentity replaces the top of the active stack with the identity.
func (c *Context) LoadIdentity() {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	*c.activeStack().current() = math3.Identity()
	c.markMatrixDirty()
}

// LoadMatrix replaces the top of the active stack with m.
func (c *Context) LoadMatrix(m math3.Mat4) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	*c.activeStack().current() = m
	c.markMatrixDirty()
}

// MultMatrix post-multiplies the top of the active stack: top = top * m.
func (c *Context) MultMatrix(m math3.Mat4) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	top := c.activeStack().current()
	*top = math3.Mul(*top, m)
	c.markMatrixDirty()
}

// PushMatrix duplicates the top of the active stack. At capacity the
// call latches STACK_OVERFLOW and leaves the stack unchanged.
func (c *Context) PushMatrix() {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if !c.activeStack().push() {
		c.setError(StackOverflow)
	}
}

// PopMatrix discards the top of the active stack. With a single entry
// remaining the call latches STACK_UNDERFLOW and leaves it unchanged.
func (c *Context) PopMatrix() {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if !c.activeStack().pop() {
		c.setError(StackUnderflow)
		return
	}
	c.markMatrixDirty()
}

// Translatef post-multiplies the active matrix by a translation.
func (c *Context) Translatef(x, y, z float32) {
	c.MultMatrix(math3.Translate(math3.Vec3{X: x, Y: y, Z: z}))
}

// Rotatef post-multiplies the active matrix by a rotation of angle
// degrees about the given axis.
func (c *Context) Rotatef(angleDegrees, x, y, z float32) {
	axis := math3.Vec3{X: x, Y: y, Z: z}
	if math3.Norm2(axis) == 0 {
		c.setError(InvalidValue)
		return
	}
	c.MultMatrix(math3.Rotation(math3.DegToRad(angleDegrees), axis))
}

// Scalef post-multiplies the active matrix by a scale.
func (c *Context) Scalef(x, y, z float32) {
	c.MultMatrix(math3.Scaling(math3.Vec3{X: x, Y: y, Z: z}))
}

// Frustum post-multiplies the active matrix by a perspective
// projection for the given clip volume.
func (c *Context) Frustum(left, right, bottom, top, near, far float64) {
	if left == right || bottom == top || near == far || near <= 0 || far <= 0 {
		c.setError(InvalidValue)
		return
	}
	c.MultMatrix(math3.Frustum(
		float32(left), float32(right),
		float32(bottom), float32(top),
		float32(near), float32(far)))
}

// Ortho post-multiplies the active matrix by an orthographic
// projection. Ortho(0, w, h, 0, 0, 1) gives the conventional 2D setup
// with the origin at the upper-left corner.
func (c *Context) Ortho(left, right, bottom, top, near, far float64) {
	if left == right || bottom == top || near == far {
		c.setError(InvalidValue)
		return
	}
	c.MultMatrix(math3.Ortho(
		float32(left), float32(right),
		float32(bottom), float32(top),
		float32(near), float32(far)))
}

// markMatrixDirty flags the composed modelview-projection (and the
// normal matrix) for lazy recomputation on the next vertex transform.
func (c *Context) markMatrixDirty() {
	c.matricesDirty = true
}

// updateMatrices recomputes the cached products when dirty.
func (c *Context) updateMatrices() {
	if !c.matricesDirty {
		return
	}
	c.matricesDirty = false
	mv := *c.modelView.current()
	c.mvp = math3.Mul(*c.projection.current(), mv)
	c.normalMatrix = mv.NormalMatrix()
}
