package pixelforge

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/pixelforge/math3"
)

// Context is one rendering engine instance. It owns every piece of
// render state — matrix stacks, lights, material, enables, attribute
// latches, the primitive scratch and the depth buffer — and borrows
// the caller's color pixels for its lifetime.
//
// A context must not be used from two goroutines simultaneously. Two
// goroutines may operate concurrently on two distinct contexts as long
// as their color buffers do not alias.
type Context struct {
	fb *Framebuffer

	// Matrix state
	matrixMode    MatrixMode
	modelView     matrixStack
	projection    matrixStack
	matricesDirty bool
	mvp           math3.Mat4
	normalMatrix  math3.Mat4

	// Render state
	caps       uint32
	cullFace   Face
	frontFace  FaceWinding
	shadeModel ShadeModel
	viewport   [4]int
	clearColor Color
	clearDepth float32

	// Attribute latches
	curColor  Color
	curNormal math3.Vec3
	curUV     math3.Vec2

	// Lighting
	lights            [MaxLights]Light
	material          Material
	globalAmbient     [4]float32
	colorMaterialMode MaterialParam
	colorMaterialFace Face

	// Texturing
	texture *Texture

	// Immediate-mode assembler
	primMode  PrimitiveMode
	primCount int
	pending   []vertex
	lineVert  vertex
	loopFirst vertex

	// Vertex array bindings
	arrays vertexArrays

	// Latched error slot
	err ErrorCode

	logger *slog.Logger
}

// currentCtx is the current-context slot. The C heritage binds one
// context per thread; Go has no thread-local storage, so the slot is a
// single atomic pointer and concurrent multi-context use goes through
// explicit *Context method calls instead.
var currentCtx atomic.Pointer[Context]

// noCtxErr latches NO_CONTEXT reported by package-level entry points
// that found no current context to latch into.
var noCtxErr atomic.Int32

// ContextCreate builds a context rendering into the caller's pixel
// buffer. The buffer must hold width*height pixels of the given format
// and stay valid and exclusive until ContextDestroy.
func ContextCreate(pixels []byte, width, height int, format PixelFormat, opts ...ContextOption) (*Context, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("pixelforge: color buffer format %v: %w", format, InvalidEnum)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixelforge: invalid context size %dx%d: %w", width, height, InvalidValue)
	}
	if need := width * height * format.Bytes(); len(pixels) < need {
		return nil, fmt.Errorf("pixelforge: color buffer %d bytes, need %d: %w", len(pixels), need, InvalidValue)
	}

	var options contextOptions
	for _, opt := range opts {
		opt(&options)
	}

	c := &Context{
		fb:                newFramebuffer(pixels, width, height, format),
		modelView:         newMatrixStack(modelViewStackDepth),
		projection:        newMatrixStack(projectionStackDepth),
		matricesDirty:     true,
		matrixMode:        ModelView,
		shadeModel:        Smooth,
		frontFace:         CCW,
		cullFace:          Back,
		viewport:          [4]int{0, 0, width, height},
		clearDepth:        1,
		curColor:          White,
		curNormal:         math3.Vec3{X: 0, Y: 0, Z: 1},
		globalAmbient:     [4]float32{0.2, 0.2, 0.2, 1},
		material:          defaultMaterial(),
		colorMaterialMode: AmbientAndDiffuse,
		colorMaterialFace: FrontAndBack,
		primMode:          modeIdle,
		pending:           make([]vertex, 0, 4),
	}
	for i := range c.lights {
		c.lights[i] = defaultLight(i)
	}
	c.fb.getter = options.getter
	c.fb.setter = options.setter
	c.fb.aux = options.aux
	c.logger = options.logger
	if c.logger == nil {
		c.logger = Logger()
	}

	c.logger.Debug("pixelforge: context created",
		"width", width, "height", height, "format", format.String())
	return c, nil
}

// ContextDestroy releases the context's owned resources (depth buffer,
// scratch). If it is the current context the slot is cleared. The
// caller's color pixels are untouched.
func ContextDestroy(c *Context) {
	if c == nil {
		return
	}
	if currentCtx.Load() == c {
		currentCtx.Store(nil)
	}
	c.fb.depth = nil
	c.fb.pixels = nil
	c.fb.aux = nil
	c.pending = nil
	c.texture = nil
	c.logger.Debug("pixelforge: context destroyed")
}

// MakeCurrent installs ctx as the current context targeted by the
// package-level entry points. Passing nil clears the slot.
func MakeCurrent(ctx *Context) {
	currentCtx.Store(ctx)
}

// Current returns the current context, or nil.
func Current() *Context {
	return currentCtx.Load()
}

// Framebuffer exposes the context's bound buffers.
func (c *Context) Framebuffer() *Framebuffer {
	return c.fb
}

func (c *Context) enable(cap Capability) {
	if i := lightIndex(cap); i >= 0 {
		c.lights[i].enabled = true
		return
	}
	c.caps |= 1 << uint(cap)
}

func (c *Context) disable(cap Capability) {
	if i := lightIndex(cap); i >= 0 {
		c.lights[i].enabled = false
		return
	}
	c.caps &^= 1 << uint(cap)
}

func (c *Context) isEnabled(cap Capability) bool {
	if i := lightIndex(cap); i >= 0 {
		return c.lights[i].enabled
	}
	return c.caps&(1<<uint(cap)) != 0
}

// Enable turns on a capability. Enabling DEPTH_TEST allocates the
// depth buffer on first use.
func (c *Context) Enable(cap Capability) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if !cap.valid() {
		c.setError(InvalidEnum)
		return
	}
	if cap == DepthTest && c.fb.depth == nil {
		if !c.fb.ensureDepth() {
			c.setError(OutOfMemory)
			return
		}
		c.logger.Debug("pixelforge: allocated depth buffer",
			"width", c.fb.width, "height", c.fb.height)
	}
	c.enable(cap)
}

// Disable turns off a capability.
func (c *Context) Disable(cap Capability) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if !cap.valid() {
		c.setError(InvalidEnum)
		return
	}
	c.disable(cap)
}

// IsEnabled reports whether a capability is on.
func (c *Context) IsEnabled(cap Capability) bool {
	if !cap.valid() {
		c.setError(InvalidEnum)
		return false
	}
	return c.isEnabled(cap)
}

// EnableDepthTest is shorthand for Enable(DepthTest).
func (c *Context) EnableDepthTest() { c.Enable(DepthTest) }

// DisableDepthTest is shorthand for Disable(DepthTest).
func (c *Context) DisableDepthTest() { c.Disable(DepthTest) }

// Viewport sets the window rectangle primitives map into.
func (c *Context) Viewport(x, y, width, height int) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if width < 0 || height < 0 {
		c.setError(InvalidValue)
		return
	}
	c.viewport = [4]int{x, y, width, height}
}

// CullFace selects which facing Enable(CullFace) discards.
func (c *Context) CullFace(face Face) {
	if face < Front || face > FrontAndBack {
		c.setError(InvalidEnum)
		return
	}
	c.cullFace = face
}

// FrontFace declares the screen-space winding of front faces.
func (c *Context) FrontFace(winding FaceWinding) {
	if winding != CCW && winding != CW {
		c.setError(InvalidEnum)
		return
	}
	c.frontFace = winding
}

// ShadeModel selects SMOOTH interpolated or FLAT provoking-vertex
// coloring.
func (c *Context) ShadeModel(model ShadeModel) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if model != Smooth && model != Flat {
		c.setError(InvalidEnum)
		return
	}
	c.shadeModel = model
}

// ClearColor sets the color Clear writes.
func (c *Context) ClearColor(col Color) {
	c.clearColor = col
}

// ClearDepth sets the depth value Clear writes, in [0, 1].
func (c *Context) ClearDepth(d float32) {
	if d < 0 || d > 1 {
		c.setError(InvalidValue)
		return
	}
	c.clearDepth = d
}

// Clear resets the buffers named by mask. Clearing an unallocated
// depth buffer is a no-op.
func (c *Context) Clear(mask ClearMask) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if mask == 0 || mask&^(ColorBufferBit|DepthBufferBit) != 0 {
		c.setError(InvalidValue)
		return
	}
	if mask&ColorBufferBit != 0 {
		c.fb.clearColor(c.clearColor)
	}
	if mask&DepthBufferBit != 0 {
		c.fb.clearDepth(c.clearDepth)
	}
}

// SetAuxBuffer installs an auxiliary color buffer for SwapBuffers.
// It must match the primary buffer's size and format.
func (c *Context) SetAuxBuffer(pixels []byte) {
	if pixels != nil && len(pixels) < c.fb.width*c.fb.height*c.fb.format.Bytes() {
		c.setError(InvalidValue)
		return
	}
	c.fb.aux = pixels
}

// SwapBuffers exchanges the primary and auxiliary color buffers.
// Without an auxiliary buffer the call latches INVALID_OPERATION.
func (c *Context) SwapBuffers() {
	if c.assemblerActive() || c.fb.aux == nil {
		c.setError(InvalidOperation)
		return
	}
	c.fb.swap()
}

// SetDefaultPixelGetter overrides the format-derived pixel decoder.
// Passing nil restores the default codec.
func (c *Context) SetDefaultPixelGetter(getter PixelGetter) {
	c.fb.getter = getter
}

// SetDefaultPixelSetter overrides the format-derived pixel encoder.
// Passing nil restores the default codec.
func (c *Context) SetDefaultPixelSetter(setter PixelSetter) {
	c.fb.setter = setter
}
