package pixelforge

import "github.com/gogpu/pixelforge/internal/pixel"

// PixelFormat identifies the channel layout of a color buffer or
// texture. The enum is authoritative; there are no alias names.
type PixelFormat = pixel.Format

// Supported pixel formats.
const (
	PixelFormatR8G8B8   = pixel.RGB888
	PixelFormatB8G8R8   = pixel.BGR888
	PixelFormatR8G8B8A8 = pixel.RGBA8888
	PixelFormatB8G8R8A8 = pixel.BGRA8888
)

// PrimitiveMode selects how the immediate-mode assembler groups
// vertices into primitives between Begin and End.
type PrimitiveMode int

const (
	Points PrimitiveMode = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
	Quads
	QuadStrip

	// modeIdle marks the assembler as outside any Begin/End pair.
	modeIdle PrimitiveMode = -1
)

func (m PrimitiveMode) valid() bool {
	return m >= Points && m <= QuadStrip
}

// MatrixMode selects which matrix stack subsequent stack operations
// apply to.
type MatrixMode int

const (
	Projection MatrixMode = iota
	ModelView
)

// Face selects polygon facings for culling and material updates.
type Face int

const (
	Front Face = iota
	Back
	FrontAndBack
)

// FaceWinding declares which screen-space winding is the front face.
type FaceWinding int

const (
	CCW FaceWinding = iota
	CW
)

// ShadeModel selects between per-vertex interpolated color and the
// provoking vertex's color.
type ShadeModel int

const (
	Smooth ShadeModel = iota
	Flat
)

// Capability is a toggleable piece of render state for Enable/Disable.
type Capability int

const (
	DepthTest Capability = iota
	Lighting
	CullFace
	ColorMaterial
	Texture2D
	Light0
	Light1
	Light2
	Light3
	Light4
	Light5
	Light6
	Light7
)

// MaxLights is the number of light slots per context.
const MaxLights = 8

func (c Capability) valid() bool {
	return c >= DepthTest && c <= Light7
}

// ClearMask selects which buffers Clear resets.
type ClearMask int

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// LightParam names a per-light parameter for Lightfv.
type LightParam int

const (
	Position LightParam = iota
	SpotDirection
	Ambient
	Diffuse
	Specular
	SpotCutoff
	SpotExponent
	ConstantAttenuation
	LinearAttenuation
	QuadraticAttenuation
)

// MaterialParam names a material channel for Materialfv and
// ColorMaterial. AmbientAndDiffuse is valid for both.
type MaterialParam int

const (
	MaterialAmbient MaterialParam = iota
	MaterialDiffuse
	MaterialSpecular
	MaterialEmission
	MaterialShininess
	AmbientAndDiffuse
)

// ArrayKind names a vertex attribute array for the vertex array path.
type ArrayKind int

const (
	PositionArray ArrayKind = iota
	NormalArray
	ColorArray
	TexCoordArray
)
