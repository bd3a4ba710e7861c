package pixelforge

import (
	"image/color"

	"github.com/gogpu/pixelforge/internal/pixel"
)

// Color is a logical RGBA8 color: four 8-bit channels in linear
// straight-alpha interpretation.
type Color struct {
	R, G, B, A uint8
}

// NewColor creates a color from 8-bit components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromFloats creates a color from components in [0, 1].
// Out-of-range components are clamped.
func ColorFromFloats(r, g, b, a float32) Color {
	return Color{
		R: floatChannel(r),
		G: floatChannel(g),
		B: floatChannel(b),
		A: floatChannel(a),
	}
}

func floatChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Modulate multiplies two colors component-wise in 8-bit space,
// rounding toward zero.
func (c Color) Modulate(other Color) Color {
	return Color{
		R: uint8(uint32(c.R) * uint32(other.R) / 255),
		G: uint8(uint32(c.G) * uint32(other.G) / 255),
		B: uint8(uint32(c.B) * uint32(other.B) / 255),
		A: uint8(uint32(c.A) * uint32(other.A) / 255),
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return Color{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
		A: lerp(c.A, other.A),
	}
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

func (c Color) toPixel() pixel.RGBA {
	return pixel.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fromPixel(c pixel.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Common colors
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Cyan        = Color{0, 255, 255, 255}
	Magenta     = Color{255, 0, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)
