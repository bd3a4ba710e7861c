package pixelforge

import (
	"image"
	"image/color"

	"github.com/gogpu/pixelforge/internal/pixel"
)

// Compile-time interface check.
var _ image.Image = (*Framebuffer)(nil)

// PixelGetter decodes the pixel at index from a raw buffer. A custom
// getter installed on the context takes precedence over the default
// codec chosen from the buffer format.
type PixelGetter func(pixels []byte, index int) Color

// PixelSetter encodes a color into a raw buffer at pixel index.
type PixelSetter func(pixels []byte, index int, c Color)

// Framebuffer binds the caller's color pixels with an optional
// auxiliary buffer for swapping and a context-owned depth buffer.
// The color bytes are borrowed: their address and size must stay valid
// and exclusive while the owning context exists. Pixel indexing is
// y*width+x with no row padding.
type Framebuffer struct {
	width  int
	height int
	format pixel.Format

	pixels []byte
	aux    []byte

	// Allocated lazily on the first depth-test enable; values in [0, 1].
	depth []float32

	getter PixelGetter
	setter PixelSetter
}

func newFramebuffer(pixels []byte, width, height int, format pixel.Format) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		format: format,
		pixels: pixels,
	}
}

// Width returns the width of the framebuffer.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the height of the framebuffer.
func (f *Framebuffer) Height() int { return f.height }

// Format returns the color buffer pixel format.
func (f *Framebuffer) Format() PixelFormat { return f.format }

// Pixels returns the bound raw color bytes.
func (f *Framebuffer) Pixels() []byte { return f.pixels }

// Depth returns the depth buffer, or nil before the first depth-test
// enable.
func (f *Framebuffer) Depth() []float32 { return f.depth }

// SetPixel writes a color at (x, y). Out-of-range coordinates are
// ignored.
func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.set(y*f.width+x, c)
}

// GetPixel reads the color at (x, y). Out-of-range coordinates decode
// as transparent black.
func (f *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Transparent
	}
	return f.get(y*f.width + x)
}

func (f *Framebuffer) set(index int, c Color) {
	if f.setter != nil {
		f.setter(f.pixels, index, c)
		return
	}
	pixel.Encode(f.format, f.pixels, index, c.toPixel())
}

func (f *Framebuffer) get(index int) Color {
	if f.getter != nil {
		return f.getter(f.pixels, index)
	}
	return fromPixel(pixel.Decode(f.format, f.pixels, index))
}

// clearColor fills the whole color buffer with c.
func (f *Framebuffer) clearColor(c Color) {
	n := f.width * f.height
	if n == 0 {
		return
	}
	if f.setter != nil {
		for i := 0; i < n; i++ {
			f.setter(f.pixels, i, c)
		}
		return
	}

	// Encode the first pixel, then double the filled prefix with copy.
	pixel.Encode(f.format, f.pixels, 0, c.toPixel())
	bpp := f.format.Bytes()
	total := n * bpp
	for filled := bpp; filled < total; filled *= 2 {
		copy(f.pixels[filled:total], f.pixels[:filled])
	}
}

// clearDepth fills the depth buffer, if allocated, with d.
func (f *Framebuffer) clearDepth(d float32) {
	for i := range f.depth {
		f.depth[i] = d
	}
}

// ensureDepth allocates the depth buffer covering the color buffer.
// The buffer dimensions are fixed for the framebuffer's lifetime, so
// this size dominates every viewport rectangle: rasterizer writes are
// clamped to buffer bounds and can never index past it.
// Returns false on an impossible size.
func (f *Framebuffer) ensureDepth() bool {
	n := f.width * f.height
	if n < 0 {
		return false
	}
	if len(f.depth) >= n {
		return true
	}
	f.depth = make([]float32, n)
	for i := range f.depth {
		f.depth[i] = 1
	}
	return true
}

// swap exchanges the primary and auxiliary color buffers.
func (f *Framebuffer) swap() {
	f.pixels, f.aux = f.aux, f.pixels
}

// At implements the image.Image interface.
func (f *Framebuffer) At(x, y int) color.Color {
	return f.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
