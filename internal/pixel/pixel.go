// Package pixel implements the pixel format layer: encoding and decoding
// of logical RGBA8 colors to and from raw framebuffer bytes in each of
// the supported channel layouts.
package pixel

// Format identifies a framebuffer or texture pixel layout.
type Format int

// Supported pixel formats. Indexing into a buffer of any color format
// is y*width+x with no row padding. Depth32F is internal to depth
// buffers and never appears in a color buffer.
const (
	RGB888 Format = iota
	BGR888
	RGBA8888
	BGRA8888
	Depth32F
)

// RGBA is a logical color: four 8-bit channels in linear straight-alpha
// interpretation.
type RGBA struct {
	R, G, B, A uint8
}

// Bytes returns the per-pixel byte width of f, or 0 for an unknown format.
func (f Format) Bytes() int {
	switch f {
	case RGB888, BGR888:
		return 3
	case RGBA8888, BGRA8888, Depth32F:
		return 4
	}
	return 0
}

// Valid reports whether f is a recognized color buffer format.
func (f Format) Valid() bool {
	switch f {
	case RGB888, BGR888, RGBA8888, BGRA8888:
		return true
	}
	return false
}

// String returns the format name.
func (f Format) String() string {
	switch f {
	case RGB888:
		return "R8G8B8"
	case BGR888:
		return "B8G8R8"
	case RGBA8888:
		return "R8G8B8A8"
	case BGRA8888:
		return "B8G8R8A8"
	case Depth32F:
		return "DEPTH32F"
	}
	return "unknown"
}

// Encode writes color c into buf at pixel index using layout f.
// Formats without an alpha channel drop c.A.
func Encode(f Format, buf []byte, index int, c RGBA) {
	switch f {
	case RGB888:
		i := index * 3
		buf[i+0] = c.R
		buf[i+1] = c.G
		buf[i+2] = c.B
	case BGR888:
		i := index * 3
		buf[i+0] = c.B
		buf[i+1] = c.G
		buf[i+2] = c.R
	case RGBA8888:
		i := index * 4
		buf[i+0] = c.R
		buf[i+1] = c.G
		buf[i+2] = c.B
		buf[i+3] = c.A
	case BGRA8888:
		i := index * 4
		buf[i+0] = c.B
		buf[i+1] = c.G
		buf[i+2] = c.R
		buf[i+3] = c.A
	}
}

// Decode reads the pixel at index from buf using layout f.
// Formats without an alpha channel decode as fully opaque.
func Decode(f Format, buf []byte, index int) RGBA {
	switch f {
	case RGB888:
		i := index * 3
		return RGBA{R: buf[i+0], G: buf[i+1], B: buf[i+2], A: 0xFF}
	case BGR888:
		i := index * 3
		return RGBA{R: buf[i+2], G: buf[i+1], B: buf[i+0], A: 0xFF}
	case RGBA8888:
		i := index * 4
		return RGBA{R: buf[i+0], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
	case BGRA8888:
		i := index * 4
		return RGBA{R: buf[i+2], G: buf[i+1], B: buf[i+0], A: buf[i+3]}
	}
	return RGBA{}
}
