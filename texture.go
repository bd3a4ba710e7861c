package pixelforge

import (
	"fmt"
	"image"

	math "github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixelforge/internal/pixel"
	"github.com/gogpu/pixelforge/internal/raster"
)

// Texture is a 2D image sampled during rasterization. Pixels are
// either borrowed (the engine never frees them) or owned (the engine
// allocated a copy). Sampling is nearest-filtered with repeat wrap.
type Texture struct {
	width  int
	height int
	format pixel.Format
	pix    []byte
	owned  bool
}

// TextureFromBuffer wraps caller-owned pixels as a texture without
// copying. The buffer must stay valid while the texture is in use.
func TextureFromBuffer(pixels []byte, width, height int, format PixelFormat) (*Texture, error) {
	if err := checkTextureArgs(pixels, width, height, format); err != nil {
		return nil, err
	}
	return &Texture{
		width:  width,
		height: height,
		format: format,
		pix:    pixels,
	}, nil
}

// TextureGenFromBuffer creates a texture from a copy of the given
// pixels. The engine owns the copy; Delete releases it.
func TextureGenFromBuffer(pixels []byte, width, height int, format PixelFormat) (*Texture, error) {
	if err := checkTextureArgs(pixels, width, height, format); err != nil {
		return nil, err
	}
	own := make([]byte, width*height*format.Bytes())
	copy(own, pixels)
	Logger().Debug("pixelforge: texture generated",
		"width", width, "height", height, "format", format.String())
	return &Texture{
		width:  width,
		height: height,
		format: format,
		pix:    own,
		owned:  true,
	}, nil
}

// TextureFromImage converts any image.Image into an owned R8G8B8A8
// texture, rescaling to the given dimensions when they differ from the
// source bounds. Width and height of 0 keep the source size.
func TextureFromImage(img image.Image, width, height int) (*Texture, error) {
	bounds := img.Bounds()
	if width == 0 {
		width = bounds.Dx()
	}
	if height == 0 {
		height = bounds.Dy()
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixelforge: invalid texture size %dx%d: %w", width, height, InvalidValue)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return &Texture{
		width:  width,
		height: height,
		format: pixel.RGBA8888,
		pix:    dst.Pix,
		owned:  true,
	}, nil
}

func checkTextureArgs(pixels []byte, width, height int, format PixelFormat) error {
	if !format.Valid() {
		return fmt.Errorf("pixelforge: texture format %v: %w", format, InvalidEnum)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pixelforge: invalid texture size %dx%d: %w", width, height, InvalidValue)
	}
	if need := width * height * format.Bytes(); len(pixels) < need {
		return fmt.Errorf("pixelforge: texture buffer %d bytes, need %d: %w", len(pixels), need, InvalidValue)
	}
	return nil
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Format returns the texel format.
func (t *Texture) Format() PixelFormat { return t.format }

// Delete releases owned pixel storage. Deleting a borrowed texture
// only detaches the caller's buffer. The texture must not be sampled
// afterwards.
func (t *Texture) Delete() {
	t.pix = nil
	t.owned = false
}

// Sample fetches the texel at (u, v) with repeat wrap and nearest
// filtering.
func (t *Texture) Sample(u, v float32) Color {
	if t.pix == nil {
		return White
	}
	u -= math.Floor(u)
	v -= math.Floor(v)
	x := int(u * float32(t.width))
	y := int(v * float32(t.height))
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}
	return fromPixel(pixel.Decode(t.format, t.pix, y*t.width+x))
}

// textureSampler adapts a Texture to the rasterizer's sampler
// interface.
type textureSampler struct {
	tex *Texture
}

func (s textureSampler) Sample(u, v float32) raster.RGBA {
	c := s.tex.Sample(u, v)
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// EnableTexture binds tex and enables texturing for subsequent
// primitives.
func (c *Context) EnableTexture(tex *Texture) {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	if tex == nil {
		c.setError(InvalidValue)
		return
	}
	c.texture = tex
	c.enable(Texture2D)
}

// DisableTexture disables texturing and unbinds the current texture.
func (c *Context) DisableTexture() {
	if c.assemblerActive() {
		c.setError(InvalidOperation)
		return
	}
	c.texture = nil
	c.disable(Texture2D)
}
