package pixelforge

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"strings"
	"testing"
)

// newTestContext builds an R8G8B8A8 context with the conventional 2D
// projection: origin at the upper-left corner, one unit per pixel.
func newTestContext(t *testing.T, w, h int) (*Context, []byte) {
	t.Helper()
	buf := make([]byte, w*h*4)
	ctx, err := ContextCreate(buf, w, h, PixelFormatR8G8B8A8)
	if err != nil {
		t.Fatalf("ContextCreate: %v", err)
	}
	ctx.MatrixMode(Projection)
	ctx.LoadIdentity()
	ctx.Ortho(0, float64(w), float64(h), 0, 0, 1)
	ctx.MatrixMode(ModelView)
	ctx.LoadIdentity()
	return ctx, buf
}

func TestContextCreate(t *testing.T) {
	buf := make([]byte, 4*2*4)
	ctx, err := ContextCreate(buf, 4, 2, PixelFormatR8G8B8A8)
	if err != nil {
		t.Fatalf("ContextCreate: %v", err)
	}
	if got := ctx.Framebuffer().Width(); got != 4 {
		t.Errorf("Width = %d, want 4", got)
	}
	if got := ctx.Framebuffer().Height(); got != 2 {
		t.Errorf("Height = %d, want 2", got)
	}
	if got := ctx.GetError(); got != NoError {
		t.Errorf("fresh context error = %v, want NO_ERROR", got)
	}
}

func TestContextCreateValidation(t *testing.T) {
	buf := make([]byte, 16)

	if _, err := ContextCreate(buf, 0, 2, PixelFormatR8G8B8A8); !errors.Is(err, InvalidValue) {
		t.Errorf("zero width error = %v, want INVALID_VALUE", err)
	}
	if _, err := ContextCreate(buf, 4, 2, PixelFormat(42)); !errors.Is(err, InvalidEnum) {
		t.Errorf("bad format error = %v, want INVALID_ENUM", err)
	}
	if _, err := ContextCreate(buf, 4, 2, PixelFormatR8G8B8A8); !errors.Is(err, InvalidValue) {
		t.Errorf("short buffer error = %v, want INVALID_VALUE", err)
	}
}

// S1: after a masked color clear, every pixel decodes to the clear color.
func TestClearColorBuffer(t *testing.T) {
	ctx, _ := newTestContext(t, 4, 2)
	want := Color{17, 34, 51, 68}

	ctx.ClearColor(want)
	ctx.Clear(ColorBufferBit)

	fb := ctx.Framebuffer()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.GetPixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestClearEveryFormat(t *testing.T) {
	formats := []PixelFormat{
		PixelFormatR8G8B8,
		PixelFormatB8G8R8,
		PixelFormatR8G8B8A8,
		PixelFormatB8G8R8A8,
	}
	for _, f := range formats {
		buf := make([]byte, 5*3*f.Bytes())
		ctx, err := ContextCreate(buf, 5, 3, f)
		if err != nil {
			t.Fatalf("%v: ContextCreate: %v", f, err)
		}
		want := Color{200, 150, 100, 255}
		ctx.ClearColor(want)
		ctx.Clear(ColorBufferBit)
		for i := 0; i < 15; i++ {
			got := ctx.Framebuffer().GetPixel(i%5, i/5)
			if got != want {
				t.Fatalf("%v pixel %d = %+v, want %+v", f, i, got, want)
			}
		}
	}
}

func TestClearMaskValidation(t *testing.T) {
	ctx, _ := newTestContext(t, 2, 2)
	ctx.Clear(0)
	if got := ctx.GetError(); got != InvalidValue {
		t.Errorf("Clear(0) error = %v, want INVALID_VALUE", got)
	}
	ctx.Clear(ClearMask(1 << 7))
	if got := ctx.GetError(); got != InvalidValue {
		t.Errorf("Clear(bad bit) error = %v, want INVALID_VALUE", got)
	}
}

func TestSwapBuffers(t *testing.T) {
	front := make([]byte, 2*2*4)
	back := make([]byte, 2*2*4)
	ctx, err := ContextCreate(front, 2, 2, PixelFormatR8G8B8A8, WithAuxBuffer(back))
	if err != nil {
		t.Fatalf("ContextCreate: %v", err)
	}

	ctx.ClearColor(Red)
	ctx.Clear(ColorBufferBit)
	ctx.SwapBuffers()
	ctx.ClearColor(Blue)
	ctx.Clear(ColorBufferBit)

	if front[0] != 255 {
		t.Errorf("front buffer red byte = %d, want 255", front[0])
	}
	if back[2] != 255 {
		t.Errorf("back buffer blue byte = %d, want 255", back[2])
	}
}

func TestSwapBuffersWithoutAux(t *testing.T) {
	ctx, _ := newTestContext(t, 2, 2)
	ctx.SwapBuffers()
	if got := ctx.GetError(); got != InvalidOperation {
		t.Errorf("SwapBuffers without aux error = %v, want INVALID_OPERATION", got)
	}
}

func TestPixelSetterOverride(t *testing.T) {
	var calls int
	setter := func(pixels []byte, index int, c Color) {
		calls++
		// Store channels swapped to prove the override is in effect.
		pixels[index*4+0] = c.B
		pixels[index*4+1] = c.G
		pixels[index*4+2] = c.R
		pixels[index*4+3] = c.A
	}
	buf := make([]byte, 2*2*4)
	ctx, err := ContextCreate(buf, 2, 2, PixelFormatR8G8B8A8, WithPixelSetter(setter))
	if err != nil {
		t.Fatalf("ContextCreate: %v", err)
	}

	ctx.ClearColor(Color{10, 20, 30, 40})
	ctx.Clear(ColorBufferBit)

	if calls != 4 {
		t.Errorf("setter called %d times, want 4", calls)
	}
	if buf[0] != 30 || buf[2] != 10 {
		t.Errorf("override bytes = [%d %d %d %d], want swapped channels", buf[0], buf[1], buf[2], buf[3])
	}
}

func TestPixelGetterOverride(t *testing.T) {
	ctx, _ := newTestContext(t, 2, 2)
	ctx.SetDefaultPixelGetter(func(pixels []byte, index int) Color {
		return Magenta
	})
	if got := ctx.Framebuffer().GetPixel(0, 0); got != Magenta {
		t.Errorf("GetPixel with override = %+v, want magenta", got)
	}
	ctx.SetDefaultPixelGetter(nil)
	if got := ctx.Framebuffer().GetPixel(0, 0); got == Magenta {
		t.Error("GetPixel still using the removed override")
	}
}

func TestFramebufferImageInterface(t *testing.T) {
	ctx, _ := newTestContext(t, 3, 2)
	ctx.ClearColor(Green)
	ctx.Clear(ColorBufferBit)

	var img image.Image = ctx.Framebuffer()
	if got := img.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds = %v, want (0,0)-(3,2)", got)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r != 0 || g == 0 || b != 0 {
		t.Errorf("At(1,1) = (%d,%d,%d), want pure green", r, g, b)
	}
}

func TestMakeCurrentAndDestroy(t *testing.T) {
	ctx, _ := newTestContext(t, 2, 2)
	MakeCurrent(ctx)
	if Current() != ctx {
		t.Fatal("Current() did not return the installed context")
	}
	ContextDestroy(ctx)
	if Current() != nil {
		t.Error("destroying the current context did not clear the slot")
	}
}

func TestContextDestroyNil(t *testing.T) {
	ContextDestroy(nil) // must not panic
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	pixels := make([]byte, 4*4*4)
	ctx, err := ContextCreate(pixels, 4, 4, PixelFormatR8G8B8A8, WithLogger(l))
	if err != nil {
		t.Fatalf("ContextCreate: %v", err)
	}
	if !strings.Contains(buf.String(), "context created") {
		t.Errorf("context logger saw no creation record: %q", buf.String())
	}

	buf.Reset()
	ctx.Enable(DepthTest)
	if !strings.Contains(buf.String(), "depth buffer") {
		t.Errorf("context logger saw no depth allocation record: %q", buf.String())
	}

	buf.Reset()
	ContextDestroy(ctx)
	if !strings.Contains(buf.String(), "context destroyed") {
		t.Errorf("context logger saw no destroy record: %q", buf.String())
	}
}
