package raster

import (
	"testing"

	"github.com/gogpu/pixelforge/math3"
)

// testSurface records pixel writes for assertions.
type testSurface struct {
	width  int
	height int
	pix    []RGBA
	writes []int // write count per pixel
}

func newTestSurface(w, h int) *testSurface {
	return &testSurface{
		width:  w,
		height: h,
		pix:    make([]RGBA, w*h),
		writes: make([]int, w*h),
	}
}

func (s *testSurface) Size() (int, int) { return s.width, s.height }

func (s *testSurface) Set(x, y int, c RGBA) {
	i := y*s.width + x
	s.pix[i] = c
	s.writes[i] = s.writes[i] + 1
}

func (s *testSurface) totalWrites() int {
	n := 0
	for _, w := range s.writes {
		n += w
	}
	return n
}

func defaultState(w, h int) State {
	return State{
		Viewport: [4]int{0, 0, w, h},
		Width:    w,
		Height:   h,
		FrontCCW: true,
	}
}

func colored(x, y, z, w float32, c RGBA) Vertex {
	return Vertex{
		Pos:   math3.Vec4{X: x, Y: y, Z: z, W: w},
		Color: [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)},
	}
}

// fullQuad covers the entire clip volume.
func fullQuad(c RGBA) []Vertex {
	return []Vertex{
		colored(-1, -1, 0, 1, c),
		colored(1, -1, 0, 1, c),
		colored(1, 1, 0, 1, c),
		colored(-1, 1, 0, 1, c),
	}
}

func TestDrawPolygonFillsViewport(t *testing.T) {
	s := newTestSurface(8, 8)
	st := defaultState(8, 8)
	red := RGBA{255, 0, 0, 255}

	DrawPolygon(s, &st, fullQuad(red))

	for i, c := range s.pix {
		if c != red {
			t.Fatalf("pixel %d = %+v, want %+v", i, c, red)
		}
	}
	if got := s.totalWrites(); got != 64 {
		t.Errorf("total writes = %d, want 64 (no double writes)", got)
	}
}

func TestDrawPolygonOutsideFrustum(t *testing.T) {
	s := newTestSurface(8, 8)
	st := defaultState(8, 8)

	poly := []Vertex{
		colored(2, 0, 0, 1, RGBA{255, 0, 0, 255}),
		colored(3, 0, 0, 1, RGBA{255, 0, 0, 255}),
		colored(2.5, 1, 0, 1, RGBA{255, 0, 0, 255}),
	}
	DrawPolygon(s, &st, poly)

	if got := s.totalWrites(); got != 0 {
		t.Errorf("writes for an off-screen triangle = %d, want 0", got)
	}
}

func TestSharedEdgeNoOverlap(t *testing.T) {
	// Two triangles sharing the diagonal must tile the quad exactly.
	s := newTestSurface(16, 16)
	st := defaultState(16, 16)
	c := RGBA{0, 255, 0, 255}

	DrawPolygon(s, &st, []Vertex{
		colored(-1, -1, 0, 1, c),
		colored(1, -1, 0, 1, c),
		colored(1, 1, 0, 1, c),
	})
	DrawPolygon(s, &st, []Vertex{
		colored(-1, -1, 0, 1, c),
		colored(1, 1, 0, 1, c),
		colored(-1, 1, 0, 1, c),
	})

	for i, n := range s.writes {
		if n != 1 {
			t.Fatalf("pixel %d written %d times, want exactly once", i, n)
		}
	}
}

func TestDepthTest(t *testing.T) {
	s := newTestSurface(4, 4)
	st := defaultState(4, 4)
	st.DepthTest = true
	st.Depth = make([]float32, 16)
	for i := range st.Depth {
		st.Depth[i] = 1
	}

	red := RGBA{255, 0, 0, 255}
	blue := RGBA{0, 0, 255, 255}

	// Near quad first (NDC z=-0.5 -> window z 0.25), then a far one.
	near := fullQuad(red)
	for i := range near {
		near[i].Pos.Z = -0.5
	}
	far := fullQuad(blue)
	for i := range far {
		far[i].Pos.Z = 0.5
	}

	DrawPolygon(s, &st, near)
	DrawPolygon(s, &st, far)

	for i, c := range s.pix {
		if c != red {
			t.Fatalf("pixel %d = %+v, want near quad to win", i, c)
		}
	}
	for i, d := range st.Depth {
		if d < 0.2499 || d > 0.2501 {
			t.Errorf("depth %d = %v, want 0.25", i, d)
		}
	}
}

func TestDepthTestReverseOrder(t *testing.T) {
	s := newTestSurface(4, 4)
	st := defaultState(4, 4)
	st.DepthTest = true
	st.Depth = make([]float32, 16)
	for i := range st.Depth {
		st.Depth[i] = 1
	}

	red := RGBA{255, 0, 0, 255}
	blue := RGBA{0, 0, 255, 255}

	far := fullQuad(blue)
	for i := range far {
		far[i].Pos.Z = 0.5
	}
	near := fullQuad(red)
	for i := range near {
		near[i].Pos.Z = -0.5
	}

	DrawPolygon(s, &st, far)
	DrawPolygon(s, &st, near)

	for i, c := range s.pix {
		if c != red {
			t.Fatalf("pixel %d = %+v, want near quad to win", i, c)
		}
	}
}

func TestCulling(t *testing.T) {
	ccw := []Vertex{
		// Counter-clockwise in window coordinates (y grows downward):
		// top, bottom-left, bottom-right.
		colored(0, 1, 0, 1, RGBA{255, 255, 255, 255}),
		colored(-1, -1, 0, 1, RGBA{255, 255, 255, 255}),
		colored(1, -1, 0, 1, RGBA{255, 255, 255, 255}),
	}
	cw := []Vertex{ccw[0], ccw[2], ccw[1]}

	run := func(cull CullMode, poly []Vertex) int {
		s := newTestSurface(8, 8)
		st := defaultState(8, 8)
		st.Cull = cull
		DrawPolygon(s, &st, poly)
		return s.totalWrites()
	}

	if got := run(CullBack, cw); got != 0 {
		t.Errorf("back-culled CW triangle wrote %d pixels, want 0", got)
	}
	if got := run(CullBack, ccw); got == 0 {
		t.Error("back-culled CCW triangle wrote no pixels")
	}
	if got := run(CullFront, ccw); got != 0 {
		t.Errorf("front-culled CCW triangle wrote %d pixels, want 0", got)
	}
	if got := run(CullFront, cw); got == 0 {
		t.Error("front-culled CW triangle wrote no pixels")
	}
	if got := run(CullFrontAndBack, ccw); got != 0 {
		t.Errorf("front-and-back cull wrote %d pixels, want 0", got)
	}
}

// Perspective-correct interpolation: on a quad with a strong depth
// gradient, the u coordinate at the screen midpoint must come from the
// hyperbolic (divided) interpolation, not the linear screen-space one.
func TestPerspectiveCorrectInterpolation(t *testing.T) {
	s := newTestSurface(64, 1)
	st := defaultState(64, 1)
	// The sampler encodes the requested u into the red channel, so the
	// surface ends up holding the per-pixel texture coordinate.
	st.Tex = uSampler{}

	// Left edge at w=1, right edge at w=4: clip coordinates are
	// pre-multiplied by w so the polygon is planar in eye space.
	poly := []Vertex{
		{Pos: math3.Vec4{X: -1, Y: -1, Z: 0, W: 1}, Color: white4(), U: 0},
		{Pos: math3.Vec4{X: 4, Y: -4, Z: 0, W: 4}, Color: white4(), U: 1},
		{Pos: math3.Vec4{X: 4, Y: 4, Z: 0, W: 4}, Color: white4(), U: 1},
		{Pos: math3.Vec4{X: -1, Y: 1, Z: 0, W: 1}, Color: white4(), U: 0},
	}
	DrawPolygon(s, &st, poly)

	if got := s.totalWrites(); got != 64 {
		t.Fatalf("wrote %d pixels, want 64", got)
	}

	// At the screen midpoint the perspective-correct u is
	// (0/1 + 1/4*1)/2 / ((1/1 + 1/4)/2) = 0.2, far from the linear 0.5.
	mid := float32(s.pix[32].R) / 255
	if mid < 0.17 || mid > 0.24 {
		t.Errorf("u at midpoint = %v, want about 0.2", mid)
	}
	// Ground truth per-pixel: u(t) = (t/4) / (1 - 3t/4) for t in [0,1).
	for x := 0; x < 64; x++ {
		tt := (float32(x) + 0.5) / 64
		want := (tt / 4) / (1 - 3*tt/4)
		got := float32(s.pix[x].R) / 255
		if diff := got - want; diff < -0.02 || diff > 0.02 {
			t.Fatalf("u at pixel %d = %v, want %v", x, got, want)
		}
	}
}

func white4() [4]float32 {
	return [4]float32{255, 255, 255, 255}
}

// uSampler encodes u into the red channel of an otherwise white texel.
type uSampler struct{}

func (uSampler) Sample(u, v float32) RGBA {
	return RGBA{R: uint8(math3.Clamp(u, 0, 1)*255 + 0.5), G: 255, B: 255, A: 255}
}

func TestModulate(t *testing.T) {
	a := RGBA{255, 128, 0, 255}
	b := RGBA{255, 255, 128, 255}
	got := Modulate(a, b)
	want := RGBA{255, 128, 0, 255}
	if got != want {
		t.Errorf("Modulate = %+v, want %+v", got, want)
	}

	// Rounds toward zero: 128*128/255 = 64.25 -> 64.
	got = Modulate(RGBA{128, 0, 0, 255}, RGBA{128, 255, 255, 255})
	if got.R != 64 {
		t.Errorf("Modulate R = %d, want 64", got.R)
	}
}

func TestDrawLine(t *testing.T) {
	s := newTestSurface(8, 8)
	st := defaultState(8, 8)
	c := RGBA{255, 255, 0, 255}

	// A horizontal line across the middle.
	DrawLine(s, &st, colored(-1, 0, 0, 1, c), colored(1, 0, 0, 1, c))

	row := -1
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if s.writes[y*8+x] > 0 {
				if row == -1 {
					row = y
				} else if row != y {
					t.Fatalf("horizontal line touched rows %d and %d", row, y)
				}
			}
		}
	}
	if row == -1 {
		t.Fatal("line drew no pixels")
	}
	n := 0
	for x := 0; x < 8; x++ {
		if s.writes[row*8+x] > 0 {
			n++
		}
	}
	if n < 7 {
		t.Errorf("line covered %d pixels of its row, want at least 7", n)
	}
}

func TestDrawLineClipped(t *testing.T) {
	s := newTestSurface(8, 8)
	st := defaultState(8, 8)
	c := RGBA{255, 255, 0, 255}

	DrawLine(s, &st, colored(2, 2, 0, 1, c), colored(3, 2, 0, 1, c))
	if got := s.totalWrites(); got != 0 {
		t.Errorf("off-screen line wrote %d pixels, want 0", got)
	}
}

func TestDrawPoint(t *testing.T) {
	s := newTestSurface(8, 8)
	st := defaultState(8, 8)
	c := RGBA{0, 255, 255, 255}

	DrawPoint(s, &st, colored(0, 0, 0, 1, c))
	if got := s.totalWrites(); got != 1 {
		t.Fatalf("point wrote %d pixels, want 1", got)
	}
	if s.pix[4*8+4] != c {
		t.Errorf("point missed the viewport center")
	}

	DrawPoint(s, &st, colored(0, 0, 3, 1, c))
	if got := s.totalWrites(); got != 1 {
		t.Errorf("out-of-frustum point wrote a pixel")
	}
}

func TestViewportScissor(t *testing.T) {
	s := newTestSurface(8, 8)
	st := defaultState(8, 8)
	st.Viewport = [4]int{2, 2, 4, 4}

	DrawPolygon(s, &st, fullQuad(RGBA{255, 0, 0, 255}))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 6 && y >= 2 && y < 6
			wrote := s.writes[y*8+x] > 0
			if wrote != inside {
				t.Errorf("pixel (%d,%d) wrote=%v, inside viewport=%v", x, y, wrote, inside)
			}
		}
	}
}
