package math3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1e-5

func TestVecOps(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	assert.Equal(t, Vec3{5, 7, 9}, Add(a, b))
	assert.Equal(t, Vec3{-3, -3, -3}, Sub(a, b))
	assert.Equal(t, Vec3{2, 4, 6}, Scale(2, a))
	assert.Equal(t, float32(32), Dot(a, b))
	assert.Equal(t, Vec3{-3, 6, -3}, Cross(a, b))
	assert.Equal(t, Vec3{-1, -2, -3}, Neg(a))

	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := Vec3{Z: 1}
	assert.Equal(t, z, Cross(x, y))
	assert.Equal(t, x, Cross(y, z))
}

func TestUnit(t *testing.T) {
	v := Unit(Vec3{3, 0, 4})
	assert.InDelta(t, 0.6, v.X, standardTol)
	assert.InDelta(t, 0.8, v.Z, standardTol)
	assert.InDelta(t, 1.0, Norm(v), standardTol)

	// The zero vector stays zero instead of producing NaN.
	assert.Equal(t, Vec3{}, Unit(Vec3{}))
}

func TestReflect(t *testing.T) {
	// A vector heading down into a floor reflects up.
	i := Vec3{1, -1, 0}
	n := Vec3{0, 1, 0}
	r := Reflect(i, n)
	assert.InDelta(t, 1, r.X, standardTol)
	assert.InDelta(t, 1, r.Y, standardTol)
}

func TestLerp4(t *testing.T) {
	a := Vec4{0, 0, 0, 1}
	b := Vec4{2, 4, 6, 3}
	mid := Lerp4(a, b, 0.5)
	assert.Equal(t, Vec4{1, 2, 3, 2}, mid)
	assert.Equal(t, a, Lerp4(a, b, 0))
	assert.Equal(t, b, Lerp4(a, b, 1))
}

func TestMat4Identity(t *testing.T) {
	id := Identity()
	v := Vec4{1, 2, 3, 1}
	assert.Equal(t, v, id.MulVec4(v))
	assert.True(t, EqualMat4(id, Mul(id, id), 0))
}

func TestMat4TranslateRotate(t *testing.T) {
	tr := Translate(Vec3{3, 5, 7})
	p := tr.MulPosition(Vec3{1, 1, 1})
	assert.Equal(t, Vec3{4, 6, 8}, p)

	// 90 degrees about Z sends +X to +Y.
	rot := Rotation(DegToRad(90), Vec3{Z: 1})
	q := rot.MulPosition(Vec3{X: 1})
	assert.InDelta(t, 0, q.X, standardTol)
	assert.InDelta(t, 1, q.Y, standardTol)

	// Directions ignore translation.
	d := tr.MulDirection(Vec3{X: 1})
	assert.Equal(t, Vec3{X: 1}, d)
}

func TestMat4MulOrder(t *testing.T) {
	// Translate-then-scale differs from scale-then-translate.
	tr := Translate(Vec3{1, 0, 0})
	sc := Scaling(Vec3{2, 2, 2})

	ts := Mul(tr, sc).MulPosition(Vec3{1, 0, 0})
	st := Mul(sc, tr).MulPosition(Vec3{1, 0, 0})
	assert.Equal(t, Vec3{3, 0, 0}, ts)
	assert.Equal(t, Vec3{4, 0, 0}, st)
}

func TestMat4Inverse(t *testing.T) {
	m := Mul(Translate(Vec3{3, 5, 7}), Rotation(DegToRad(33), Vec3{1, 1, 0}))
	inv := m.Inverse()
	assert.True(t, EqualMat4(Identity(), Mul(m, inv), 1e-5))

	// A singular matrix inverts to the identity.
	singular := Scaling(Vec3{0, 1, 1})
	assert.True(t, EqualMat4(Identity(), singular.Inverse(), 0))
}

func TestMat4Transpose(t *testing.T) {
	m := NewMat4([]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	tt := m.Transpose().Transpose()
	assert.True(t, EqualMat4(m, tt, 0))
	arr := m.Transpose().Array()
	assert.Equal(t, float32(5), arr[1])
	assert.Equal(t, float32(2), arr[4])
}

func TestOrtho(t *testing.T) {
	// The 2D convention: left/top at the origin.
	m := Ortho(0, 100, 100, 0, 0, 1)

	topLeft := m.MulVec4(Vec4{0, 0, 0, 1})
	assert.InDelta(t, -1, topLeft.X, standardTol)
	assert.InDelta(t, 1, topLeft.Y, standardTol)

	bottomRight := m.MulVec4(Vec4{100, 100, 0, 1})
	assert.InDelta(t, 1, bottomRight.X, standardTol)
	assert.InDelta(t, -1, bottomRight.Y, standardTol)

	center := m.MulVec4(Vec4{50, 50, 0, 1})
	assert.InDelta(t, 0, center.X, standardTol)
	assert.InDelta(t, 0, center.Y, standardTol)
	assert.InDelta(t, 1, center.W, standardTol)
}

func TestFrustum(t *testing.T) {
	m := Frustum(-1, 1, -1, 1, 1, 10)

	// A point on the near plane center maps to NDC z = -1, w = 1.
	near := m.MulVec4(Vec4{0, 0, -1, 1})
	assert.InDelta(t, 1, near.W, standardTol)
	assert.InDelta(t, -1, near.Z/near.W, standardTol)

	far := m.MulVec4(Vec4{0, 0, -10, 1})
	assert.InDelta(t, 10, far.W, standardTol)
	assert.InDelta(t, 1, far.Z/far.W, standardTol)
}

func TestLookAt(t *testing.T) {
	// A camera at +Z looking at the origin keeps +X to the right and
	// pushes the origin 10 units down the view axis.
	view := LookAt(Vec3{0, 0, 10}, Vec3{}, Vec3{Y: 1})
	p := view.MulPosition(Vec3{})
	assert.InDelta(t, 0, p.X, standardTol)
	assert.InDelta(t, 0, p.Y, standardTol)
	assert.InDelta(t, -10, p.Z, standardTol)

	r := view.MulDirection(Vec3{X: 1})
	assert.InDelta(t, 1, r.X, standardTol)
}

func TestClampDegRad(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-1, 0, 1))
	assert.Equal(t, float32(1), Clamp(2, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
	assert.InDelta(t, 3.14159265, DegToRad(180), standardTol)
	assert.InDelta(t, 180, RadToDeg(DegToRad(180)), 1e-3)
}
