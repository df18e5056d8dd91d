package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func vecNear(a, b Vec3H, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol && math.Abs(a.W-b.W) <= tol
}

func TestVec3HArithmetic(t *testing.T) {
	a := Point(1, 2, 3)
	b := Point(4, -5, 6)

	assert.Equal(t, Point(5, -3, 9), a.Add(b))
	assert.Equal(t, Point(-3, 7, -3), a.Sub(b))
	assert.Equal(t, Point(2, 4, 6), a.Scale(2))
	assert.Equal(t, Point(0.5, 1, 1.5), a.Div(2))
	assert.InDelta(t, 4-10+18, a.Dot(b), eps)
	assert.Equal(t, Point(0, 0, 1), Point(1, 0, 0).Cross(Point(0, 1, 0)))
	assert.Equal(t, Point(-1, -2, -3), a.Negate())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3H
	}{
		{"axis", Point(0, 0, 7)},
		{"diagonal", Point(1, 1, 1)},
		{"negative", Point(-3, 4, -12)},
		{"tiny", Point(1e-6, 2e-6, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalize()
			if math.Abs(n.Len()-1) > 1e-9 {
				t.Errorf("Normalize(%v).Len() = %v, want 1", tc.v, n.Len())
			}
			if n.Dot(tc.v) <= 0 {
				t.Errorf("Normalize(%v) = %v flips direction", tc.v, n)
			}
		})
	}

	t.Run("zero vector unchanged", func(t *testing.T) {
		z := Vec3H{}
		assert.Equal(t, z, z.Normalize())
		p := Zero()
		assert.Equal(t, p, p.Normalize())
	})
}

func TestMatrixCompositionOrder(t *testing.T) {
	p := Point(1, 0, 0)

	// Rotate first, then translate
	rt := RotateZ(math.Pi / 2).Mul(Translate(0, 0, 5))
	got := p.Transform(rt)
	if !vecNear(got, Point(0, 1, 5), eps) {
		t.Errorf("rotate then translate = %v, want (0, 1, 5)", got)
	}

	// Translate first, then rotate
	tr := Translate(0, 0, 5).Mul(RotateZ(math.Pi / 2))
	got = p.Transform(tr)
	if !vecNear(got, Point(0, 1, 5), eps) {
		t.Errorf("translate then rotate about Z = %v, want (0, 1, 5)", got)
	}

	tr = Translate(1, 0, 0).Mul(RotateZ(math.Pi / 2))
	got = p.Transform(tr)
	if !vecNear(got, Point(0, 2, 0), eps) {
		t.Errorf("translate x then rotate = %v, want (0, 2, 0)", got)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3H
		want Vec3H
	}{
		{"X quarter turn", RotateX(math.Pi / 2), Point(0, 1, 0), Point(0, 0, 1)},
		{"Y quarter turn", RotateY(math.Pi / 2), Point(0, 0, 1), Point(-1, 0, 0)},
		{"Z quarter turn", RotateZ(math.Pi / 2), Point(1, 0, 0), Point(0, 1, 0)},
		{"zero angle", RotateX(0).Mul(RotateY(0)).Mul(RotateZ(0)), Point(1, 2, 3), Point(1, 2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.MulVec(tc.in)
			if !vecNear(got, tc.want, eps) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIdentityMul(t *testing.T) {
	m := RotateX(0.4).Mul(RotateZ(1.1)).Mul(Translate(3, -2, 7))
	assert.True(t, Identity().Mul(m).ApproxEqual(m, eps))
	assert.True(t, m.Mul(Identity()).ApproxEqual(m, eps))
	assert.True(t, m.Transpose().Transpose().ApproxEqual(m, 0))
}

func TestProjection(t *testing.T) {
	proj := Projection(90, 1, 0.1, 1000)
	v := Point(1, 2, 5).Transform(proj)

	assert.InDelta(t, 1.0, v.X, 1e-9)
	assert.InDelta(t, 2.0, v.Y, 1e-9)
	assert.InDelta(t, 5.0, v.W, 1e-9, "projected W carries view-space Z")

	// Depth maps near to 0 and far to 1 after the divide
	nearZ := Point(0, 0, 0.1).Transform(proj).PerspectiveDivide().Z
	farZ := Point(0, 0, 1000).Transform(proj).PerspectiveDivide().Z
	assert.InDelta(t, 0.0, nearZ, 1e-9)
	assert.InDelta(t, 1.0, farZ, 1e-9)

	// Aspect scales X only
	squeezed := Point(1, 1, 1).Transform(Projection(90, 0.5, 0.1, 1000))
	assert.InDelta(t, 0.5, squeezed.X, 1e-9)
	assert.InDelta(t, 1.0, squeezed.Y, 1e-9)
}

func TestPointAtQuickInverse(t *testing.T) {
	tests := []struct {
		name        string
		pos, target Vec3H
	}{
		{"origin looking +z", Zero(), Point(0, 0, 1)},
		{"offset looking at origin", Point(3, 4, -5), Zero()},
		{"tilted", Point(-1, 2, 0.5), Point(2, -3, 4)},
		{"up not perpendicular", Point(0, 0, 0), Point(0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pa := PointAt(tc.pos, tc.target, Up())
			inv := pa.QuickInverse()

			if !inv.Mul(pa.Mat4()).ApproxEqual(Identity(), 1e-9) {
				t.Errorf("QuickInverse * PointAt != identity:\n%v", inv.Mul(pa.Mat4()))
			}
			if !pa.Mat4().Mul(inv).ApproxEqual(Identity(), 1e-9) {
				t.Errorf("PointAt * QuickInverse != identity:\n%v", pa.Mat4().Mul(inv))
			}

			// The camera position maps to the view-space origin
			origin := tc.pos.Transform(inv)
			if !vecNear(origin, Zero(), 1e-9) {
				t.Errorf("camera position in view space = %v, want origin", origin)
			}

			// The target lies straight ahead on +z
			ahead := tc.target.Transform(inv)
			assert.InDelta(t, 0, ahead.X, 1e-9)
			assert.InDelta(t, 0, ahead.Y, 1e-9)
			assert.Greater(t, ahead.Z, 0.0)
		})
	}
}

func TestPerspectiveDivide(t *testing.T) {
	v := Vec3H{X: 2, Y: 4, Z: 6, W: 2}
	assert.Equal(t, Point(1, 2, 3), v.PerspectiveDivide())
}

func TestLerp(t *testing.T) {
	a := Point(0, 0, 0)
	b := Point(10, -10, 4)
	assert.Equal(t, Point(5, -5, 2), a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}
