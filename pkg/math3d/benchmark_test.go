package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(1, 2, 3)
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec(b *testing.B) {
	m := RotateY(0.5).Mul(Translate(1, 2, 3))
	v := Point(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec(v)
	}
}

func BenchmarkQuickInverse(b *testing.B) {
	r := PointAt(Point(1, 2, 3), Point(4, 5, 6), Up())

	for b.Loop() {
		_ = r.QuickInverse()
	}
}

func BenchmarkVec3HNormalize(b *testing.B) {
	v := Point(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3HCross(b *testing.B) {
	v1 := Point(1, 2, 3)
	v2 := Point(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkProjection(b *testing.B) {
	for b.Loop() {
		_ = Projection(90, 0.75, 0.1, 1000)
	}
}

func BenchmarkWorldViewProjection(b *testing.B) {
	// Compose the per-frame matrices the pipeline builds
	view := PointAt(Zero(), Point(0, 0, 1), Up()).QuickInverse()
	proj := Projection(90, 0.75, 0.1, 1000)

	for b.Loop() {
		world := RotateZ(0.3).Mul(RotateX(0.6)).Mul(Translate(0, 0, 5))
		_ = world.Mul(view).Mul(proj)
	}
}
