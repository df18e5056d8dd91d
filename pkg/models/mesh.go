// Package models provides the triangle mesh representation and mesh sources for facet.
package models

import (
	"image/color"
	"math"

	"github.com/taigrr/facet/pkg/math3d"
)

// Triangle is three vertices with a single flat face colour.
// Triangles are values; transforms and clipping produce new ones.
type Triangle struct {
	P     [3]math3d.Vec3H
	Color color.RGBA
}

// Tri creates a triangle from three points with an opaque white colour.
func Tri(a, b, c math3d.Vec3H) Triangle {
	return Triangle{
		P:     [3]math3d.Vec3H{a, b, c},
		Color: color.RGBA{255, 255, 255, 255},
	}
}

// Transform returns the triangle with every vertex multiplied by m.
func (t Triangle) Transform(m math3d.Mat4) Triangle {
	return Triangle{
		P: [3]math3d.Vec3H{
			m.MulVec(t.P[0]),
			m.MulVec(t.P[1]),
			m.MulVec(t.P[2]),
		},
		Color: t.Color,
	}
}

// Normal returns the unit face normal (p1-p0) × (p2-p0).
// Winding decides the sign; degenerate triangles give a zero vector.
func (t Triangle) Normal() math3d.Vec3H {
	return t.P[1].Sub(t.P[0]).Cross(t.P[2].Sub(t.P[0])).Normalize()
}

// Mesh is an ordered list of triangles. Order is draw order.
type Mesh struct {
	Name      string
	Triangles []Triangle

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3H
	BoundsMax math3d.Vec3H
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: make([]Triangle, 0),
		BoundsMin: math3d.Zero(),
		BoundsMax: math3d.Zero(),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Triangles) == 0 {
		return
	}

	m.BoundsMin = m.Triangles[0].P[0]
	m.BoundsMax = m.Triangles[0].P[0]

	for _, t := range m.Triangles {
		for _, p := range t.P {
			m.BoundsMin = m.BoundsMin.Min(p)
			m.BoundsMax = m.BoundsMax.Max(p)
		}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3H {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3H {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Triangles {
		m.Triangles[i] = m.Triangles[i].Transform(mat)
	}
	m.CalculateBounds()
}

// Fit centres the mesh on (0.5, 0.5, 0.5) and scales it so its largest
// dimension equals size. This places loaded models where the unit cube sits.
func (m *Mesh) Fit(size float64) {
	m.CalculateBounds()
	dims := m.Size()
	maxDim := math.Max(dims.X, math.Max(dims.Y, dims.Z))
	if maxDim == 0 {
		return
	}

	c := m.Center()
	s := size / maxDim
	m.Transform(math3d.Translate(-c.X, -c.Y, -c.Z).
		Mul(math3d.Scale(s, s, s)).
		Mul(math3d.Translate(0.5, 0.5, 0.5)))
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Triangles: make([]Triangle, len(m.Triangles)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Triangles, m.Triangles)
	return clone
}
