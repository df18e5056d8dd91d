package models

import "github.com/taigrr/facet/pkg/math3d"

// NewCube returns the unit cube spanning (0,0,0)-(1,1,1) as 12 triangles.
//
// Faces are emitted south, east, north, west, top, bottom, two triangles
// each, wound so that (p1-p0) × (p2-p0) points out of the cube.
func NewCube() *Mesh {
	p := math3d.Point
	mesh := NewMesh("cube")
	add := func(a, b, c math3d.Vec3H) {
		mesh.Triangles = append(mesh.Triangles, Tri(a, b, c))
	}

	// South
	add(p(0, 0, 0), p(0, 1, 0), p(1, 1, 0))
	add(p(0, 0, 0), p(1, 1, 0), p(1, 0, 0))
	// East
	add(p(1, 0, 0), p(1, 1, 0), p(1, 1, 1))
	add(p(1, 0, 0), p(1, 1, 1), p(1, 0, 1))
	// North
	add(p(1, 0, 1), p(1, 1, 1), p(0, 1, 1))
	add(p(1, 0, 1), p(0, 1, 1), p(0, 0, 1))
	// West
	add(p(0, 0, 1), p(0, 1, 1), p(0, 1, 0))
	add(p(0, 0, 1), p(0, 1, 0), p(0, 0, 0))
	// Top
	add(p(0, 1, 0), p(0, 1, 1), p(1, 1, 1))
	add(p(0, 1, 0), p(1, 1, 1), p(1, 1, 0))
	// Bottom
	add(p(1, 0, 1), p(0, 0, 1), p(0, 0, 0))
	add(p(1, 0, 1), p(0, 0, 0), p(1, 0, 0))

	mesh.CalculateBounds()
	return mesh
}
