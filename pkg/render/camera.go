package render

import (
	"github.com/taigrr/facet/pkg/math3d"
)

// LookDirection returns the camera's forward vector for the given look
// angles (radians): +z rotated by pitch about X, then yaw about Y.
func LookDirection(pitch, yaw float64) math3d.Vec3H {
	rot := math3d.RotateX(pitch).Mul(math3d.RotateY(yaw))
	return math3d.Point(0, 0, 1).Transform(rot)
}

// ViewMatrix returns the world-to-view matrix for a camera at pos with
// the given look angles. View space looks down +z with +y up.
func ViewMatrix(pos math3d.Vec3H, pitch, yaw float64) math3d.Mat4 {
	target := pos.Add(LookDirection(pitch, yaw))
	return math3d.PointAt(pos, target, math3d.Up()).QuickInverse()
}

// ProjectPoint maps a view-space point to screen pixels: projection,
// perspective divide, X/Y flip, offset into [0, 2] and scale to the
// viewport. v must have Z > 0.
func ProjectPoint(proj math3d.Mat4, v math3d.Vec3H, width, height int) math3d.Vec3H {
	p := v.Transform(proj).PerspectiveDivide()
	p.X, p.Y = -p.X, -p.Y
	p = p.Add(math3d.Point(1, 1, 0))
	p.X *= 0.5 * float64(width)
	p.Y *= 0.5 * float64(height)
	return p
}
