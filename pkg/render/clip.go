package render

import (
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

// Plane is a clip plane given by a point on it and a unit normal.
// Points with non-negative signed distance are inside.
type Plane struct {
	Point  math3d.Vec3H
	Normal math3d.Vec3H
}

// NewPlane creates a plane through point with the given normal.
// The normal does not need to be unit length.
func NewPlane(point, normal math3d.Vec3H) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// SignedDistance returns the signed distance from the plane to p.
// Positive = inside (same side as the normal), negative = outside.
func (pl Plane) SignedDistance(p math3d.Vec3H) float64 {
	return pl.Normal.Dot(p) - pl.Normal.Dot(pl.Point)
}

// Intersect returns the point where the segment start→end crosses the plane.
// start and end must lie on opposite sides.
func (pl Plane) Intersect(start, end math3d.Vec3H) math3d.Vec3H {
	pd := -pl.Normal.Dot(pl.Point)
	ad := start.Dot(pl.Normal)
	bd := end.Dot(pl.Normal)
	t := (-pd - ad) / (bd - ad)
	return start.Lerp(end, t)
}

// ClipTriangle clips tri against pl and returns the n (0, 1 or 2) triangles
// that cover the inside part. Output triangles keep the input colour.
//
// With two vertices inside the remaining quad is split along the diagonal
// from the second inside vertex to the first intersection point, and that
// point is shared by both halves so the seam has no crack.
func ClipTriangle(pl Plane, tri models.Triangle) (out [2]models.Triangle, n int) {
	var inside, outside [3]math3d.Vec3H
	nIn, nOut := 0, 0

	for _, p := range tri.P {
		if pl.SignedDistance(p) >= 0 {
			inside[nIn] = p
			nIn++
		} else {
			outside[nOut] = p
			nOut++
		}
	}

	switch nIn {
	case 0:
		return out, 0

	case 3:
		out[0] = tri
		return out, 1

	case 1:
		out[0] = models.Triangle{
			P: [3]math3d.Vec3H{
				inside[0],
				pl.Intersect(inside[0], outside[0]),
				pl.Intersect(inside[0], outside[1]),
			},
			Color: tri.Color,
		}
		return out, 1

	default: // 2 inside
		shared := pl.Intersect(inside[0], outside[0])
		out[0] = models.Triangle{
			P:     [3]math3d.Vec3H{inside[0], inside[1], shared},
			Color: tri.Color,
		}
		out[1] = models.Triangle{
			P:     [3]math3d.Vec3H{inside[1], shared, pl.Intersect(inside[1], outside[0])},
			Color: tri.Color,
		}
		return out, 2
	}
}
