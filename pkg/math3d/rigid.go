package math3d

// RigidTransform is an orthonormal rotation followed by a translation.
//
// The zero value is not valid. Values come from PointAt, which guarantees
// orthonormal basis rows, and that guarantee is what makes QuickInverse
// correct. Arbitrary matrices cannot be wrapped.
type RigidTransform struct {
	m Mat4
}

// PointAt builds the camera orientation matrix at pos facing target.
// up is re-orthogonalised against the forward direction.
// Rows are right, up, forward and pos.
func PointAt(pos, target, up Vec3H) RigidTransform {
	fwd := target.Sub(pos).Normalize()
	newUp := up.Sub(fwd.Scale(up.Dot(fwd))).Normalize()
	right := newUp.Cross(fwd)

	return RigidTransform{m: Mat4{
		{right.X, right.Y, right.Z, 0},
		{newUp.X, newUp.Y, newUp.Z, 0},
		{fwd.X, fwd.Y, fwd.Z, 0},
		{pos.X, pos.Y, pos.Z, 1},
	}}
}

// Mat4 returns the underlying matrix.
func (r RigidTransform) Mat4() Mat4 {
	return r.m
}

// QuickInverse returns the inverse by transposing the rotation block and
// negating the rotated translation.
func (r RigidTransform) QuickInverse() Mat4 {
	m := r.m
	var inv Mat4
	for i := range 3 {
		for j := range 3 {
			inv[i][j] = m[j][i]
		}
	}
	for c := range 3 {
		inv[3][c] = -(m[3][0]*inv[0][c] + m[3][1]*inv[1][c] + m[3][2]*inv[2][c])
	}
	inv[3][3] = 1
	return inv
}
