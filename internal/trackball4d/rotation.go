package trackball4d

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Angles in radians for rotations in coordinate planes.
type Rot4 struct {
	XY, XZ, XW, YZ, YW, ZW Real
}

// PlaneRotation returns the n×n rotation by angle a in the (i, j) coordinate
// plane, carrying axis i towards axis j.
func PlaneRotation(n, i, j int, a Real) *mat.Dense {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity(n)
	M.Set(i, i, c)
	M.Set(i, j, -s)
	M.Set(j, i, s)
	M.Set(j, j, c)
	return M
}

// RotFromAngles composes the six plane rotations of r (ZW first, XY last).
func RotFromAngles(r Rot4) *mat.Dense {
	R := Identity(Dim)
	for _, p := range []struct {
		i, j int
		a    Real
	}{
		{2, 3, r.ZW},
		{1, 3, r.YW},
		{1, 2, r.YZ},
		{0, 3, r.XW},
		{0, 2, r.XZ},
		{0, 1, r.XY},
	} {
		if p.a == 0 {
			continue
		}
		R = mul(PlaneRotation(Dim, p.i, p.j, p.a), R)
	}
	return R
}

// IsZero reports whether no plane carries a rotation.
func (r Rot4) IsZero() bool { return r == Rot4{} }
