package trackball4d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

type Real = float64

// VecN is a point or direction in N-dimensional space.
type VecN []Real

// NewVecN returns a zero vector of dimension n.
func NewVecN(n int) VecN { return make(VecN, n) }

// FromVec4 embeds a 4D vector into N-space, padding the extra axes with zeros.
func FromVec4(v mgl64.Vec4, n int) VecN {
	out := make(VecN, n)
	copy(out, v[:])
	return out
}

// Vec4 returns the first four coordinates.
func (v VecN) Vec4() mgl64.Vec4 {
	var out mgl64.Vec4
	copy(out[:], v)
	return out
}

func (v VecN) Clone() VecN {
	out := make(VecN, len(v))
	copy(out, v)
	return out
}

func (a VecN) Add(b VecN) VecN {
	out := make(VecN, len(a))
	floats.AddTo(out, a, b)
	return out
}

func (a VecN) Sub(b VecN) VecN {
	out := make(VecN, len(a))
	floats.SubTo(out, a, b)
	return out
}

func (v VecN) Mul(s Real) VecN {
	out := v.Clone()
	floats.Scale(s, out)
	return out
}

// Dot returns the dot product between two N-vectors.
func (a VecN) Dot(b VecN) Real { return floats.Dot(a, b) }

// Len returns the Euclidean length of the vector.
func (v VecN) Len() Real { return floats.Norm(v, 2) }

// Dist returns the Euclidean distance between a and b.
func (a VecN) Dist(b VecN) Real { return floats.Distance(a, b, 2) }

// Norm returns a unit-length version of the vector.
// If the vector is (near) zero, it returns the input unchanged.
func (v VecN) Norm() VecN {
	l := v.Len()
	if l < degenerateNorm {
		return v.Clone()
	}
	return v.Mul(1 / l)
}

func (v VecN) isFinite() bool {
	for _, x := range v {
		if !isFinite(x) {
			return false
		}
	}
	return true
}

// unitOf validates v and returns its direction.
func unitOf(v VecN, name string) (VecN, error) {
	if !v.isFinite() {
		return nil, fmt.Errorf("%w: %s has non-finite coordinates %v", ErrDegenerateInput, name, v)
	}
	l := v.Len()
	if l < degenerateNorm {
		return nil, fmt.Errorf("%w: %s has no direction (|%s|=%.3g)", ErrDegenerateInput, name, name, l)
	}
	return v.Mul(1 / l), nil
}

// perpendicular returns a unit vector orthogonal to the unit vector a,
// built from the coordinate axis least aligned with it.
func perpendicular(a VecN) VecN {
	k := 0
	for i := range a {
		if math.Abs(a[i]) < math.Abs(a[k]) {
			k = i
		}
	}
	e := NewVecN(len(a))
	e[k] = 1
	floats.AddScaled(e, -a[k], a)
	return e.Norm()
}

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }
