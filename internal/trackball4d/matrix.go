package trackball4d

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the n×n identity matrix.
func Identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// InitialApproximation returns I + 2·outer(B − A, A), the linear first guess
// for the rotation carrying A to B. It is not orthonormal in general.
func InitialApproximation(a, b VecN) *mat.Dense {
	n := len(a)
	m := Identity(n)
	for r := 0; r < n; r++ {
		row := m.RawRowView(r)
		d := 2 * (b[r] - a[r])
		for c := 0; c < n; c++ {
			row[c] += d * a[c]
		}
	}
	return m
}

// MulVec returns m·v.
func MulVec(m mat.Matrix, v VecN) VecN {
	r, _ := m.Dims()
	out := NewVecN(r)
	mat.NewVecDense(r, out).MulVec(m, mat.NewVecDense(len(v), v))
	return out
}

// mul returns a·b in a fresh matrix.
func mul(a, b mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Mul(a, b)
	return &out
}

// OrthonormalityError returns max |(M·Mᵗ − I)ij|.
func OrthonormalityError(m mat.Matrix) Real {
	n, _ := m.Dims()
	var p mat.Dense
	p.Mul(m, m.T())
	worst := 0.0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			want := 0.0
			if r == c {
				want = 1
			}
			if d := math.Abs(p.At(r, c) - want); d > worst {
				worst = d
			}
		}
	}
	return worst
}

// DistanceFromIdentity returns the Frobenius norm of M − I.
func DistanceFromIdentity(m mat.Matrix) Real {
	n, _ := m.Dims()
	var d mat.Dense
	d.Sub(m, Identity(n))
	return mat.Norm(&d, 2)
}
