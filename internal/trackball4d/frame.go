package trackball4d

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// planeFrame returns an orthonormal n×n matrix whose first row is a, whose
// second row is the unit component of b orthogonal to a, and whose remaining
// rows span the orthogonal complement. ok is false when a and b are parallel.
func planeFrame(a, b VecN) (F *mat.Dense, ok bool) {
	n := len(a)
	w := b.Clone()
	floats.AddScaled(w, -a.Dot(b), a)
	if w.Len() < sameTol {
		return nil, false
	}
	// second pass: for close a, b the first subtraction cancels and w keeps
	// a visible component along a
	rows := []VecN{a.Clone()}
	rows = append(rows, orthogonalize(w.Norm(), rows).Norm())

	used := make([]bool, n)
	for len(rows) < n {
		// pick the coordinate axis with the largest residual; the residual
		// norms squared sum to n-len(rows), so the best one is never tiny
		best, bestLen := -1, 0.0
		var bestVec VecN
		for k := 0; k < n; k++ {
			if used[k] {
				continue
			}
			e := NewVecN(n)
			e[k] = 1
			e = orthogonalize(e, rows)
			if l := e.Len(); l > bestLen {
				best, bestLen, bestVec = k, l, e
			}
		}
		used[best] = true
		rows = append(rows, orthogonalize(bestVec.Norm(), rows).Norm())
	}

	F = mat.NewDense(n, n, nil)
	for i, r := range rows {
		F.SetRow(i, r)
	}
	return F, true
}

// orthogonalize removes from v its components along the unit rows.
func orthogonalize(v VecN, rows []VecN) VecN {
	out := v.Clone()
	for _, r := range rows {
		floats.AddScaled(out, -out.Dot(r), r)
	}
	return out
}
