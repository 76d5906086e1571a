package trackball4d

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// orthonormalizeRows refines r in place until its rows are numerically orthonormal.
//
// One sweep: for every pair of rows (i, j) with t = rowᵢ·rowⱼ, accumulate
// errᵢ += rowⱼ·t/2 and errⱼ += rowᵢ·t/2; subtract err from the rows, sum the
// squared corrections, and renormalize each row. Sweeps repeat until the
// summed correction drops below eps, followed by one settle sweep that takes
// the (quadratically converging) rows down to rounding level.
//
// It returns the number of sweeps run. When maxSweeps is reached first, r holds
// the best approximation found and the error wraps ErrNonConvergent.
func orthonormalizeRows(r *mat.Dense, eps Real, maxSweeps int) (int, error) {
	n, _ := r.Dims()
	errM := mat.NewDense(n, n, nil)
	settling := false
	total := 0.0
	for sweep := 1; sweep <= maxSweeps; sweep++ {
		errM.Zero()
		for i := 0; i < n-1; i++ {
			ri, ei := r.RawRowView(i), errM.RawRowView(i)
			for j := i + 1; j < n; j++ {
				rj := r.RawRowView(j)
				t := floats.Dot(ri, rj) / 2
				floats.AddScaled(ei, t, rj)
				floats.AddScaled(errM.RawRowView(j), t, ri)
			}
		}

		total = 0
		for i := 0; i < n; i++ {
			ri, ei := r.RawRowView(i), errM.RawRowView(i)
			floats.Sub(ri, ei)
			total += floats.Dot(ei, ei)
			l := floats.Norm(ri, 2)
			if l < degenerateNorm || !isFinite(l) {
				return sweep, fmt.Errorf("%w: row %d collapsed during orthonormalization", ErrDegenerateInput, i)
			}
			floats.Scale(1/l, ri)
		}

		if total < eps {
			if settling {
				return sweep, nil
			}
			settling = true
		}
	}
	if settling {
		// the settle sweep was cut by the cap; rows are within eps already
		return maxSweeps, nil
	}
	return maxSweeps, fmt.Errorf("%w: %d sweeps, residual %.3g", ErrNonConvergent, maxSweeps, total)
}
