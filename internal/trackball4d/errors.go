package trackball4d

import "errors"

// ErrDegenerateInput is returned when a vector has no usable direction
// (zero length, NaN or Inf) or a projector parameter makes the mapping undefined.
var ErrDegenerateInput = errors.New("degenerate input")

// ErrNonConvergent is returned together with the best matrix found when the
// orthonormalization hits its sweep cap before reaching epsilon.
var ErrNonConvergent = errors.New("orthonormalization did not converge")

// ErrProjectionSingularity is returned when a point sits on the viewpoint
// plane and the perspective divide is undefined.
var ErrProjectionSingularity = errors.New("projection singularity")

// ErrDimensionMismatch is returned when a vector or matrix does not match the solver dimension.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrUnknownVariant is returned for an unrecognized polytope variant name.
var ErrUnknownVariant = errors.New("unknown polytope variant")
