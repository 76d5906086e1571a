package trackball4d

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/lukaszgryglicki/trackball4d/internal/logging"
	"gonum.org/v1/gonum/mat"
)

// Solver keeps the accumulated N×N orientation of one rotatable object and
// computes the incremental rotations composed into it.
// A Solver is not safe for concurrent use; each object owns its own.
type Solver struct {
	n             int
	orientation   *mat.Dense
	epsilon       Real
	maxIterations int
	maxStep       Real // radians
	logger        *slog.Logger
	metrics       *Metrics
}

// Option configures a Solver.
type Option func(*Solver)

// WithEpsilon sets the orthonormalization stop threshold.
func WithEpsilon(eps Real) Option {
	return func(s *Solver) {
		if eps > 0 {
			s.epsilon = eps
		}
	}
}

// WithMaxIterations caps the sweeps of a single orthonormalization.
func WithMaxIterations(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// WithMaxStepDeg sets the widest arc solved in one planar step.
func WithMaxStepDeg(deg Real) Option {
	return func(s *Solver) {
		if deg > 0 && deg < 60 {
			s.maxStep = deg * math.Pi / 180
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records sweeps and rotations into m.
func WithMetrics(m *Metrics) Option {
	return func(s *Solver) { s.metrics = m }
}

// NewSolver returns a solver for dimension n with an identity orientation.
func NewSolver(n int, opts ...Option) (*Solver, error) {
	if n < 2 {
		return nil, fmt.Errorf("solver dimension must be >= 2, got %d", n)
	}
	s := &Solver{
		n:             n,
		orientation:   Identity(n),
		epsilon:       Epsilon,
		maxIterations: MaxIterations,
		maxStep:       MaxStepDeg * math.Pi / 180,
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Solver) Dim() int { return s.n }

// Identity resets the orientation to the identity matrix.
func (s *Solver) Identity() {
	s.orientation = Identity(s.n)
}

// Orientation returns a copy of the accumulated orientation.
func (s *Solver) Orientation() *mat.Dense {
	return mat.DenseCopyOf(s.orientation)
}

// Transform returns orientation·v. It panics when len(v) != Dim().
func (s *Solver) Transform(v VecN) VecN {
	if len(v) != s.n {
		panic(fmt.Sprintf("trackball4d: Transform of %d-vector by %d-dim orientation", len(v), s.n))
	}
	return MulVec(s.orientation, v)
}

// Apply composes r onto the orientation: orientation := r·orientation.
func (s *Solver) Apply(r mat.Matrix) error {
	rr, rc := r.Dims()
	if rr != s.n || rc != s.n {
		return fmt.Errorf("%w: rotation is %dx%d, orientation is %dx%d", ErrDimensionMismatch, rr, rc, s.n, s.n)
	}
	s.orientation = mul(r, s.orientation)
	s.metrics.incRotations()
	return nil
}

// Rotate computes the rotation carrying a to b and applies it.
// On any error the orientation is left untouched.
func (s *Solver) Rotate(a, b VecN) error {
	R, err := s.ComputeIncrementalRotation(a, b)
	if err != nil {
		return err
	}
	return s.Apply(R)
}

// ComputeIncrementalRotation returns the rotation carrying the unit vector a
// to the unit vector b. It acts in the plane spanned by a and b and leaves the
// orthogonal complement fixed.
//
// Callers should pass unit vectors; other non-zero inputs are normalized.
// If any orthonormalization hits the sweep cap, the best matrix is returned
// together with an error wrapping ErrNonConvergent.
func (s *Solver) ComputeIncrementalRotation(a, b VecN) (*mat.Dense, error) {
	if len(a) != s.n || len(b) != s.n {
		return nil, fmt.Errorf("%w: got %d and %d-vectors for a %d-dim solver", ErrDimensionMismatch, len(a), len(b), s.n)
	}
	ua, err := unitOf(a, "A")
	if err != nil {
		return nil, err
	}
	ub, err := unitOf(b, "B")
	if err != nil {
		return nil, err
	}
	if la, lb := a.Len(), b.Len(); math.Abs(la-1) > s.epsilon || math.Abs(lb-1) > s.epsilon {
		s.logger.Debug("normalized non-unit rotation input", "lenA", la, "lenB", lb)
	}

	R, sweeps, err := s.arc(ua, ub)
	if err != nil && !errors.Is(err, ErrNonConvergent) {
		return nil, err
	}
	s.metrics.observeSweeps(sweeps)
	if err != nil {
		s.metrics.incNonConvergent()
		s.logger.Debug("incremental rotation did not converge", "sweeps", sweeps, "err", err)
	}
	return R, err
}

// arc splits wide arcs at their midpoint until each piece fits one planar step.
func (s *Solver) arc(a, b VecN) (*mat.Dense, int, error) {
	if a.Dist(b) < sameTol {
		return Identity(s.n), 0, nil
	}
	c := math.Max(-1, math.Min(1, a.Dot(b)))
	if math.Acos(c) <= s.maxStep {
		return s.planarStep(a, b)
	}

	mid := a.Add(b)
	if mid.Len() < degenerateNorm {
		// antipodal: any half-turn plane through a works, pick a fixed one
		mid = perpendicular(a)
	} else {
		mid = mid.Norm()
	}
	R1, n1, err1 := s.arc(a, mid)
	if err1 != nil && !errors.Is(err1, ErrNonConvergent) {
		return nil, n1, err1
	}
	R2, n2, err2 := s.arc(mid, b)
	if err2 != nil && !errors.Is(err2, ErrNonConvergent) {
		return nil, n1 + n2, err2
	}
	return mul(R2, R1), n1 + n2, errors.Join(err1, err2)
}

// planarStep solves one narrow arc. In a frame where a is the first axis and
// b lies in the plane of the first two, the initial approximation
// I + 2·outer(b − a, a) only touches that plane, so the orthonormalized result
// fixes the complement exactly. Residual rounds then rotate R·a onto b.
func (s *Solver) planarStep(a, b VecN) (*mat.Dense, int, error) {
	F, ok := planeFrame(a, b)
	if !ok {
		return Identity(s.n), 0, nil
	}
	fa := NewVecN(s.n)
	fa[0] = 1
	fb := NewVecN(s.n)
	fb[0], fb[1] = a.Dot(b), VecN(F.RawRowView(1)).Dot(b)
	fb = fb.Norm()

	var failed error
	R := InitialApproximation(fa, fb)
	total, err := orthonormalizeRows(R, s.epsilon, s.maxIterations)
	if err != nil {
		if !errors.Is(err, ErrNonConvergent) {
			return nil, total, err
		}
		failed = err
	}

	residual := 0.0
	for round := 0; ; round++ {
		ra := MulVec(R, fa).Norm()
		if residual = ra.Dist(fb); residual < residualTol || round == maxRefine {
			break
		}
		C := InitialApproximation(ra, fb)
		n, err := orthonormalizeRows(C, s.epsilon, s.maxIterations)
		total += n
		if err != nil {
			if !errors.Is(err, ErrNonConvergent) {
				return nil, total, err
			}
			failed = err
			break
		}
		R = mul(C, R)
	}
	if failed == nil && residual >= s.epsilon {
		failed = fmt.Errorf("%w: residual |R·A-B|=%.3g after %d refinements", ErrNonConvergent, residual, maxRefine)
	}

	// back to world coordinates: Fᵗ·R·F
	return mul(F.T(), mul(R, F)), total, failed
}
