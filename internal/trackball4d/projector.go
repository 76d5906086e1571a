package trackball4d

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ViewMode selects how N-dimensional points are flattened to view space.
type ViewMode uint8

const (
	Perspective  ViewMode = iota // divide by the distance to the viewpoint along the last axis
	Orthographic                 // drop everything past the first three coordinates
)

func (m ViewMode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	}
	return fmt.Sprintf("ViewMode(%d)", uint8(m))
}

// ParseViewMode accepts "perspective" (or "") and "orthographic".
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "perspective":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	}
	return 0, fmt.Errorf("unknown view mode %q", s)
}

// Projector converts between pointer space, the unit 3-sphere in 4-space and view space.
type Projector struct {
	Scale     Real // interaction-area units -> unit sphere units
	Radius    Real // unprojection radius, in scaled units
	Viewpoint Real // camera offset along the last axis
	Mode      ViewMode
}

// NewProjector returns a perspective projector with the default constants.
func NewProjector() *Projector {
	return &Projector{
		Scale:     InteractionScale,
		Radius:    UnprojectRadius,
		Viewpoint: Viewpoint,
		Mode:      Perspective,
	}
}

// Validate checks the projector parameters.
func (p *Projector) Validate() error {
	if !(p.Scale > 0) || !isFinite(p.Scale) {
		return fmt.Errorf("%w: interaction scale must be > 0, got %g", ErrDegenerateInput, p.Scale)
	}
	if !(p.Radius > 0) || !isFinite(p.Radius) {
		return fmt.Errorf("%w: unprojection radius must be > 0, got %g", ErrDegenerateInput, p.Radius)
	}
	if !isFinite(p.Viewpoint) {
		return fmt.Errorf("%w: viewpoint must be finite, got %g", ErrDegenerateInput, p.Viewpoint)
	}
	return nil
}

// MapPointerToHypersphere lifts a 3D pointer sample onto the unit 3-sphere.
//
// rel = (pointer − origin)·Scale/Radius. Inside the ball (|rel| < 1) the sample
// keeps its offset and gains w = sqrt(1 − |rel|²); outside it is clamped to
// the equator rel/|rel| with w = 0. The result always has unit length, and the
// two branches meet continuously at |rel| = 1.
func (p *Projector) MapPointerToHypersphere(pointer, origin mgl64.Vec3) (mgl64.Vec4, error) {
	if err := p.Validate(); err != nil {
		return mgl64.Vec4{}, err
	}
	for _, x := range []Real{pointer[0], pointer[1], pointer[2], origin[0], origin[1], origin[2]} {
		if !isFinite(x) {
			return mgl64.Vec4{}, fmt.Errorf("%w: pointer %v / origin %v not finite", ErrDegenerateInput, pointer, origin)
		}
	}
	rel := pointer.Sub(origin).Mul(p.Scale / p.Radius)
	r2 := rel.Dot(rel)
	if r2 < 1 {
		return rel.Vec4(math.Sqrt(1 - r2)), nil
	}
	r := math.Sqrt(r2)
	if !isFinite(r) || r == 0 {
		return mgl64.Vec4{}, fmt.Errorf("%w: pointer offset %v has no direction", ErrDegenerateInput, rel)
	}
	return rel.Mul(1 / r).Vec4(0), nil
}

// ProjectToView maps an N-dimensional point (N >= 4) to view space.
//
// Perspective: factor = Viewpoint / |point[N-1] − Viewpoint| scales the first
// three coordinates. A point on the viewpoint plane fails with ErrProjectionSingularity.
func (p *Projector) ProjectToView(point VecN) (mgl64.Vec3, error) {
	n := len(point)
	if n < 4 {
		return mgl64.Vec3{}, fmt.Errorf("%w: view projection needs at least 4 coordinates, got %d", ErrDimensionMismatch, n)
	}
	xyz := mgl64.Vec3{point[0], point[1], point[2]}
	if p.Mode == Orthographic {
		return xyz, nil
	}
	d := math.Abs(point[n-1] - p.Viewpoint)
	if d < singularityEps {
		return mgl64.Vec3{}, fmt.Errorf("%w: coordinate %d = %g sits on viewpoint %g", ErrProjectionSingularity, n-1, point[n-1], p.Viewpoint)
	}
	return xyz.Mul(p.Viewpoint / d), nil
}

// ProjectAll projects every point, stopping at the first failure.
func (p *Projector) ProjectAll(points []VecN) ([]mgl64.Vec3, error) {
	out := make([]mgl64.Vec3, len(points))
	for i, pt := range points {
		v, err := p.ProjectToView(pt)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
