package trackball4d

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// Variant names a polytope shape.
type Variant uint8

const (
	Tesseract       Variant = iota // cell8: 16 vertices, 32 edges
	Hyperoctahedron                // cell16: 8 vertices, 24 edges
)

func (v Variant) String() string {
	switch v {
	case Tesseract:
		return "tesseract"
	case Hyperoctahedron:
		return "hyperoctahedron"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant accepts the variant names and their cell-count aliases.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tesseract", "hypercube", "cell8", "8-cell":
		return Tesseract, nil
	case "hyperoctahedron", "cross-polytope", "cell16", "16-cell":
		return Hyperoctahedron, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// defaultHalf is the half-edge each variant is built with when none is given.
func (v Variant) defaultHalf() Real {
	if v == Hyperoctahedron {
		return HyperoctaHalf
	}
	return TesseractHalf
}

// EdgeColor is a rendering hint carried with an edge; the engine never interprets it.
type EdgeColor uint8

const (
	NoColor EdgeColor = iota
	Green
	Red
	Blue
	Yellow
	Black
	Grey
)

func (c EdgeColor) String() string {
	names := [...]string{"none", "green", "red", "blue", "yellow", "black", "grey"}
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("EdgeColor(%d)", uint8(c))
}

// Edge joins two vertex indices.
type Edge struct {
	A, B  int
	Color EdgeColor
}

// Polytope holds the immutable source vertices, the edges between them and the
// current (rotated) vertices. len(current) == len(source) always.
type Polytope struct {
	variant Variant
	half    Real
	source  []VecN
	current []VecN
	edges   []Edge
}

// NewPolytope builds a variant with the given half-edge (coordinate magnitude).
// half <= 0 selects the variant default.
func NewPolytope(v Variant, half Real) (*Polytope, error) {
	if half <= 0 {
		half = v.defaultHalf()
	}
	if !isFinite(half) {
		return nil, fmt.Errorf("%w: half-edge must be finite", ErrDegenerateInput)
	}
	var (
		verts []VecN
		edges []Edge
	)
	switch v {
	case Tesseract:
		verts, edges = cell8(half)
	case Hyperoctahedron:
		verts, edges = cell16(half)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
	p := &Polytope{
		variant: v,
		half:    half,
		source:  verts,
		current: make([]VecN, len(verts)),
		edges:   edges,
	}
	for i, s := range verts {
		p.current[i] = s.Clone()
	}
	return p, nil
}

func (p *Polytope) Variant() Variant { return p.variant }
func (p *Polytope) Half() Real       { return p.half }
func (p *Polytope) Dim() int         { return Dim }
func (p *Polytope) VertexCount() int { return len(p.source) }

// Vertex returns a copy of the current (rotated) vertex i.
func (p *Polytope) Vertex(i int) VecN { return p.current[i].Clone() }

// Source returns a copy of the reference vertex i.
func (p *Polytope) Source(i int) VecN { return p.source[i].Clone() }

// Current returns copies of all current vertices.
func (p *Polytope) Current() []VecN {
	out := make([]VecN, len(p.current))
	for i, v := range p.current {
		out[i] = v.Clone()
	}
	return out
}

// Edges returns a copy of the edge list.
func (p *Polytope) Edges() []Edge {
	return append([]Edge(nil), p.edges...)
}

// Recompute sets current[i] = orientation·source[i] for every vertex.
// It only reads orientation and depends on nothing but source and orientation,
// so repeated calls with the same matrix give identical results.
func (p *Polytope) Recompute(orientation mat.Matrix) error {
	r, c := orientation.Dims()
	if r != Dim || c != Dim {
		return fmt.Errorf("%w: orientation is %dx%d, polytope is %d-dimensional", ErrDimensionMismatch, r, c, Dim)
	}
	dst := mat.NewVecDense(Dim, nil)
	for i, s := range p.source {
		dst.MulVec(orientation, mat.NewVecDense(Dim, s))
		for k := 0; k < Dim; k++ {
			p.current[i][k] = dst.AtVec(k)
		}
	}
	return nil
}

// Project maps the current vertices to view space.
func (p *Polytope) Project(pr *Projector) ([]mgl64.Vec3, error) {
	return pr.ProjectAll(p.current)
}
