package trackball4d

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotatable is one grabbable polytope: its own solver, vertex arrays, drag
// state and projector. Rotatables share nothing with each other.
type Rotatable struct {
	Name      string
	Solver    *Solver
	Polytope  *Polytope
	Drag      *DragController
	Projector *Projector

	metrics *Metrics
	logger  *slog.Logger
}

// Frame is what one Step produces for an external renderer.
type Frame struct {
	Object    string
	Rotated   bool
	Vertices  []VecN
	Projected []mgl64.Vec3
	Edges     []Edge
}

// NewRotatable wires a polytope to a fresh solver and drag controller at origin.
// A non-zero initial rotation is composed into the orientation up front.
func NewRotatable(name string, poly *Polytope, pr *Projector, origin mgl64.Vec3, initial Rot4, opts ...Option) (*Rotatable, error) {
	s, err := NewSolver(poly.Dim(), opts...)
	if err != nil {
		return nil, err
	}
	d, err := NewDragController(s, pr, origin)
	if err != nil {
		return nil, err
	}
	o := &Rotatable{
		Name:      name,
		Solver:    s,
		Polytope:  poly,
		Drag:      d,
		Projector: pr,
		metrics:   s.metrics,
		logger:    s.logger,
	}
	if !initial.IsZero() {
		if err := s.Apply(RotFromAngles(initial)); err != nil {
			return nil, err
		}
	}
	if err := poly.Recompute(s.orientation); err != nil {
		return nil, err
	}
	return o, nil
}

// Step runs one tick: feed the sample to the drag controller, recompute the
// rotated vertices and project them. A frame that fails keeps the previous
// state; the returned frame still carries the last good vertices.
func (o *Rotatable) Step(s Sample) (Frame, error) {
	rotated, err := o.Drag.Feed(s)
	if err != nil {
		o.metrics.incFrame(o.Name, "skipped")
		o.logger.Debug("frame skipped", "object", o.Name, "err", err)
		return o.snapshot(false), err
	}
	if rotated {
		if err := o.Polytope.Recompute(o.Solver.orientation); err != nil {
			o.metrics.incFrame(o.Name, "skipped")
			o.logger.Debug("frame skipped", "object", o.Name, "err", err)
			return o.snapshot(false), err
		}
	}
	f := o.snapshot(rotated)
	f.Projected, err = o.Polytope.Project(o.Projector)
	if err != nil {
		if errors.Is(err, ErrProjectionSingularity) {
			o.metrics.incSingularity()
		}
		o.metrics.incFrame(o.Name, "singular")
		return f, err
	}
	o.metrics.incFrame(o.Name, "ok")
	return f, nil
}

// Reset returns the object to the identity orientation and ends any drag.
func (o *Rotatable) Reset() error {
	o.Drag.EndDrag()
	o.Solver.Identity()
	return o.Polytope.Recompute(o.Solver.orientation)
}

func (o *Rotatable) snapshot(rotated bool) Frame {
	return Frame{
		Object:   o.Name,
		Rotated:  rotated,
		Vertices: o.Polytope.Current(),
		Edges:    o.Polytope.Edges(),
	}
}

// Carousel holds several rotatables with exactly one active at a time.
type Carousel struct {
	objects []*Rotatable
	active  int
}

// NewCarousel returns a carousel with the first object active.
func NewCarousel(objects ...*Rotatable) (*Carousel, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("carousel needs at least one object")
	}
	return &Carousel{objects: objects}, nil
}

func (c *Carousel) Active() *Rotatable { return c.objects[c.active] }
func (c *Carousel) Len() int           { return len(c.objects) }

// Next ends any drag on the active object and activates the following one.
func (c *Carousel) Next() *Rotatable {
	c.Active().Drag.EndDrag()
	c.active = (c.active + 1) % len(c.objects)
	return c.Active()
}
