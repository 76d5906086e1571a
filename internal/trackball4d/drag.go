package trackball4d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DragState is the state of a DragController.
type DragState uint8

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Sample is one frame of pointer input: where the pointer is and whether the
// grab button is held.
type Sample struct {
	Pos    mgl64.Vec3
	Active bool
}

// DragController turns pointer samples into (A, B) hypersphere pairs and feeds
// them to its solver, one pair per tick while a drag is active.
// It serves one pointer; arbitrating between pointers is up to the caller.
type DragController struct {
	solver    *Solver
	projector *Projector
	origin    mgl64.Vec3
	state     DragState
	anchor    mgl64.Vec3 // last pointer sample, lifted against the current origin on use
}

// NewDragController returns an idle controller driving solver. The solver
// dimension must be at least 4; hypersphere samples use its first four axes.
func NewDragController(solver *Solver, projector *Projector, origin mgl64.Vec3) (*DragController, error) {
	if solver.Dim() < 4 {
		return nil, fmt.Errorf("%w: drag needs a solver of dimension >= 4, got %d", ErrDimensionMismatch, solver.Dim())
	}
	if err := projector.Validate(); err != nil {
		return nil, err
	}
	return &DragController{solver: solver, projector: projector, origin: origin}, nil
}

func (d *DragController) State() DragState { return d.state }

// Anchor returns the last pointer sample; ok is false when idle.
func (d *DragController) Anchor() (pos mgl64.Vec3, ok bool) {
	return d.anchor, d.state == Dragging
}

// Origin is the object-space centre pointer samples are measured from.
func (d *DragController) Origin() mgl64.Vec3 { return d.origin }

// SetOrigin moves the interaction centre, e.g. when the scene re-places the object.
func (d *DragController) SetOrigin(o mgl64.Vec3) { d.origin = o }

func (d *DragController) lift(pos mgl64.Vec3) (VecN, error) {
	q, err := d.projector.MapPointerToHypersphere(pos, d.origin)
	if err != nil {
		return nil, err
	}
	return FromVec4(q, d.solver.Dim()), nil
}

// BeginDrag anchors a drag at pos. Calling it while dragging re-anchors.
func (d *DragController) BeginDrag(pos mgl64.Vec3) error {
	if _, err := d.lift(pos); err != nil {
		return err
	}
	d.anchor, d.state = pos, Dragging
	return nil
}

// Tick rotates by the motion from the anchor to pos and moves the anchor there.
// Both samples are lifted against the current origin, so moving the origin
// mid-drag does not by itself rotate the object.
// It reports whether a rotation was applied; idle controllers and unmoved
// pointers apply nothing. On error the orientation and anchor are unchanged,
// so the next tick retries from the same anchor.
func (d *DragController) Tick(pos mgl64.Vec3) (bool, error) {
	if d.state != Dragging {
		return false, nil
	}
	a, err := d.lift(d.anchor)
	if err != nil {
		return false, err
	}
	b, err := d.lift(pos)
	if err != nil {
		return false, err
	}
	if a.Dist(b) < sameTol {
		return false, nil
	}
	R, err := d.solver.ComputeIncrementalRotation(a, b)
	if err != nil {
		return false, err
	}
	if err := d.solver.Apply(R); err != nil {
		return false, err
	}
	d.anchor = pos
	return true, nil
}

// EndDrag drops the anchor; nothing rotates until the next BeginDrag.
func (d *DragController) EndDrag() {
	d.anchor, d.state = mgl64.Vec3{}, Idle
}

// Feed drives the state machine from one sample: a press begins a drag, a
// held button ticks, a release ends it.
func (d *DragController) Feed(s Sample) (bool, error) {
	switch {
	case s.Active && d.state == Idle:
		return false, d.BeginDrag(s.Pos)
	case s.Active:
		return d.Tick(s.Pos)
	case d.state == Dragging:
		d.EndDrag()
	}
	return false, nil
}
