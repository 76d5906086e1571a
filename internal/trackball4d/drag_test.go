package trackball4d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func newDrag(t *testing.T, opts ...Option) (*DragController, *Solver) {
	t.Helper()
	s := mustSolver(t, Dim, opts...)
	d, err := NewDragController(s, NewProjector(), mgl64.Vec3{})
	require.NoError(t, err)
	return d, s
}

func TestDragLifecycle(t *testing.T) {
	d, s := newDrag(t)
	assert.Equal(t, Idle, d.State())
	_, ok := d.Anchor()
	assert.False(t, ok)

	// ticks while idle do nothing
	rotated, err := d.Tick(mgl64.Vec3{0.1, 0, 0})
	require.NoError(t, err)
	assert.False(t, rotated)

	require.NoError(t, d.BeginDrag(mgl64.Vec3{}))
	assert.Equal(t, Dragging, d.State())
	pos, ok := d.Anchor()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{}, pos)
	a, err := d.lift(pos)
	require.NoError(t, err)
	assert.Equal(t, VecN{0, 0, 0, 1}, a)

	rotated, err = d.Tick(mgl64.Vec3{3.0 / 16, 0, 0})
	require.NoError(t, err)
	assert.True(t, rotated)
	pos, _ = d.Anchor()
	assert.Equal(t, mgl64.Vec3{3.0 / 16, 0, 0}, pos)
	b, err := d.lift(pos)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, b[0], 1e-12)
	assert.Less(t, s.Transform(a).Dist(b), tol)

	// same position: no rotation, orientation unchanged
	before := s.Orientation()
	rotated, err = d.Tick(mgl64.Vec3{3.0 / 16, 0, 0})
	require.NoError(t, err)
	assert.False(t, rotated)
	assert.True(t, mat.Equal(before, s.Orientation()))

	d.EndDrag()
	assert.Equal(t, Idle, d.State())
	_, ok = d.Anchor()
	assert.False(t, ok)
	rotated, err = d.Tick(mgl64.Vec3{0, 0.1, 0})
	require.NoError(t, err)
	assert.False(t, rotated)
	assert.True(t, mat.Equal(before, s.Orientation()))
}

func TestDragFailedTickKeepsState(t *testing.T) {
	d, s := newDrag(t, WithMaxIterations(1))
	require.NoError(t, d.BeginDrag(mgl64.Vec3{}))
	anchor, _ := d.Anchor()

	rotated, err := d.Tick(mgl64.Vec3{3.0 / 16, 0, 0})
	assert.ErrorIs(t, err, ErrNonConvergent)
	assert.False(t, rotated)
	pos, _ := d.Anchor()
	assert.Equal(t, anchor, pos)
	assert.Equal(t, Dragging, d.State())
	assert.True(t, mat.Equal(Identity(Dim), s.Orientation()))

	_, err = d.Tick(mgl64.Vec3{0, math.NaN(), 0})
	assert.ErrorIs(t, err, ErrDegenerateInput)
	pos, _ = d.Anchor()
	assert.Equal(t, anchor, pos)
}

func TestDragFeed(t *testing.T) {
	d, s := newDrag(t)
	steps := []struct {
		s       Sample
		rotated bool
		state   DragState
	}{
		{Sample{Pos: mgl64.Vec3{0.1, 0, 0}}, false, Idle},
		{Sample{Pos: mgl64.Vec3{0, 0, 0}, Active: true}, false, Dragging},
		{Sample{Pos: mgl64.Vec3{0.05, 0, 0}, Active: true}, true, Dragging},
		{Sample{Pos: mgl64.Vec3{0.05, 0.05, 0}, Active: true}, true, Dragging},
		{Sample{Pos: mgl64.Vec3{0.05, 0.05, 0}, Active: true}, false, Dragging},
		{Sample{Pos: mgl64.Vec3{0.3, 0.3, 0}}, false, Idle},
		{Sample{Pos: mgl64.Vec3{0.3, 0.3, 0}}, false, Idle},
	}
	for i, st := range steps {
		rotated, err := d.Feed(st.s)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, st.rotated, rotated, "step %d", i)
		assert.Equal(t, st.state, d.State(), "step %d", i)
	}
	assert.Less(t, OrthonormalityError(s.Orientation()), tol)
	assert.Greater(t, DistanceFromIdentity(s.Orientation()), 0.01)
}

func TestDragOrigin(t *testing.T) {
	d, _ := newDrag(t)
	d.SetOrigin(mgl64.Vec3{1, 2, 3})
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, d.Origin())
	require.NoError(t, d.BeginDrag(mgl64.Vec3{1, 2, 3}))
	a, err := d.lift(mgl64.Vec3{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, VecN{0, 0, 0, 1}, a)
}

func TestDragOriginMovedMidDrag(t *testing.T) {
	d, s := newDrag(t)
	p := mgl64.Vec3{0.1, 0.02, 0}
	require.NoError(t, d.BeginDrag(p))

	// the scene re-places the object, the pointer stays put
	d.SetOrigin(mgl64.Vec3{0.05, 0, 0})
	rotated, err := d.Tick(p)
	require.NoError(t, err)
	assert.False(t, rotated)
	assert.True(t, mat.Equal(Identity(Dim), s.Orientation()))

	// motion after the move is measured from the new origin
	q := mgl64.Vec3{0.12, 0.02, 0}
	rotated, err = d.Tick(q)
	require.NoError(t, err)
	assert.True(t, rotated)
	a, err := d.lift(p)
	require.NoError(t, err)
	b, err := d.lift(q)
	require.NoError(t, err)
	assert.Less(t, s.Transform(a).Dist(b), tol)
}

func TestDragNeedsFourDimensions(t *testing.T) {
	s := mustSolver(t, 3)
	_, err := NewDragController(s, NewProjector(), mgl64.Vec3{})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	// extra axes are padded with zeros
	s = mustSolver(t, 6)
	d, err := NewDragController(s, NewProjector(), mgl64.Vec3{})
	require.NoError(t, err)
	require.NoError(t, d.BeginDrag(mgl64.Vec3{}))
	a, err := d.lift(mgl64.Vec3{})
	require.NoError(t, err)
	assert.Equal(t, VecN{0, 0, 0, 1, 0, 0}, a)
	rotated, err := d.Tick(mgl64.Vec3{0, 0, 0.1})
	require.NoError(t, err)
	assert.True(t, rotated)
}

func TestDragStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
}
