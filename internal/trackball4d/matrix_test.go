package trackball4d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestIdentity(t *testing.T) {
	I := Identity(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := 0.0
			if r == c {
				want = 1
			}
			assert.Equal(t, want, I.At(r, c))
		}
	}
	assert.Zero(t, OrthonormalityError(I))
	assert.Zero(t, DistanceFromIdentity(I))
}

func TestMulVec(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	assert.Equal(t, VecN{14, 32}, MulVec(m, VecN{1, 2, 3}))
}

func TestDistanceFromIdentityIsFrobenius(t *testing.T) {
	m := Identity(4)
	m.Set(0, 1, 3)
	m.Set(2, 2, 5)
	assert.InDelta(t, 5.0, DistanceFromIdentity(m), 1e-12) // sqrt(3² + 4²)
}

func TestOrthonormalityErrorOfScaledMatrix(t *testing.T) {
	m := Identity(4)
	m.Scale(2, m)
	assert.InDelta(t, 3.0, OrthonormalityError(m), 1e-12)
	assert.Less(t, OrthonormalityError(PlaneRotation(4, 1, 3, math.Pi/5)), 1e-15)
}
