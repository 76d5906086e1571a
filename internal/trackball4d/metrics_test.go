package trackball4d

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsFromSolver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	s := mustSolver(t, 4, WithMetrics(m))
	require.NoError(t, s.Rotate(axis(4, 0), axis(4, 1)))
	require.NoError(t, s.Rotate(axis(4, 1), axis(4, 2)))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rotations))
	assert.Zero(t, testutil.ToFloat64(m.nonConvergent))
	// frames has no children yet, so only four families are gathered
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	expected := `
# HELP trackball4d_rotations_applied_total Incremental rotations composed into an orientation.
# TYPE trackball4d_rotations_applied_total counter
trackball4d_rotations_applied_total 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "trackball4d_rotations_applied_total"))
}

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeSweeps(3)
		m.incRotations()
		m.incNonConvergent()
		m.incFrame("x", "ok")
		m.incSingularity()
	})
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.incFrame("cube", "ok")
	m.observeSweeps(4)

	path := filepath.Join(t.TempDir(), "out", "metrics.prom")
	require.NoError(t, WriteMetrics(reg, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `trackball4d_frames_total{object="cube",outcome="ok"} 1`)
	assert.Contains(t, out, "trackball4d_orthonormalize_sweeps_count 1")
}
