package trackball4d

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics collects engine counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	sweeps        prometheus.Histogram
	rotations     prometheus.Counter
	nonConvergent prometheus.Counter
	frames        *prometheus.CounterVec
	singularities prometheus.Counter
}

// NewMetrics creates the engine metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sweeps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trackball4d_orthonormalize_sweeps",
			Help:    "Sweeps needed per incremental rotation.",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
		}),
		rotations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackball4d_rotations_applied_total",
			Help: "Incremental rotations composed into an orientation.",
		}),
		nonConvergent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackball4d_nonconvergent_total",
			Help: "Incremental rotations that hit the sweep cap.",
		}),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trackball4d_frames_total",
			Help: "Frames stepped, by object and outcome.",
		}, []string{"object", "outcome"}),
		singularities: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackball4d_projection_singularities_total",
			Help: "Vertices that landed on the viewpoint plane.",
		}),
	}
	reg.MustRegister(m.sweeps, m.rotations, m.nonConvergent, m.frames, m.singularities)
	return m
}

func (m *Metrics) observeSweeps(n int) {
	if m != nil {
		m.sweeps.Observe(float64(n))
	}
}

func (m *Metrics) incRotations() {
	if m != nil {
		m.rotations.Inc()
	}
}

func (m *Metrics) incNonConvergent() {
	if m != nil {
		m.nonConvergent.Inc()
	}
}

func (m *Metrics) incFrame(object, outcome string) {
	if m != nil {
		m.frames.WithLabelValues(object, outcome).Inc()
	}
}

func (m *Metrics) incSingularity() {
	if m != nil {
		m.singularities.Inc()
	}
}

// WriteMetrics dumps everything g gathers to path in the Prometheus text format.
func WriteMetrics(g prometheus.Gatherer, path string) (err error) {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer syncClose(f, &err)

	w := bufio.NewWriter(f)
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return w.Flush()
}
