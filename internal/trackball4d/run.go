package trackball4d

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run loads a replay config, drives the scripted pointer samples through the
// configured objects and writes the requested outputs.
func Run(cfgPath string, logger *slog.Logger) error {
	cfg, err := loadConfig(cfgPath, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	carousel, err := buildCarousel(cfg, metrics, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	frames, failed := replay(cfg.Script, carousel, logger)
	logger.Info("replayed script", "frames", len(frames), "failed", failed, "elapsed", time.Since(start))

	if cfg.GIFOut != "" {
		if err := SaveWireframeGIF(frames, cfg.GIFOut, cfg.GIFSize, cfg.GIFDelay); err != nil {
			return err
		}
		logger.Info("saved animated GIF", "path", cfg.GIFOut)
	}
	if cfg.RawOut != "" {
		if err := SaveRawFrames(frames, cfg.RawOut); err != nil {
			return err
		}
		logger.Info("saved raw frames", "path", cfg.RawOut)
	}
	if cfg.MetricsOut != "" {
		if err := WriteMetrics(reg, cfg.MetricsOut); err != nil {
			return err
		}
		logger.Info("saved metrics", "path", cfg.MetricsOut)
	}
	return nil
}

func buildCarousel(cfg *Config, metrics *Metrics, logger *slog.Logger) (*Carousel, error) {
	pr, err := cfg.Projector()
	if err != nil {
		return nil, err
	}
	opts := append(cfg.SolverOptions(), WithMetrics(metrics), WithLogger(logger))
	objects := make([]*Rotatable, 0, len(cfg.Objects))
	for _, oc := range cfg.Objects {
		o, err := oc.Build(pr, opts...)
		if err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}
	return NewCarousel(objects...)
}

// replay runs the script against the carousel. drag and release steps each
// produce one frame per repetition; next and reset produce none.
// A step that fails keeps the previous orientation and is counted, not fatal.
func replay(script []StepCfg, c *Carousel, logger *slog.Logger) ([]Frame, int) {
	var (
		frames []Frame
		failed int
	)
	for i, st := range script {
		n := max(st.Repeat, 1)
		for rep := 0; rep < n; rep++ {
			switch st.Action {
			case ActionNext:
				o := c.Next()
				logger.Debug("switched object", "step", i, "object", o.Name)
			case ActionReset:
				if err := c.Active().Reset(); err != nil {
					logger.Warn("reset failed", "step", i, "err", err)
					failed++
				}
			default:
				f, err := c.Active().Step(st.Sample())
				if err != nil {
					failed++
					lvl := slog.LevelWarn
					if errors.Is(err, ErrNonConvergent) {
						lvl = slog.LevelDebug
					}
					logger.Log(context.Background(), lvl, "frame failed", "step", i, "object", f.Object, "err", err)
				}
				frames = append(frames, f)
			}
		}
	}
	return frames, failed
}
