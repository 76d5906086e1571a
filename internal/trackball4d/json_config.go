package trackball4d

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Rotation in degrees for config files (friendlier than radians).
type Rot4Deg struct {
	XY Real `json:"xy" yaml:"xy"`
	XZ Real `json:"xz" yaml:"xz"`
	XW Real `json:"xw" yaml:"xw"`
	YZ Real `json:"yz" yaml:"yz"`
	YW Real `json:"yw" yaml:"yw"`
	ZW Real `json:"zw" yaml:"zw"`
}

func (r Rot4Deg) Radians() Rot4 {
	const k = math.Pi / 180
	return Rot4{
		XY: r.XY * k, XZ: r.XZ * k, XW: r.XW * k,
		YZ: r.YZ * k, YW: r.YW * k, ZW: r.ZW * k,
	}
}

type ObjectCfg struct {
	Name     string  `json:"name" yaml:"name"`
	Variant  string  `json:"variant" yaml:"variant"`
	HalfEdge Real    `json:"halfEdge,omitempty" yaml:"halfEdge,omitempty"`
	Origin   [3]Real `json:"origin" yaml:"origin"`
	RotDeg   Rot4Deg `json:"rotDeg" yaml:"rotDeg"`
}

// Script actions.
const (
	ActionDrag    = "drag"    // pointer at Pos with the button held
	ActionRelease = "release" // button up
	ActionNext    = "next"    // switch to the next object
	ActionReset   = "reset"   // active object back to identity
)

type StepCfg struct {
	Action string  `json:"action" yaml:"action"`
	Pos    [3]Real `json:"pos,omitempty" yaml:"pos,omitempty"`
	Repeat int     `json:"repeat,omitempty" yaml:"repeat,omitempty"` // run the step this many times
}

type Config struct {
	Dimension     int         `json:"dimension" yaml:"dimension"`
	Epsilon       Real        `json:"epsilon,omitempty" yaml:"epsilon,omitempty"`
	MaxIterations int         `json:"maxIterations,omitempty" yaml:"maxIterations,omitempty"`
	MaxStepDeg    Real        `json:"maxStepDeg,omitempty" yaml:"maxStepDeg,omitempty"`
	Scale         Real        `json:"scale,omitempty" yaml:"scale,omitempty"`
	Radius        Real        `json:"radius,omitempty" yaml:"radius,omitempty"`
	Viewpoint     Real        `json:"viewpoint,omitempty" yaml:"viewpoint,omitempty"`
	View          string      `json:"view,omitempty" yaml:"view,omitempty"`
	Objects       []ObjectCfg `json:"objects" yaml:"objects"`
	Script        []StepCfg   `json:"script" yaml:"script"`
	GIFOut        string      `json:"gifOut,omitempty" yaml:"gifOut,omitempty"`
	GIFDelay      int         `json:"gifDelay,omitempty" yaml:"gifDelay,omitempty"`
	GIFSize       int         `json:"gifSize,omitempty" yaml:"gifSize,omitempty"`
	RawOut        string      `json:"rawOut,omitempty" yaml:"rawOut,omitempty"`
	MetricsOut    string      `json:"metricsOut,omitempty" yaml:"metricsOut,omitempty"`
}

// Projector builds the projector described by the config.
func (c *Config) Projector() (*Projector, error) {
	mode, err := ParseViewMode(c.View)
	if err != nil {
		return nil, err
	}
	p := &Projector{Scale: c.Scale, Radius: c.Radius, Viewpoint: c.Viewpoint, Mode: mode}
	return p, p.Validate()
}

// SolverOptions returns the solver options described by the config.
func (c *Config) SolverOptions() []Option {
	return []Option{
		WithEpsilon(c.Epsilon),
		WithMaxIterations(c.MaxIterations),
		WithMaxStepDeg(c.MaxStepDeg),
	}
}

// Build validates and constructs the runtime object.
func (oc ObjectCfg) Build(pr *Projector, opts ...Option) (*Rotatable, error) {
	v, err := ParseVariant(oc.Variant)
	if err != nil {
		return nil, err
	}
	if oc.HalfEdge < 0 {
		return nil, fmt.Errorf("object %q: halfEdge must be >= 0, got %g", oc.Name, oc.HalfEdge)
	}
	poly, err := NewPolytope(v, oc.HalfEdge)
	if err != nil {
		return nil, err
	}
	name := oc.Name
	if name == "" {
		name = v.String()
	}
	origin := mgl64.Vec3{oc.Origin[0], oc.Origin[1], oc.Origin[2]}
	return NewRotatable(name, poly, pr, origin, oc.RotDeg.Radians(), opts...)
}

// Sample turns a drag/release step into a pointer sample.
func (sc StepCfg) Sample() Sample {
	return Sample{
		Pos:    mgl64.Vec3{sc.Pos[0], sc.Pos[1], sc.Pos[2]},
		Active: sc.Action == ActionDrag,
	}
}

func decodeConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	}
	return json.Unmarshal(data, cfg)
}

func loadConfig(path string, logger *slog.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := decodeConfig(path, data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.Dimension == 0 {
		cfg.Dimension = Dim
	}
	if cfg.Dimension != Dim {
		return nil, fmt.Errorf("dimension %d not supported, polytopes are %d-dimensional", cfg.Dimension, Dim)
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = Epsilon
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = MaxIterations
	}
	if cfg.MaxStepDeg <= 0 {
		cfg.MaxStepDeg = MaxStepDeg
	}
	if cfg.MaxStepDeg >= 60 {
		return nil, fmt.Errorf("maxStepDeg must be < 60, got %g", cfg.MaxStepDeg)
	}
	if cfg.Scale == 0 {
		cfg.Scale = InteractionScale
	}
	if cfg.Radius == 0 {
		cfg.Radius = UnprojectRadius
	}
	if cfg.Viewpoint == 0 {
		cfg.Viewpoint = Viewpoint
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.GIFSize <= 0 {
		cfg.GIFSize = GIFSize
	}
	if _, err := cfg.Projector(); err != nil {
		return nil, err
	}
	if len(cfg.Objects) == 0 {
		return nil, fmt.Errorf("config has no objects")
	}
	for i, st := range cfg.Script {
		switch st.Action {
		case ActionDrag, ActionRelease, ActionNext, ActionReset:
		default:
			return nil, fmt.Errorf("script step %d: unknown action %q", i, st.Action)
		}
		if st.Repeat < 0 {
			return nil, fmt.Errorf("script step %d: repeat must be >= 0", i)
		}
	}
	logger.Debug("loaded config", "path", path, "objects", len(cfg.Objects), "steps", len(cfg.Script),
		"epsilon", cfg.Epsilon, "maxIterations", cfg.MaxIterations, "view", cfg.View)
	return &cfg, nil
}
