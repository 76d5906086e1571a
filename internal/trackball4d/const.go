package trackball4d

// Engine defaults. Every one of them can be overridden per replay config.
const (
	Dim              = 4         // dimension of the rotated polytopes
	Epsilon          = 1e-5      // orthonormalization stop threshold on the summed squared correction
	MaxIterations    = 100       // sweep cap for a single orthonormalization
	MaxStepDeg       = 45        // arcs wider than this are split at their midpoint
	InteractionScale = 8.0 / 3.0 // interaction-area units -> unit sphere units
	UnprojectRadius  = 1.0
	Viewpoint        = 2.0 // virtual camera offset along the last axis
	TesseractHalf    = 0.175
	HyperoctaHalf    = 0.2
	GIFDelay         = 4 // 100ths of a second per frame
	GIFSize          = 256
	// hot-loop constants
	maxRefine      = 8     // residual refinement rounds per planar step
	residualTol    = 1e-12 // |R·A - B| accepted as exact
	sameTol        = 1e-12 // |A - B| treated as no movement
	degenerateNorm = 1e-12
	singularityEps = 1e-9
)
