package fixfft

import (
	"github.com/cwbudde/fixfft/internal/fixtypes"
	"github.com/cwbudde/fixfft/internal/stage"
)

// Sample is one complex fixed-point sample at the core's boundary.
// The canonical definition is in internal/fixtypes.
type Sample = fixtypes.Sample

// Coef is one fixed-point twiddle coefficient.
// The canonical definition is in internal/fixtypes.
type Coef = fixtypes.Coef

// StageParams configures one pipeline stage.
// The canonical definition is in internal/stage.
type StageParams = stage.Params
