package fixfft

import (
	"fmt"

	"github.com/cwbudde/fixfft/internal/bitrev"
	"github.com/cwbudde/fixfft/internal/fixmath"
	"github.com/cwbudde/fixfft/internal/twiddle"
)

// maxProductWidth bounds iw+cw per butterfly stage so every Karatsuba
// intermediate stays exact in int64 (largest intermediate needs
// iw+cw+2 bits).
const maxProductWidth = 61

// Config describes a complete pipeline: transform size, boundary
// widths, direction, and the declarative per-stage parameter list the
// chain is built from. Every latency and memory depth is derived from
// these parameters at construction time; nothing is sized at runtime.
type Config struct {
	// N is the transform size, a power of two >= 4.
	N int

	// InputWidth is the signed bit width of the samples entering the
	// first stage.
	InputWidth int

	// Inverse selects the inverse transform. The butterfly stages take
	// the direction from their coefficient tables; the quarter-rotation
	// stage takes it from this flag. No 1/N scaling is applied.
	Inverse bool

	// Stages lists one entry per transform level, ordered by halving
	// span from N/2 down to 1.
	Stages []StageParams
}

// DefaultConfig returns a Config for an n-point transform with iw-bit
// inputs and cw-bit coefficients, growing every stage's output by one
// bit. That growth plan preserves the add/sub headroom exactly, so the
// cumulative scale factor of the chain is 1 and an impulse of amplitude
// A produces A in every bin.
func DefaultConfig(n, iw, cw int, inverse bool) (Config, error) {
	if !bitrev.IsPowerOf2(n) || n < 4 {
		return Config{}, ErrInvalidLength
	}

	levels := bitrev.Log2(n)
	cfg := Config{
		N:          n,
		InputWidth: iw,
		Inverse:    inverse,
		Stages:     make([]StageParams, 0, levels),
	}

	for lg := levels - 1; lg >= 0; lg-- {
		w := iw + (levels - 1 - lg)
		p := StageParams{
			LgSpan:      lg,
			InputWidth:  w,
			OutputWidth: w + 1,
		}
		if lg >= 2 {
			p.CoefWidth = cw
			p.Table = twiddle.Table(1<<uint(lg), cw, inverse)
		}
		cfg.Stages = append(cfg.Stages, p)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// OutputWidth returns the sample width leaving the last stage.
func (cfg Config) OutputWidth() int {
	if len(cfg.Stages) == 0 {
		return 0
	}

	return cfg.Stages[len(cfg.Stages)-1].OutputWidth
}

// Validate checks the configuration against every static constraint
// the pipeline relies on. New calls it; it is exported so a caller
// assembling a custom growth plan can check it early.
func (cfg Config) Validate() error {
	if !bitrev.IsPowerOf2(cfg.N) || cfg.N < 4 {
		return ErrInvalidLength
	}

	levels := bitrev.Log2(cfg.N)
	if len(cfg.Stages) != levels {
		return fmt.Errorf("%w: want %d stages, have %d", ErrBadChain, levels, len(cfg.Stages))
	}

	prev := cfg.InputWidth
	for i, p := range cfg.Stages {
		if p.LgSpan != levels-1-i {
			return fmt.Errorf("%w: stage %d has lgspan %d", ErrBadChain, i, p.LgSpan)
		}
		if p.InputWidth < 2 || p.InputWidth > 61 || p.OutputWidth < 2 {
			return fmt.Errorf("%w: stage %d", ErrBadWidth, i)
		}
		if p.InputWidth != prev {
			return fmt.Errorf("%w: stage %d input %d, upstream %d", ErrBadGrowth, i, p.InputWidth, prev)
		}
		if p.OutputWidth > p.InputWidth+1 {
			return fmt.Errorf("%w: stage %d grows by more than one bit", ErrBadGrowth, i)
		}

		if p.LgSpan >= 2 {
			if err := validateTable(i, p); err != nil {
				return err
			}
		}
		prev = p.OutputWidth
	}

	return nil
}

func validateTable(i int, p StageParams) error {
	if p.CoefWidth < 4 {
		return fmt.Errorf("%w: stage %d coefficient width %d", ErrBadWidth, i, p.CoefWidth)
	}
	if p.InputWidth+p.CoefWidth > maxProductWidth {
		return fmt.Errorf("%w: stage %d", ErrWidthOverflow, i)
	}

	span := 1 << uint(p.LgSpan)
	if len(p.Table) != span {
		return fmt.Errorf("%w: stage %d wants %d entries, has %d", ErrBadTable, i, span, len(p.Table))
	}

	for k, c := range p.Table {
		if !fixmath.Fits(c.Re, p.CoefWidth) || !fixmath.Fits(c.Im, p.CoefWidth) {
			return fmt.Errorf("%w: stage %d entry %d out of width", ErrBadTable, i, k)
		}
	}

	return nil
}
