package fixfft

import (
	"fmt"

	"github.com/cwbudde/fixfft/internal/bitrev"
	"github.com/cwbudde/fixfft/internal/fixmath"
	"github.com/cwbudde/fixfft/internal/stage"
)

// Core is the full streaming transform: the stage chain feeding the
// bit-reverse reorder buffer. One call to Step advances every component
// by exactly one cycle; holding the pipeline (enable deasserted) is
// simply not calling Step. Data flows strictly forward with a fixed
// total latency, so the Nth valid output always corresponds to the Nth
// accepted input.
type Core struct {
	cfg     Config
	chain   *stage.Chain
	reorder *bitrev.Buffer
	lat     int

	started bool
	frame   uint32
	err     error
}

// New builds a Core from the configuration. The configuration is
// validated in full; after New succeeds, Step cannot fail.
func New(cfg Config) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	chain := stage.NewChain(cfg.Stages, cfg.Inverse)
	reorder := bitrev.NewBuffer(cfg.N)

	return &Core{
		cfg:     cfg,
		chain:   chain,
		reorder: reorder,
		lat:     chain.Latency() + reorder.Latency(),
	}, nil
}

// Size returns the transform size N.
func (c *Core) Size() int {
	return c.cfg.N
}

// OutputWidth returns the signed bit width of output samples.
func (c *Core) OutputWidth() int {
	return c.cfg.OutputWidth()
}

// Latency returns the fixed number of accepted cycles between a
// frame's first input sample and its bin-0 output sample. The constant
// is summed from the per-stage formulas at construction time and is
// independent of the data.
func (c *Core) Latency() int {
	return c.lat
}

// Err returns the sticky protocol error, if any: an out-of-range input
// sample or a misaligned sync pulse. The datapath keeps running either
// way; Reset clears it.
func (c *Core) Err() error {
	return c.err
}

// Step accepts one input sample and advances the whole pipeline one
// cycle. in.Sync must be true on the cycle carrying a frame's first
// sample; after the first frame the core tracks boundaries itself and
// further sync pulses are optional but, when present, checked.
//
// The returned bool is false until the pipeline has filled. Once true,
// out.Sync marks bin 0 of each completed natural-order frame.
func (c *Core) Step(in Sample) (Sample, bool) {
	iw := c.cfg.InputWidth
	if !fixmath.Fits(in.Re, iw) || !fixmath.Fits(in.Im, iw) {
		if c.err == nil {
			c.err = fmt.Errorf("%w: (%d,%d) does not fit %d bits", ErrRange, in.Re, in.Im, iw)
		}
		in.Re = fixmath.SignExtend(in.Re, iw)
		in.Im = fixmath.SignExtend(in.Im, iw)
	}

	if c.started {
		if in.Sync && c.frame != 0 {
			if c.err == nil {
				c.err = fmt.Errorf("%w: pulse at frame index %d", ErrSyncMisaligned, c.frame)
			}
			in.Sync = false
		}
	} else if in.Sync {
		c.started = true
		c.frame = 0
	}

	if c.started {
		c.frame = (c.frame + 1) & uint32(c.cfg.N-1)
	}

	mid, ok := c.chain.Step(in, c.started)

	return c.reorder.Step(mid, ok)
}

// Reset returns every counter and token register to the post-power-up
// state and clears the sticky error. Data memories are not cleared;
// valid tracking keeps stale contents from ever being observed.
func (c *Core) Reset() {
	c.chain.Reset()
	c.reorder.Reset()
	c.started = false
	c.frame = 0
	c.err = nil
}
