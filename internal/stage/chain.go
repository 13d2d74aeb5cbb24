package stage

import "github.com/cwbudde/fixfft/internal/fixtypes"

// Chain composes one Stage per transform level, spans halving from
// N/2 down to 1. Sync propagates stage to stage; each stage rederives
// its own output pulse from its internal counters, so no cross-stage
// resynchronization exists.
type Chain struct {
	stages []*Stage
	lat    int
}

// NewChain builds the full stage chain from the validated per-stage
// parameter list, ordered by decreasing span.
func NewChain(params []Params, inverse bool) *Chain {
	c := &Chain{stages: make([]*Stage, 0, len(params))}
	for _, p := range params {
		s := New(p, inverse)
		c.stages = append(c.stages, s)
		c.lat += s.Latency()
	}

	return c
}

// Latency returns the summed fixed latency of every stage.
func (c *Chain) Latency() int {
	return c.lat
}

// Step advances every stage by one cycle, feeding each stage the
// previous stage's output.
func (c *Chain) Step(in fixtypes.Sample, ok bool) (fixtypes.Sample, bool) {
	for _, s := range c.stages {
		in, ok = s.Step(in, ok)
	}

	return in, ok
}

// Reset resets every stage.
func (c *Chain) Reset() {
	for _, s := range c.stages {
		s.Reset()
	}
}
