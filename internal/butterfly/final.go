package butterfly

import (
	"github.com/cwbudde/fixfft/internal/delay"
	"github.com/cwbudde/fixfft/internal/fixmath"
)

// FinalButterfly is the last, span-1 stage: the twiddle factor is
// always 1, so it reduces to add/subtract plus rounding with the same
// three-cycle latency as the QuarterRotator.
type FinalButterfly struct {
	iw, ow int

	valid  *delay.Bits
	sync   *delay.Bits
	s1     In
	s2     addsub
	outReg Out
}

// NewFinal returns a FinalButterfly for iw-bit inputs and ow-bit
// outputs.
func NewFinal(iw, ow int) *FinalButterfly {
	return &FinalButterfly{
		iw:    iw,
		ow:    ow,
		valid: delay.NewBits(QuarterLatency),
		sync:  delay.NewBits(QuarterLatency),
	}
}

// Latency returns the butterfly's fixed latency in cycles.
func (f *FinalButterfly) Latency() int {
	return QuarterLatency
}

// Step advances the pipeline by one cycle.
func (f *FinalButterfly) Step(in In) Out {
	out := f.outReg

	f.outReg = Out{
		SumRe:  fixmath.Round(f.s2.sumRe, f.iw+1, f.ow, 0),
		SumIm:  fixmath.Round(f.s2.sumIm, f.iw+1, f.ow, 0),
		DiffRe: fixmath.Round(f.s2.diffRe, f.iw+1, f.ow, 0),
		DiffIm: fixmath.Round(f.s2.diffIm, f.iw+1, f.ow, 0),
	}

	f.s2 = addsub{
		sumRe:  f.s1.LRe + f.s1.RRe,
		sumIm:  f.s1.LIm + f.s1.RIm,
		diffRe: f.s1.LRe - f.s1.RRe,
		diffIm: f.s1.LIm - f.s1.RIm,
	}
	f.s1 = in

	out.Valid = f.valid.Step(in.Valid)
	out.Sync = f.sync.Step(in.Sync)

	return out
}

// Reset clears every register and token line.
func (f *FinalButterfly) Reset() {
	f.valid.Reset()
	f.sync.Reset()
	f.s1 = In{}
	f.s2 = addsub{}
	f.outReg = Out{}
}
