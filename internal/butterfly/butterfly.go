package butterfly

import (
	"github.com/cwbudde/fixfft/internal/delay"
	"github.com/cwbudde/fixfft/internal/fixmath"
)

// In carries one butterfly operand pair per cycle: L is the delayed
// sample read back from the stage memory, R the live incoming sample,
// and C the twiddle coefficient for the pair. Odd is the intra-pair
// index parity, consumed only by the QuarterRotator. Valid marks the
// cycle as carrying real data; Sync marks the first pair of a block.
type In struct {
	LRe, LIm int64
	RRe, RIm int64
	CRe, CIm int64
	Odd      bool
	Valid    bool
	Sync     bool
}

// Out carries the butterfly results: Sum = L+R and Diff = (L-R)
// rotated by the coefficient, both width-reduced to the configured
// output width. Valid and Sync are the input tokens delayed by the
// unit's exact latency.
type Out struct {
	SumRe, SumIm   int64
	DiffRe, DiffIm int64
	Valid          bool
	Sync           bool
}

// Unit is the contract shared by the three butterfly variants.
type Unit interface {
	Step(In) Out
	Latency() int
	Reset()
}

// addsub holds the add/subtract stage registers.
type addsub struct {
	sumRe, sumIm   int64
	diffRe, diffIm int64
	cRe, cIm       int64
}

// Butterfly is the general stage butterfly. The pipeline is:
//
//	S1       input registers (L, R, C)
//	S2       Sum = L+R, Diff = L-R (grow by one bit); C realigned
//	S3..S3+D Diff through the Multiplier, Sum through a matched-depth
//	         delay line so both emerge on the same cycle
//	final    convergent rounding to the output width, registered
//
// giving a fixed latency of MulLatency(iw+1, cw) + 3. The sum path is
// scaled by 2^(cw-2) (the coefficient's fixed-point scale) by
// zero-padding before rounding, so both outputs share one scale.
type Butterfly struct {
	iw, cw, ow int

	mul    *Multiplier
	sum    *delay.Line
	valid  *delay.Bits
	sync   *delay.Bits
	s1     In
	s2     addsub
	outReg Out
}

// New returns a Butterfly for iw-bit inputs, cw-bit coefficients and
// ow-bit outputs. It panics if the sum delay line and the multiplier
// latency disagree; that is a width-formula bug, not a runtime
// condition.
func New(iw, cw, ow int) *Butterfly {
	d := MulLatency(iw+1, cw)
	b := &Butterfly{
		iw:    iw,
		cw:    cw,
		ow:    ow,
		mul:   NewMultiplier(iw+1, cw),
		sum:   delay.NewLine(d),
		valid: delay.NewBits(d + 3),
		sync:  delay.NewBits(d + 3),
	}

	if b.sum.Depth() != b.mul.Latency() {
		panic("fixfft: butterfly sum delay depth does not match multiplier latency")
	}

	return b
}

// Latency returns the butterfly's fixed latency in cycles.
func (b *Butterfly) Latency() int {
	return b.mul.Latency() + 3
}

// Step advances the pipeline by one cycle.
func (b *Butterfly) Step(in In) Out {
	// Multiplier and matched sum delay consume the add/sub registers.
	mr, mi := b.mul.Step(b.s2.diffRe, b.s2.diffIm, b.s2.cRe, b.s2.cIm)
	sr, si := b.sum.Step(b.s2.sumRe, b.s2.sumIm)

	out := b.outReg

	// Width before rounding: (iw+1)-bit add/sub at scale 2^(cw-2).
	pw := b.iw + b.cw - 1
	sh := b.cw - 2
	b.outReg = Out{
		SumRe:  fixmath.Round(sr<<uint(sh), pw, b.ow, sh),
		SumIm:  fixmath.Round(si<<uint(sh), pw, b.ow, sh),
		DiffRe: fixmath.Round(mr, pw, b.ow, 0),
		DiffIm: fixmath.Round(mi, pw, b.ow, 0),
	}

	b.s2 = addsub{
		sumRe:  b.s1.LRe + b.s1.RRe,
		sumIm:  b.s1.LIm + b.s1.RIm,
		diffRe: b.s1.LRe - b.s1.RRe,
		diffIm: b.s1.LIm - b.s1.RIm,
		cRe:    b.s1.CRe,
		cIm:    b.s1.CIm,
	}
	b.s1 = in

	out.Valid = b.valid.Step(in.Valid)
	out.Sync = b.sync.Step(in.Sync)

	return out
}

// Reset clears every register and delay line.
func (b *Butterfly) Reset() {
	b.mul.Reset()
	b.sum.Reset()
	b.valid.Reset()
	b.sync.Reset()
	b.s1 = In{}
	b.s2 = addsub{}
	b.outReg = Out{}
}
