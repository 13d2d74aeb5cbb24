package butterfly

import (
	"github.com/cwbudde/fixfft/internal/delay"
	"github.com/cwbudde/fixfft/internal/fixmath"
)

// QuarterLatency is the fixed latency of the QuarterRotator and the
// FinalButterfly: latch, add/sub, round.
const QuarterLatency = 3

// QuarterRotator is the butterfly for the span-2 stage, where the
// twiddle factors are 1 and -j (forward) or 1 and +j (inverse). The
// rotation is sign/swap logic selected by the Odd token and the
// configured direction; no multiplier is involved.
type QuarterRotator struct {
	iw, ow  int
	inverse bool

	valid  *delay.Bits
	sync   *delay.Bits
	s1     In
	s2     addsub
	outReg Out
}

// NewQuarterRotator returns a QuarterRotator for iw-bit inputs and
// ow-bit outputs. inverse selects the +j rotation on odd pairs.
func NewQuarterRotator(iw, ow int, inverse bool) *QuarterRotator {
	return &QuarterRotator{
		iw:      iw,
		ow:      ow,
		inverse: inverse,
		valid:   delay.NewBits(QuarterLatency),
		sync:    delay.NewBits(QuarterLatency),
	}
}

// Latency returns the rotator's fixed latency in cycles.
func (q *QuarterRotator) Latency() int {
	return QuarterLatency
}

// Step advances the pipeline by one cycle.
func (q *QuarterRotator) Step(in In) Out {
	out := q.outReg

	q.outReg = Out{
		SumRe:  fixmath.Round(q.s2.sumRe, q.iw+1, q.ow, 0),
		SumIm:  fixmath.Round(q.s2.sumIm, q.iw+1, q.ow, 0),
		DiffRe: fixmath.Round(q.s2.diffRe, q.iw+1, q.ow, 0),
		DiffIm: fixmath.Round(q.s2.diffIm, q.iw+1, q.ow, 0),
	}

	dr := q.s1.LRe - q.s1.RRe
	di := q.s1.LIm - q.s1.RIm
	if q.s1.Odd {
		if q.inverse {
			dr, di = -di, dr // *(+j)
		} else {
			dr, di = di, -dr // *(-j)
		}
	}
	q.s2 = addsub{
		sumRe:  q.s1.LRe + q.s1.RRe,
		sumIm:  q.s1.LIm + q.s1.RIm,
		diffRe: dr,
		diffIm: di,
	}
	q.s1 = in

	out.Valid = q.valid.Step(in.Valid)
	out.Sync = q.sync.Step(in.Sync)

	return out
}

// Reset clears every register and token line.
func (q *QuarterRotator) Reset() {
	q.valid.Reset()
	q.sync.Reset()
	q.s1 = In{}
	q.s2 = addsub{}
	q.outReg = Out{}
}
