// Package butterfly implements the arithmetic units of the pipeline: the
// Karatsuba-3 complex multiplier and the three butterfly variants built
// on it. Every unit is a fixed-latency pipeline advanced once per
// accepted cycle; latency is a pure function of the configured operand
// widths, and the matching delay lines are sized from the same formulas.
package butterfly

import "github.com/cwbudde/fixfft/internal/delay"

// MulLatency returns the cycle latency of a signed multiply with the
// given operand widths. It models a radix-4 shift/accumulate array
// retiring two bits per cycle, plus one input register and one
// reconstruction register. Any fixed-latency signed multiplier
// satisfies the same contract; only the constant matters.
func MulLatency(aw, bw int) int {
	w := aw
	if bw > w {
		w = bw
	}

	return (w+1)/2 + 2
}

// Multiplier computes a complex product using three real multiplies:
//
//	P1 = a*c, P2 = b*d, P3 = (a+b)*(c+d)
//	Re = P1 - P2, Im = P3 - P1 - P2
//
// for operands (a+jb) and (c+jd). The factoring trades the fourth
// multiply for two extra adds; the pre-adds use width-matched
// sign-extended operands so all three product pipelines share one
// latency, and the reconstruction is registered one cycle after the
// products. Results are exact: the int64 width budget is enforced by
// the configuration layer before a Multiplier is built.
type Multiplier struct {
	pipe *delay.Line
}

// NewMultiplier returns a Multiplier for aw-bit by bw-bit operands.
func NewMultiplier(aw, bw int) *Multiplier {
	return &Multiplier{pipe: delay.NewLine(MulLatency(aw, bw))}
}

// Latency returns the multiplier's fixed latency in cycles.
func (m *Multiplier) Latency() int {
	return m.pipe.Depth()
}

// Step feeds the operands (ar+j*ai) and (br+j*bi) into the pipeline and
// returns the product that entered Latency() cycles earlier.
func (m *Multiplier) Step(ar, ai, br, bi int64) (int64, int64) {
	p1 := ar * br
	p2 := ai * bi
	p3 := (ar + ai) * (br + bi)

	return m.pipe.Step(p1-p2, p3-p1-p2)
}

// Reset clears the product pipeline.
func (m *Multiplier) Reset() {
	m.pipe.Reset()
}
