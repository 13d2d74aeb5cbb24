// Package stage implements the single-path delay-feedback scheduler
// that turns a one-sample-per-cycle stream into butterfly operand pairs,
// and the chain composing one stage per transform level.
//
// A stage pairing sample n with sample n+span buffers the first half of
// each 2*span block in a span-deep memory while streaming, then replays
// it against the live second half. The butterfly's sum output is emitted
// immediately; its rotated difference is parked in a second span-deep
// memory and replayed during the following half-block. One delay memory
// per stage is what keeps total storage O(N) instead of O(N log N).
package stage

import (
	"github.com/cwbudde/fixfft/internal/butterfly"
	"github.com/cwbudde/fixfft/internal/fixtypes"
)

// Params configures one stage. The caller (the configuration layer)
// validates widths, spans and tables before construction.
type Params struct {
	// LgSpan is log2 of the stage's pairing distance and delay-memory
	// depth. LgSpan >= 2 selects the general Butterfly, 1 the
	// QuarterRotator, 0 the FinalButterfly.
	LgSpan int

	InputWidth  int
	OutputWidth int

	// CoefWidth and Table apply to general butterfly stages only; the
	// quarter and final stages rotate by sign/swap.
	CoefWidth int
	Table     []fixtypes.Coef
}

// Stage is one pipeline level. Its input counter iaddr is LgSpan+1 bits
// wide and free-runs once armed by the first sync: the top bit selects
// the write phase (buffer the arriving sample) versus the read phase
// (pair the buffered sample with the live one and feed the butterfly).
// A matching output counter replays the parked differences. Both
// counters wrap by masking; the fixed lead between them is what aligns
// sums and differences, so neither is ever resynchronized mid-stream.
type Stage struct {
	lgSpan int
	span   uint32
	bfly   butterfly.Unit
	table  []fixtypes.Coef

	imemRe, imemIm []int64
	omemRe, omemIm []int64

	waitForSync bool
	iaddr       uint32

	oactive bool
	oaddr   uint32
}

// New builds a Stage from validated parameters. inverse selects the
// conjugate rotation in the quarter stage; butterfly stages take the
// direction from their table.
func New(p Params, inverse bool) *Stage {
	span := uint32(1) << uint(p.LgSpan)

	var unit butterfly.Unit
	switch {
	case p.LgSpan >= 2:
		unit = butterfly.New(p.InputWidth, p.CoefWidth, p.OutputWidth)
	case p.LgSpan == 1:
		unit = butterfly.NewQuarterRotator(p.InputWidth, p.OutputWidth, inverse)
	default:
		unit = butterfly.NewFinal(p.InputWidth, p.OutputWidth)
	}

	return &Stage{
		lgSpan:      p.LgSpan,
		span:        span,
		bfly:        unit,
		table:       p.Table,
		imemRe:      make([]int64, span),
		imemIm:      make([]int64, span),
		omemRe:      make([]int64, span),
		omemIm:      make([]int64, span),
		waitForSync: true,
	}
}

// Latency returns the stage's fixed latency in accepted cycles: the
// span-deep fill plus the butterfly pipeline.
func (s *Stage) Latency() int {
	return int(s.span) + s.bfly.Latency()
}

// Step accepts one sample (when ok) and returns the stage's output
// sample, if the pipeline has filled.
func (s *Stage) Step(in fixtypes.Sample, ok bool) (fixtypes.Sample, bool) {
	if !ok {
		return fixtypes.Sample{}, false
	}

	if s.waitForSync {
		if !in.Sync {
			return fixtypes.Sample{}, false
		}
		s.waitForSync = false
		s.iaddr = 0
	}

	idx := int(s.iaddr & (s.span - 1))

	var bin butterfly.In
	if (s.iaddr>>uint(s.lgSpan))&1 == 0 {
		s.imemRe[idx] = in.Re
		s.imemIm[idx] = in.Im
	} else {
		var c fixtypes.Coef
		if s.table != nil {
			c = s.table[idx]
		}
		bin = butterfly.In{
			LRe: s.imemRe[idx], LIm: s.imemIm[idx],
			RRe: in.Re, RIm: in.Im,
			CRe: c.Re, CIm: c.Im,
			Odd:   idx&1 == 1,
			Valid: true,
			Sync:  idx == 0,
		}
	}
	s.iaddr = (s.iaddr + 1) & (2*s.span - 1)

	bout := s.bfly.Step(bin)

	if !s.oactive {
		if !bout.Valid {
			return fixtypes.Sample{}, false
		}
		s.oactive = true
		s.oaddr = 0
	}

	oidx := int(s.oaddr & (s.span - 1))

	var out fixtypes.Sample
	if (s.oaddr>>uint(s.lgSpan))&1 == 0 {
		if !bout.Valid {
			panic("fixfft: stage output phase drifted from butterfly latency")
		}
		out = fixtypes.Sample{Re: bout.SumRe, Im: bout.SumIm, Sync: bout.Sync}
		s.omemRe[oidx] = bout.DiffRe
		s.omemIm[oidx] = bout.DiffIm
	} else {
		out = fixtypes.Sample{Re: s.omemRe[oidx], Im: s.omemIm[oidx]}
	}
	s.oaddr = (s.oaddr + 1) & (2*s.span - 1)

	return out, true
}

// Reset rearms the sync wait and clears the counters and the butterfly
// pipeline. The delay memories keep their contents.
func (s *Stage) Reset() {
	s.waitForSync = true
	s.iaddr = 0
	s.oactive = false
	s.oaddr = 0
	s.bfly.Reset()
}
