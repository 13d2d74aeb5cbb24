// Package twiddle generates the fixed-point coefficient tables consumed
// by the pipeline stages. Generation is a configuration-time concern;
// the stages themselves only ever index a fully populated table.
package twiddle

import (
	"math"

	"github.com/cwbudde/fixfft/internal/fixtypes"
)

// Scale returns the fixed-point scale factor of a cw-bit coefficient,
// 2^(cw-2). The two headroom bits let the table represent +1.0 exactly
// without overflowing the signed range.
func Scale(cw int) int64 {
	return int64(1) << uint(cw-2)
}

// Table returns the span coefficients for a stage operating on
// sub-transforms of size 2*span:
//
//	coef[k] = round(e^(-j*pi*k/span) * 2^(cw-2))   k = 0..span-1
//
// quantized with round-half-to-even, matching the datapath's rounding
// discipline. inverse conjugates the table.
func Table(span, cw int, inverse bool) []fixtypes.Coef {
	if span <= 0 {
		return nil
	}

	scale := float64(Scale(cw))
	table := make([]fixtypes.Coef, span)

	for k := range table {
		angle := -math.Pi * float64(k) / float64(span)
		if inverse {
			angle = -angle
		}

		table[k] = fixtypes.Coef{
			Re: int64(math.RoundToEven(scale * math.Cos(angle))),
			Im: int64(math.RoundToEven(scale * math.Sin(angle))),
		}
	}

	return table
}
