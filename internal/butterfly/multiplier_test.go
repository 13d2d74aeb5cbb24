package butterfly

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/fixfft/internal/fixmath"
)

func TestKaratsubaMatchesDirectProduct(t *testing.T) {
	t.Parallel()

	const aw, bw = 13, 11
	m := NewMultiplier(aw, bw)
	lat := m.Latency()

	rnd := rand.New(rand.NewSource(12345))
	type operand struct{ ar, ai, br, bi int64 }

	// Extremes first, then a random sample of the range.
	ops := []operand{
		{fixmath.MaxVal(aw), fixmath.MaxVal(aw), fixmath.MaxVal(bw), fixmath.MaxVal(bw)},
		{fixmath.MinVal(aw), fixmath.MinVal(aw), fixmath.MinVal(bw), fixmath.MinVal(bw)},
		{fixmath.MinVal(aw), fixmath.MaxVal(aw), fixmath.MaxVal(bw), fixmath.MinVal(bw)},
		{0, 0, 0, 0},
		{1, -1, -1, 1},
	}
	for i := 0; i < 500; i++ {
		ops = append(ops, operand{
			ar: rnd.Int63n(1<<aw) + fixmath.MinVal(aw),
			ai: rnd.Int63n(1<<aw) + fixmath.MinVal(aw),
			br: rnd.Int63n(1<<bw) + fixmath.MinVal(bw),
			bi: rnd.Int63n(1<<bw) + fixmath.MinVal(bw),
		})
	}

	for i := 0; i < len(ops)+lat; i++ {
		var in operand
		if i < len(ops) {
			in = ops[i]
		}

		re, im := m.Step(in.ar, in.ai, in.br, in.bi)
		if i < lat {
			continue
		}

		src := ops[i-lat]
		wantRe := src.ar*src.br - src.ai*src.bi
		wantIm := src.ar*src.bi + src.ai*src.br
		require.Equal(t, wantRe, re, "op %d real", i-lat)
		require.Equal(t, wantIm, im, "op %d imag", i-lat)
	}
}

func TestMulLatencyFormula(t *testing.T) {
	t.Parallel()

	// Two bits retired per cycle plus input and reconstruction registers.
	require.Equal(t, 6, MulLatency(8, 8))
	require.Equal(t, 7, MulLatency(9, 8))
	require.Equal(t, 7, MulLatency(3, 10))
	require.Equal(t, NewMultiplier(13, 11).Latency(), MulLatency(13, 11))
}
