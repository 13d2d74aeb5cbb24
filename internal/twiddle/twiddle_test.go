package twiddle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableMatchesQuantizedReference(t *testing.T) {
	t.Parallel()

	const span, cw = 16, 12
	scale := float64(Scale(cw))

	table := Table(span, cw, false)
	require.Len(t, table, span)

	for k, c := range table {
		angle := -math.Pi * float64(k) / float64(span)
		require.Equal(t, int64(math.RoundToEven(scale*math.Cos(angle))), c.Re, "k=%d re", k)
		require.Equal(t, int64(math.RoundToEven(scale*math.Sin(angle))), c.Im, "k=%d im", k)
	}
}

func TestTableAnchorEntries(t *testing.T) {
	t.Parallel()

	const cw = 10
	scale := Scale(cw)

	table := Table(4, cw, false)
	require.Equal(t, []int64{scale, 0}, []int64{table[0].Re, table[0].Im})
	require.Equal(t, []int64{0, -scale}, []int64{table[2].Re, table[2].Im})

	// e^(-j*pi/4): both components quantize to round(scale/sqrt(2)).
	half := int64(math.RoundToEven(float64(scale) / math.Sqrt2))
	require.Equal(t, half, table[1].Re)
	require.Equal(t, -half, table[1].Im)
}

func TestInverseTableIsConjugate(t *testing.T) {
	t.Parallel()

	fwd := Table(8, 14, false)
	inv := Table(8, 14, true)

	for k := range fwd {
		require.Equal(t, fwd[k].Re, inv[k].Re, "k=%d", k)
		require.Equal(t, -fwd[k].Im, inv[k].Im, "k=%d", k)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(256), Scale(10))
}
