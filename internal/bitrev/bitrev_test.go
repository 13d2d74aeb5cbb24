package bitrev

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverseBits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		x, bits, want int
	}{
		{0, 3, 0},
		{1, 3, 4},
		{6, 3, 3},
		{5, 3, 5},
		{1, 4, 8},
		{0b1011, 4, 0b1101},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, ReverseBits(tc.x, tc.bits), "ReverseBits(%d,%d)", tc.x, tc.bits)
	}
}

func TestIndicesIsAnInvolution(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 8, 16, 64, 256} {
		idx := Indices(n)
		require.Len(t, idx, n)

		seen := make(map[int]bool, n)
		for i, r := range idx {
			require.Equal(t, i, idx[r], "n=%d: reversal must be its own inverse", n)
			seen[r] = true
		}
		require.Len(t, seen, n, "n=%d: must be a permutation", n)
	}
}

func TestLog2AndIsPowerOf2(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, Log2(1))
	require.Equal(t, 5, Log2(32))
	require.True(t, IsPowerOf2(64))
	require.False(t, IsPowerOf2(48))
	require.False(t, IsPowerOf2(0))
}
