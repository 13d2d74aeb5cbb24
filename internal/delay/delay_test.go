package delay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineDelaysByDepth(t *testing.T) {
	t.Parallel()

	const depth = 5
	l := NewLine(depth)
	require.Equal(t, depth, l.Depth())

	for i := int64(0); i < 40; i++ {
		re, im := l.Step(i, -i)
		if i < depth {
			require.Equal(t, int64(0), re)
			require.Equal(t, int64(0), im)
			continue
		}
		require.Equal(t, i-depth, re)
		require.Equal(t, -(i - depth), im)
	}
}

func TestLineZeroDepthIsPassthrough(t *testing.T) {
	t.Parallel()

	l := NewLine(0)
	re, im := l.Step(42, -7)
	require.Equal(t, int64(42), re)
	require.Equal(t, int64(-7), im)
}

func TestLineReset(t *testing.T) {
	t.Parallel()

	l := NewLine(3)
	for i := int64(1); i <= 3; i++ {
		l.Step(i, i)
	}
	l.Reset()

	re, im := l.Step(9, 9)
	require.Equal(t, int64(0), re)
	require.Equal(t, int64(0), im)
}

func TestBitsDelaysByDepth(t *testing.T) {
	t.Parallel()

	const depth = 4
	b := NewBits(depth)
	require.Equal(t, depth, b.Depth())

	for i := 0; i < 30; i++ {
		out := b.Step(i%7 == 0)
		if i < depth {
			require.False(t, out)
			continue
		}
		require.Equal(t, (i-depth)%7 == 0, out)
	}
}

func TestBitsZeroDepthIsPassthrough(t *testing.T) {
	t.Parallel()

	b := NewBits(0)
	require.True(t, b.Step(true))
	require.False(t, b.Step(false))
}
