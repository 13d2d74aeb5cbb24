package bitrev

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/fixfft/internal/fixtypes"
)

// feedFrame streams one frame whose sample i carries bin ReverseBits(i)
// (the order a DIF chain emits), collecting whatever the buffer emits.
func feedFrame(t *testing.T, b *Buffer, n, frame int) []fixtypes.Sample {
	t.Helper()

	rev := Indices(n)

	var out []fixtypes.Sample
	for i := 0; i < n; i++ {
		in := fixtypes.Sample{
			Re:   int64(rev[i]),
			Im:   int64(frame),
			Sync: i == 0,
		}
		if o, ok := b.Step(in, true); ok {
			out = append(out, o)
		}
	}

	return out
}

func TestBufferRestoresNaturalOrder(t *testing.T) {
	t.Parallel()

	const n = 16
	b := NewBuffer(n)
	require.Equal(t, n+1, b.Latency())

	// First frame only fills a bank; nothing valid comes out.
	out := feedFrame(t, b, n, 0)
	require.Empty(t, out)

	// The second frame streams frame 0 back out in natural order,
	// delayed one cycle by the output register.
	out = feedFrame(t, b, n, 1)
	require.Len(t, out, n-1)
	for k, s := range out {
		require.Equal(t, int64(k), s.Re, "bin %d", k)
		require.Equal(t, int64(0), s.Im, "bin %d came from the wrong frame", k)
		require.Equal(t, k == 0, s.Sync, "bin %d sync", k)
	}

	// The third frame starts with frame 0's last bin, then frame 1.
	out = feedFrame(t, b, n, 2)
	require.Len(t, out, n)
	require.Equal(t, int64(n-1), out[0].Re)
	require.Equal(t, int64(0), out[0].Im)
	for k := 1; k < n; k++ {
		require.Equal(t, int64(k-1), out[k].Re, "bin %d", k-1)
		require.Equal(t, int64(1), out[k].Im)
		require.Equal(t, k == 1, out[k].Sync)
	}
}

func TestBufferIgnoresInputBeforeSync(t *testing.T) {
	t.Parallel()

	b := NewBuffer(8)
	for i := 0; i < 20; i++ {
		_, ok := b.Step(fixtypes.Sample{Re: 1}, true)
		require.False(t, ok)
	}

	// Still arms correctly afterwards.
	out := feedFrame(t, b, 8, 0)
	require.Empty(t, out)
	out = feedFrame(t, b, 8, 1)
	require.Len(t, out, 7)
	require.Equal(t, int64(0), out[0].Re)
}

func TestBufferReset(t *testing.T) {
	t.Parallel()

	const n = 8
	b := NewBuffer(n)
	feedFrame(t, b, n, 0)
	feedFrame(t, b, n, 1)

	b.Reset()

	// Back to the unprimed state: a full frame produces no output even
	// though the banks still hold stale data.
	out := feedFrame(t, b, n, 2)
	require.Empty(t, out)
}
