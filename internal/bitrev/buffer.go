package bitrev

import "github.com/cwbudde/fixfft/internal/fixtypes"

// Buffer reorders one frame of bit-reversed samples into natural order
// using two ping-pong memory banks, so the frame currently arriving is
// written while the previously completed frame is read out, with no
// stall. The write address is a linear counter; the read address is the
// same counter with its low bits bit-reversed and the bank-select bit
// inverted. One output register absorbs the bank read, so the first
// natural-order bin emerges n+1 accepted cycles after the frame's first
// input sample.
//
// The first frame after reset only fills the write bank; no output is
// valid until it completes.
type Buffer struct {
	n    int
	bits int
	rev  []int

	bankRe [2][]int64
	bankIm [2][]int64

	waitForSync bool
	addr        uint32
	primed      bool
	outReg      fixtypes.Sample
	outOk       bool
}

// NewBuffer returns a Buffer for frames of n samples. n must be a
// power of two; the caller validates.
func NewBuffer(n int) *Buffer {
	b := &Buffer{
		n:           n,
		bits:        Log2(n),
		rev:         Indices(n),
		waitForSync: true,
	}
	for i := range b.bankRe {
		b.bankRe[i] = make([]int64, n)
		b.bankIm[i] = make([]int64, n)
	}

	return b
}

// Latency returns the fill-plus-register delay from a frame's first
// input sample to its first natural-order output sample.
func (b *Buffer) Latency() int {
	return b.n + 1
}

// Step accepts one sample (when ok) and returns the registered
// natural-order output sample, if any.
func (b *Buffer) Step(in fixtypes.Sample, ok bool) (fixtypes.Sample, bool) {
	if !ok {
		return fixtypes.Sample{}, false
	}

	if b.waitForSync {
		if !in.Sync {
			return fixtypes.Sample{}, false
		}
		b.waitForSync = false
		b.addr = 0
	}

	idx := int(b.addr) & (b.n - 1)
	wr := (b.addr >> uint(b.bits)) & 1
	rd := wr ^ 1

	b.bankRe[wr][idx] = in.Re
	b.bankIm[wr][idx] = in.Im

	ridx := b.rev[idx]
	out, outOk := b.outReg, b.outOk
	b.outReg = fixtypes.Sample{
		Re:   b.bankRe[rd][ridx],
		Im:   b.bankIm[rd][ridx],
		Sync: idx == 0,
	}
	b.outOk = b.primed

	b.addr = (b.addr + 1) & uint32(2*b.n-1)
	if b.addr == uint32(b.n) {
		b.primed = true
	}

	return out, outOk
}

// Reset clears the counters and output register. The banks keep their
// contents; the valid tracking prevents stale data from being observed.
func (b *Buffer) Reset() {
	b.waitForSync = true
	b.addr = 0
	b.primed = false
	b.outReg = fixtypes.Sample{}
	b.outOk = false
}
