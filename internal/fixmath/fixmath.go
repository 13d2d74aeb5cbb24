// Package fixmath provides the signed fixed-point helpers used at every
// width-reduction point in the pipeline: convergent (round-half-to-even)
// rounding, sign extension, and width fit checks.
package fixmath

// SignExtend interprets the low w bits of x as a signed two's-complement
// value and returns it sign-extended to int64. Bits above w are ignored,
// so SignExtend also serves as the wraparound mask for w-bit arithmetic.
func SignExtend(x int64, w int) int64 {
	sh := uint(64 - w)
	return x << sh >> sh
}

// Fits reports whether x is representable as a signed w-bit value.
func Fits(x int64, w int) bool {
	return SignExtend(x, w) == x
}

// MaxVal returns the largest signed w-bit value.
func MaxVal(w int) int64 {
	return (int64(1) << uint(w-1)) - 1
}

// MinVal returns the smallest signed w-bit value.
func MinVal(w int) int64 {
	return -(int64(1) << uint(w-1))
}

// Round width-reduces a signed iw-bit value to ow bits with convergent
// (round-half-to-even) rounding. shift low bits are discarded first
// without rounding (pure rescaling; the callers only use it where those
// bits are known zero), then the remaining iw-shift-ow bits are rounded
// away: the most significant dropped bit is the guard (exactly one half)
// and the OR of the rest is the sticky (strictly more than one half when
// set). Guard set with sticky clear is a tie and resolves toward an even
// result.
//
// The round-up increment wraps in two's complement at the positive
// extreme rather than saturating; the result is masked back to ow bits.
// All case selection is static in the parameters, never in the data.
func Round(x int64, iw, ow, shift int) int64 {
	if iw == ow {
		return x
	}

	y := x >> uint(shift)
	drop := iw - shift - ow

	switch {
	case drop <= 0:
		// Growing or exact: nothing to round.
		return y

	case drop == 1:
		t := y >> 1
		if y&1 == 1 && t&1 == 1 {
			t++
		}
		return SignExtend(t, ow)

	default:
		t := y >> uint(drop)
		guard := (y >> uint(drop-1)) & 1
		sticky := y & ((int64(1) << uint(drop-1)) - 1)
		if guard == 1 && (sticky != 0 || t&1 == 1) {
			t++
		}
		return SignExtend(t, ow)
	}
}
