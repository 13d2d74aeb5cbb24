package fixfft

import "github.com/cwbudde/fixfft/internal/fixmath"

// Pack returns the sample as a 2w-bit word with the real part in the
// high w bits and the imaginary part in the low w bits, the packed
// layout used on the sample buses.
func Pack(s Sample, w int) uint64 {
	mask := (uint64(1) << uint(w)) - 1

	return (uint64(s.Re)&mask)<<uint(w) | uint64(s.Im)&mask
}

// Unpack splits a packed 2w-bit word back into a sign-extended Sample.
// The sync bit travels out of band and is left false.
func Unpack(word uint64, w int) Sample {
	return Sample{
		Re: fixmath.SignExtend(int64(word>>uint(w)), w),
		Im: fixmath.SignExtend(int64(word), w),
	}
}
