package fixfft

import "errors"

// Sentinel errors returned by configuration and input validation.
// The datapath itself has no runtime error channel; once a Core is
// built, Step never fails.
var (
	// ErrInvalidLength is returned when the transform size is not a
	// power of two >= 4.
	ErrInvalidLength = errors.New("fixfft: invalid FFT length")

	// ErrBadWidth is returned when a configured sample or coefficient
	// width is out of range.
	ErrBadWidth = errors.New("fixfft: invalid fixed-point width")

	// ErrWidthOverflow is returned when a stage's operand widths would
	// overflow the int64 product budget.
	ErrWidthOverflow = errors.New("fixfft: stage widths exceed product budget")

	// ErrBadChain is returned when the stage list does not form a
	// monotonically halving span chain covering the transform size.
	ErrBadChain = errors.New("fixfft: malformed stage chain")

	// ErrBadGrowth is returned when adjacent stages' sample widths do
	// not chain, or a stage grows by more than one bit.
	ErrBadGrowth = errors.New("fixfft: stage width growth not chained")

	// ErrBadTable is returned when a butterfly stage's coefficient
	// table is missing, mis-sized, or holds values outside the
	// coefficient width.
	ErrBadTable = errors.New("fixfft: invalid coefficient table")

	// ErrRange is reported via Core.Err when an input sample exceeds
	// the configured input width. The sample is wrapped to width and
	// processed; the error is sticky.
	ErrRange = errors.New("fixfft: input sample out of range")

	// ErrSyncMisaligned is reported via Core.Err when a sync pulse
	// arrives on a cycle that is not frame index 0. The pipeline keeps
	// its own frame tracking; the error is sticky.
	ErrSyncMisaligned = errors.New("fixfft: sync pulse misaligned with frame")
)
