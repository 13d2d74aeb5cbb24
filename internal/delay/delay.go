// Package delay implements the fixed-depth delay lines that keep the
// pipeline's data paths and valid/sync tokens aligned. Every line is an
// owned array advanced exactly once per accepted cycle; the write cursor
// leads the read position by the line's depth by construction.
package delay

// Line delays a pair of int64 values by a fixed number of cycles.
// A depth of zero is a passthrough.
type Line struct {
	re  []int64
	im  []int64
	pos int
}

// NewLine returns a Line of the given depth. Depth must be >= 0.
func NewLine(depth int) *Line {
	return &Line{
		re: make([]int64, depth),
		im: make([]int64, depth),
	}
}

// Depth returns the line's delay in cycles.
func (l *Line) Depth() int {
	return len(l.re)
}

// Step pushes (re, im) into the line and returns the pair pushed
// Depth() calls earlier.
func (l *Line) Step(re, im int64) (int64, int64) {
	if len(l.re) == 0 {
		return re, im
	}

	ore, oim := l.re[l.pos], l.im[l.pos]
	l.re[l.pos], l.im[l.pos] = re, im
	l.pos++
	if l.pos == len(l.re) {
		l.pos = 0
	}

	return ore, oim
}

// Reset zeroes the line's contents and cursor.
func (l *Line) Reset() {
	for i := range l.re {
		l.re[i] = 0
		l.im[i] = 0
	}
	l.pos = 0
}

// Bits delays a single bit by a fixed number of cycles. It carries the
// valid and frame-sync tokens alongside the data registers so that a
// component of latency L emits its token exactly L cycles after it
// entered, independent of the data values.
type Bits struct {
	b   []bool
	pos int
}

// NewBits returns a Bits line of the given depth. Depth must be >= 0.
func NewBits(depth int) *Bits {
	return &Bits{b: make([]bool, depth)}
}

// Depth returns the line's delay in cycles.
func (s *Bits) Depth() int {
	return len(s.b)
}

// Step pushes in and returns the bit pushed Depth() calls earlier.
func (s *Bits) Step(in bool) bool {
	if len(s.b) == 0 {
		return in
	}

	out := s.b[s.pos]
	s.b[s.pos] = in
	s.pos++
	if s.pos == len(s.b) {
		s.pos = 0
	}

	return out
}

// Reset clears the line's contents and cursor.
func (s *Bits) Reset() {
	for i := range s.b {
		s.b[i] = false
	}
	s.pos = 0
}
