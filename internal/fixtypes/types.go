// Package fixtypes holds the value types shared between the pipeline
// packages. The canonical definitions live here; the root package
// re-exports them.
package fixtypes

// Sample is one complex fixed-point sample travelling through the
// pipeline. Re and Im are sign-extended two's-complement values whose
// width is carried by the surrounding configuration, not by the type.
// Sync marks the sample as index 0 of a transform frame.
type Sample struct {
	Re   int64
	Im   int64
	Sync bool
}

// Coef is one twiddle coefficient, e^(-j*2*pi*k/N) scaled by
// 2^(cw-2) for a coefficient width of cw bits.
type Coef struct {
	Re int64
	Im int64
}
