// Package fixfft implements a streaming, fixed-point, radix-2
// decimation-in-frequency FFT pipeline: one complex sample in per
// cycle, one natural-order frequency bin out per cycle after a fixed
// fill latency.
//
// The pipeline is a chain of single-path delay-feedback stages with
// monotonically halving span, each owning a span-deep delay memory, a
// twiddle coefficient table and a fixed-latency butterfly (Karatsuba-3
// complex multiply on the general stages, sign/swap rotation on the
// span-2 stage, pure add/sub on the span-1 stage), followed by a
// ping-pong bit-reversal buffer that restores natural bin order. Every
// width reduction uses convergent (round-half-to-even) rounding to
// avoid systematic bias across the many stages.
//
// All arithmetic is signed two's-complement at configuration-selected
// widths; the transform size is a power of two fixed at configuration
// time. There are no goroutines and no runtime failure modes: Core.Step
// is a plain function of state, and every latency constant and delay
// depth is derived from the same width formulas when the Core is built.
//
// Basic use:
//
//	cfg, err := fixfft.DefaultConfig(4096, 12, 16, false)
//	if err != nil { ... }
//	core, err := fixfft.New(cfg)
//	if err != nil { ... }
//
//	for i, x := range samples {
//		out, ok := core.Step(fixfft.Sample{Re: x.Re, Im: x.Im, Sync: i == 0})
//		if ok {
//			// out.Sync marks bin 0 of a completed frame.
//		}
//	}
package fixfft
