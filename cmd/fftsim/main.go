// Command fftsim drives the streaming fixed-point FFT core with
// synthetic stimulus (impulse, DC, or a single tone) and reports the
// resulting spectrum together with the measured pipeline latency.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"

	"github.com/alecthomas/kingpin/v2"

	fixfft "github.com/cwbudde/fixfft"
)

func main() {
	app := kingpin.New("fftsim", "Simulate the streaming fixed-point FFT core.")

	var (
		size       = app.Flag("size", "Transform size (power of two >= 4).").Default("1024").Int()
		inputWidth = app.Flag("input-width", "Input sample width in bits.").Default("12").Int()
		coefWidth  = app.Flag("coef-width", "Twiddle coefficient width in bits.").Default("16").Int()
		stimulus   = app.Flag("stimulus", "Stimulus type.").Default("tone").Enum("impulse", "dc", "tone")
		bin        = app.Flag("bin", "Tone frequency bin.").Default("7").Int()
		amplitude  = app.Flag("amplitude", "Stimulus amplitude.").Default("1000").Int64()
		inverse    = app.Flag("inverse", "Run the inverse transform.").Bool()
		top        = app.Flag("top", "Print only the strongest bins (0 = all).").Default("8").Int()
		logLevel   = app.Flag("log.level", "Log level.").Default("info").Enum("debug", "info", "warn", "error")
	)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(*logLevel)

	cfg, err := fixfft.DefaultConfig(*size, *inputWidth, *coefWidth, *inverse)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	core, err := fixfft.New(cfg)
	if err != nil {
		logger.Error("building core", "err", err)
		os.Exit(1)
	}

	logger.Info("core built",
		"size", core.Size(),
		"input_width", *inputWidth,
		"coef_width", *coefWidth,
		"output_width", core.OutputWidth(),
		"latency", core.Latency(),
	)

	frame := makeStimulus(*stimulus, *size, *bin, *amplitude)

	spectrum, measured := run(core, frame)
	if measured != core.Latency() {
		logger.Error("measured latency disagrees with computed latency",
			"measured", measured, "computed", core.Latency())
		os.Exit(1)
	}
	if err := core.Err(); err != nil {
		logger.Error("protocol error", "err", err)
		os.Exit(1)
	}

	logger.Debug("frame captured", "measured_latency", measured)
	report(spectrum, *top)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func makeStimulus(kind string, n, bin int, amp int64) []fixfft.Sample {
	frame := make([]fixfft.Sample, n)
	switch kind {
	case "impulse":
		frame[0].Re = amp
	case "dc":
		for i := range frame {
			frame[i].Re = amp
		}
	default: // tone
		for i := range frame {
			phase := 2 * math.Pi * float64(bin) * float64(i) / float64(n)
			frame[i].Re = int64(math.RoundToEven(float64(amp) * math.Cos(phase)))
		}
	}
	frame[0].Sync = true

	return frame
}

// run streams repeated copies of frame into the core until one full
// output frame is captured, returning the frame and the cycle count
// from the first input to the first output sync.
func run(core *fixfft.Core, frame []fixfft.Sample) ([]fixfft.Sample, int) {
	n := len(frame)
	out := make([]fixfft.Sample, 0, n)
	measured := -1

	for cycle := 0; ; cycle++ {
		in := frame[cycle%n]
		in.Sync = cycle%n == 0

		o, ok := core.Step(in)
		if !ok {
			continue
		}
		if measured < 0 {
			if !o.Sync {
				continue
			}
			measured = cycle
		}

		out = append(out, o)
		if len(out) == n {
			return out, measured
		}
	}
}

func report(spectrum []fixfft.Sample, top int) {
	type entry struct {
		bin int
		mag float64
	}

	entries := make([]entry, len(spectrum))
	for i, s := range spectrum {
		entries[i] = entry{bin: i, mag: math.Hypot(float64(s.Re), float64(s.Im))}
	}

	if top > 0 && top < len(entries) {
		sort.Slice(entries, func(i, j int) bool { return entries[i].mag > entries[j].mag })
		entries = entries[:top]
		sort.Slice(entries, func(i, j int) bool { return entries[i].bin < entries[j].bin })
	}

	fmt.Printf("%8s  %14s  %14s  %14s\n", "bin", "re", "im", "mag")
	for _, e := range entries {
		s := spectrum[e.bin]
		fmt.Printf("%8d  %14d  %14d  %14.1f\n", e.bin, s.Re, s.Im, e.mag)
	}
}
