// Command relaxinfo compares strict sequential float64 reductions with
// their relaxed, reassociated counterparts on generated test signals.
//
// Usage:
//
//	relaxinfo [flags] [signal-name ...]
//
// Without arguments it reports on all known signals.
//
// Examples:
//
//	relaxinfo sine
//	relaxinfo -n 65536 noise alternating
//	relaxinfo -seed 7 bandlimited
//	relaxinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-relaxed/internal/testutil"
	"github.com/cwbudde/algo-relaxed/relaxed"
	"github.com/cwbudde/algo-relaxed/vec"
)

type signalEntry struct {
	name string
	desc string
	gen  func(n int, seed int64) ([]float64, error)
}

var registry = []signalEntry{
	{"sine", "1 kHz sine sampled at 48 kHz", genSine},
	{"noise", "uniform white noise in [-1, 1]", genNoise},
	{"alternating", "ill-conditioned alternating large values", genAlternating},
	{"bandlimited", "band-limited noise via inverse FFT", genBandlimited},
}

func main() {
	n := flag.Int("n", 4096, "signal length in samples")
	seed := flag.Int64("seed", 1, "seed for random signal generation")
	all := flag.Bool("all", false, "show all signals")
	list := flag.Bool("list", false, "list available signal names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: relaxinfo [flags] [signal-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Compares strict sequential reductions with relaxed (reassociated) ones.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, reports on all signals.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  relaxinfo sine noise\n")
		fmt.Fprintf(os.Stderr, "  relaxinfo -n 65536 alternating\n")
		fmt.Fprintf(os.Stderr, "  relaxinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching signals\n")
		os.Exit(1)
	}

	printReport(entries, *n, *seed)
}

func printList() {
	entries := append([]signalEntry(nil), registry...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	for _, e := range entries {
		fmt.Printf("%-12s %s\n", e.name, e.desc)
	}
}

func resolveEntries(names []string) []signalEntry {
	byName := make(map[string]signalEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []signalEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown signal %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printReport(entries []signalEntry, n int, seed int64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Signal\tN\tKernel\tStrict\tRelaxed\tAbs Diff\tRel Diff\n")
	fmt.Fprintf(tw, "------\t-\t------\t------\t-------\t--------\t--------\n")

	for _, e := range entries {
		x, err := e.gen(n, seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: generating %s: %v\n", e.name, err)
			os.Exit(1)
		}

		writeRow(tw, e.name, len(x), "sum", seqSum(x), vec.Sum(x))
		writeRow(tw, e.name, len(x), "sum/wrapper", seqSum(x), foldSum(x))
		writeRow(tw, e.name, len(x), "dot", seqDot(x, x), vec.Dot(x, x))
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func writeRow(tw *tabwriter.Writer, signal string, n int, kernel string, strict, rel float64) {
	abs := math.Abs(strict - rel)
	relDiff := 0.0
	if strict != 0 {
		relDiff = abs / math.Abs(strict)
	}
	fmt.Fprintf(tw, "%s\t%d\t%s\t%.9g\t%.9g\t%.3g\t%.3g\n", signal, n, kernel, strict, rel, abs, relDiff)
}

// foldSum accumulates through the relaxed wrapper, one Add per element.
func foldSum(x []float64) float64 {
	acc := relaxed.Zero[float64]()
	for _, v := range x {
		acc = acc.Add(v)
	}
	return acc.Get()
}

func seqSum(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v
	}
	return s
}

func seqDot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func genSine(n int, _ int64) ([]float64, error) {
	return testutil.DeterministicSine(1000, 48000, 1, n), nil
}

func genNoise(n int, seed int64) ([]float64, error) {
	return testutil.DeterministicNoise(seed, 1, n), nil
}

func genAlternating(n int, _ int64) ([]float64, error) {
	return testutil.Alternating(n), nil
}

// genBandlimited synthesizes band-limited noise by filling the lowest
// eighth of an FFT spectrum with unit-magnitude random phases and
// transforming back to the time domain.
func genBandlimited(n int, seed int64) ([]float64, error) {
	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("relaxinfo: failed to create FFT plan: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	spectrum := make([]complex128, fftSize)
	for k := 1; k <= fftSize/8; k++ {
		phase := rng.Float64() * 2 * math.Pi
		c := complex(math.Cos(phase), math.Sin(phase))
		spectrum[k] = c
		spectrum[fftSize-k] = complex(real(c), -imag(c))
	}

	timeDomain := make([]complex128, fftSize)
	if err := plan.Inverse(timeDomain, spectrum); err != nil {
		return nil, fmt.Errorf("relaxinfo: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(timeDomain[i])
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
