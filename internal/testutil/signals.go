package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freq, rate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freq / rate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp generates the integer-valued sequence 0, 1, ..., length-1.
// Integer-valued data keeps reassociated reductions bit-exact, which
// the reduction tests rely on.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Alternating generates an ill-conditioned series of large values with
// alternating sign plus small offsets, so that summation order is
// visible in the result.
func Alternating(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		big := 1e8
		if i%2 == 1 {
			big = -1e8
		}
		out[i] = big + float64(i%7)*1e-3
	}
	return out
}
