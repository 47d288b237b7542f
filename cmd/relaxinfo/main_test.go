package main

import (
	"math"
	"testing"
)

func TestGeneratorsProduceFiniteSignals(t *testing.T) {
	tests := []struct {
		name string
		gen  func(n int, seed int64) ([]float64, error)
	}{
		{name: "sine", gen: genSine},
		{name: "noise", gen: genNoise},
		{name: "alternating", gen: genAlternating},
		{name: "bandlimited", gen: genBandlimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := tt.gen(1000, 3)
			if err != nil {
				t.Fatalf("generator failed: %v", err)
			}
			if len(x) != 1000 {
				t.Fatalf("length = %d, want 1000", len(x))
			}
			for i, v := range x {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("index %d: non-finite value %v", i, v)
				}
			}
		})
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{1000, 1024},
		{1024, 1024},
	}

	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
