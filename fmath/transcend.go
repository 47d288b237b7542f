//go:build !fastmath

package fmath

import "math"

// Exp computes e**x using standard library math.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Log computes the natural logarithm using standard library math.
func Log(x float64) float64 {
	return math.Log(x)
}

// Sqrt computes sqrt(x) using standard library math.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}
