package vec

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-relaxed/internal/finite"
)

// Sum returns the sum of x, accumulated in four interleaved partial
// sums. Returns 0 for an empty slice.
//
// Precondition: all elements are finite. See the package documentation.
func Sum(x []float64) float64 {
	finite.AssertSlice("sum", x)

	var s0, s1, s2, s3 float64
	n := len(x) &^ 3
	for i := 0; i < n; i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}

	s := (s0 + s2) + (s1 + s3)
	for _, v := range x[n:] {
		s += v
	}
	return s
}

// Dot returns the dot product of a and b: sum(a[i] * b[i]), accumulated
// in four interleaved partial sums. Only the minimum length of the two
// slices is used; returns 0 if either slice is empty.
//
// Precondition: all elements are finite.
func Dot(a, b []float64) float64 {
	finite.AssertSlice("dot", a)
	finite.AssertSlice("dot", b)

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var s0, s1, s2, s3 float64
	m := n &^ 3
	for i := 0; i < m; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}

	s := (s0 + s2) + (s1 + s3)
	for i := m; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// SumSquares returns sum(x[i] * x[i]), accumulated in four interleaved
// partial sums. Returns 0 for an empty slice.
//
// Precondition: all elements are finite.
func SumSquares(x []float64) float64 {
	finite.AssertSlice("sumsquares", x)

	var s0, s1, s2, s3 float64
	n := len(x) &^ 3
	for i := 0; i < n; i += 4 {
		s0 += x[i] * x[i]
		s1 += x[i+1] * x[i+1]
		s2 += x[i+2] * x[i+2]
		s3 += x[i+3] * x[i+3]
	}

	s := (s0 + s2) + (s1 + s3)
	for _, v := range x[n:] {
		s += v * v
	}
	return s
}

// Scale computes dst[i] = src[i] * k using the SIMD kernels from
// algo-vecmath. Panics if lengths differ.
func Scale(dst, src []float64, k float64) {
	finite.AssertSlice("scale", src)
	vecmath.ScaleBlock(dst, src, k)
}

// Mul computes dst[i] = a[i] * b[i] using the SIMD kernels from
// algo-vecmath. Panics if lengths differ.
func Mul(dst, a, b []float64) {
	finite.AssertSlice("mul", a)
	finite.AssertSlice("mul", b)
	vecmath.MulBlock(dst, a, b)
}

// Accumulate computes dst[i] += src[i] using the SIMD kernels from
// algo-vecmath. Panics if lengths differ.
func Accumulate(dst, src []float64) {
	finite.AssertSlice("accumulate", dst)
	finite.AssertSlice("accumulate", src)
	vecmath.AddBlockInPlace(dst, src)
}
