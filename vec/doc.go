// Package vec provides relaxed bulk operations on []float64 slices.
//
// The reductions (Sum, Dot, SumSquares) accumulate through interleaved
// partial sums, so their evaluation order differs from a sequential
// loop — the reassociation the relaxed contract permits, applied for
// real. The element-wise operations delegate to the SIMD kernels in
// algo-vecmath.
//
// All functions share the finite-operand precondition of the relaxed
// arithmetic: elements are assumed finite, and builds with the
// finitecheck tag panic on violations.
package vec
