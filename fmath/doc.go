// Package fmath exposes the relaxed binary operations as named functions
// on bare float primitives, for callers that want the explicit per-call
// precondition marker without introducing a wrapper value. It is a thin
// façade over the same relaxed primitives as package relaxed and carries
// the identical finite-operand precondition.
//
// The package also provides float64 transcendental helpers (Exp, Log,
// Sqrt) that default to the standard library and switch to fast
// approximations from algo-approx when built with -tags fastmath.
package fmath
