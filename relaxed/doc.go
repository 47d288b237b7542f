// Package relaxed provides a value wrapper around float32 and float64 whose
// arithmetic opts into relaxed ("fast-math") semantics: operands are assumed
// finite, NaN propagation and signed-zero distinctions are not guaranteed,
// and chains of operations may be reassociated. Wrapping a value selects
// these semantics locally, per value, instead of globally for a whole build.
//
// Only the five binary operators (Add, Sub, Mul, Div, Rem) and their
// variants carry the relaxed contract. Everything else on Float — rounding,
// transcendental functions, classification, bit conversions, comparisons,
// formatting — delegates unchanged to the primitive's own IEEE-754
// behavior, so for example Sqrt of a negative value still yields NaN.
//
// The finite-operand precondition of the relaxed operators is a caller
// obligation, not a checked error: violating it gives an unspecified
// result. Builds with the finitecheck tag turn a violation into a panic
// for debugging; default builds carry no check.
package relaxed
