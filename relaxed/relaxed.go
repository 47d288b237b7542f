package relaxed

import "golang.org/x/exp/constraints"

// Float is a transparent wrapper holding exactly one floating-point value.
// It enforces no invariant: any bit pattern of F, including NaN, ±0, ±Inf
// and subnormals, is a legal value, and the in-memory layout is identical
// to F. The zero value holds positive zero.
//
// Float selects relaxed semantics for its arithmetic methods only; see the
// package documentation.
type Float[F constraints.Float] struct {
	v F
}

// F32 is the 32-bit instantiation of Float.
type F32 = Float[float32]

// F64 is the 64-bit instantiation of Float.
type F64 = Float[float64]

// Wrap returns a Float holding exactly x, bit for bit.
func Wrap[F constraints.Float](x F) Float[F] {
	return Float[F]{v: x}
}

// Get returns the held value unchanged.
func (x Float[F]) Get() F {
	return x.v
}

// Zero returns the additive identity (positive zero).
func Zero[F constraints.Float]() Float[F] {
	return Float[F]{}
}

// IsZero reports whether the held value is zero. Both positive and
// negative zero qualify; everything else, including NaN, does not.
func (x Float[F]) IsZero() bool {
	return x.v == 0
}

// Eq reports whether the held value compares IEEE-equal to rhs.
// NaN compares unequal to everything, including itself.
func (x Float[F]) Eq(rhs F) bool { return x.v == rhs }

// Ne reports whether the held value compares IEEE-unequal to rhs.
func (x Float[F]) Ne(rhs F) bool { return x.v != rhs }

// Lt reports whether the held value is less than rhs.
func (x Float[F]) Lt(rhs F) bool { return x.v < rhs }

// Le reports whether the held value is less than or equal to rhs.
func (x Float[F]) Le(rhs F) bool { return x.v <= rhs }

// Gt reports whether the held value is greater than rhs.
func (x Float[F]) Gt(rhs F) bool { return x.v > rhs }

// Ge reports whether the held value is greater than or equal to rhs.
func (x Float[F]) Ge(rhs F) bool { return x.v >= rhs }
