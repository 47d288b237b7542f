package relaxed

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-relaxed/internal/finite"
)

// The five methods below are the canonical relaxed operations: each one is
// the single place holding the relaxed primitive call and the finite-operand
// precondition. All other operand arrangements dispatch here.

// Add returns a wrapper holding x + rhs under the relaxed contract.
//
// Precondition: both operands are finite (not NaN, not infinite). A
// violation gives an unspecified result rather than a reported error;
// builds with the finitecheck tag panic instead. Chains of relaxed
// operations may be reassociated, so summation order is not guaranteed.
func (x Float[F]) Add(rhs F) Float[F] {
	finite.Assert("add", x.v, rhs)
	return Float[F]{v: x.v + rhs}
}

// Sub returns a wrapper holding x - rhs under the relaxed contract.
// Same precondition as Add.
func (x Float[F]) Sub(rhs F) Float[F] {
	finite.Assert("sub", x.v, rhs)
	return Float[F]{v: x.v - rhs}
}

// Mul returns a wrapper holding x * rhs under the relaxed contract.
// Same precondition as Add.
func (x Float[F]) Mul(rhs F) Float[F] {
	finite.Assert("mul", x.v, rhs)
	return Float[F]{v: x.v * rhs}
}

// Div returns a wrapper holding x / rhs under the relaxed contract.
// Same precondition as Add.
func (x Float[F]) Div(rhs F) Float[F] {
	finite.Assert("div", x.v, rhs)
	return Float[F]{v: x.v / rhs}
}

// Rem returns a wrapper holding the truncated remainder of x / rhs under
// the relaxed contract. Same precondition as Add.
func (x Float[F]) Rem(rhs F) Float[F] {
	finite.Assert("rem", x.v, rhs)
	return Float[F]{v: F(math.Mod(float64(x.v), float64(rhs)))}
}

// AddFloat is Add with a wrapped right operand.
func (x Float[F]) AddFloat(rhs Float[F]) Float[F] { return x.Add(rhs.v) }

// SubFloat is Sub with a wrapped right operand.
func (x Float[F]) SubFloat(rhs Float[F]) Float[F] { return x.Sub(rhs.v) }

// MulFloat is Mul with a wrapped right operand.
func (x Float[F]) MulFloat(rhs Float[F]) Float[F] { return x.Mul(rhs.v) }

// DivFloat is Div with a wrapped right operand.
func (x Float[F]) DivFloat(rhs Float[F]) Float[F] { return x.Div(rhs.v) }

// RemFloat is Rem with a wrapped right operand.
func (x Float[F]) RemFloat(rhs Float[F]) Float[F] { return x.Rem(rhs.v) }

// Add computes lhs + rhs with a bare primitive on the left, wrapping the
// left operand and dispatching to Float.Add. Same relaxed contract.
func Add[F constraints.Float](lhs F, rhs Float[F]) Float[F] {
	return Wrap(lhs).AddFloat(rhs)
}

// Sub computes lhs - rhs with a bare primitive on the left.
func Sub[F constraints.Float](lhs F, rhs Float[F]) Float[F] {
	return Wrap(lhs).SubFloat(rhs)
}

// Mul computes lhs * rhs with a bare primitive on the left.
func Mul[F constraints.Float](lhs F, rhs Float[F]) Float[F] {
	return Wrap(lhs).MulFloat(rhs)
}

// Div computes lhs / rhs with a bare primitive on the left.
func Div[F constraints.Float](lhs F, rhs Float[F]) Float[F] {
	return Wrap(lhs).DivFloat(rhs)
}

// Rem computes the truncated remainder of lhs / rhs with a bare primitive
// on the left.
func Rem[F constraints.Float](lhs F, rhs Float[F]) Float[F] {
	return Wrap(lhs).RemFloat(rhs)
}

// The in-place forms replace the held value with the result of the plain
// operator. They are pure composition and add no contract of their own.

// AddInPlace replaces the held value with x + rhs.
func (x *Float[F]) AddInPlace(rhs F) { *x = x.Add(rhs) }

// SubInPlace replaces the held value with x - rhs.
func (x *Float[F]) SubInPlace(rhs F) { *x = x.Sub(rhs) }

// MulInPlace replaces the held value with x * rhs.
func (x *Float[F]) MulInPlace(rhs F) { *x = x.Mul(rhs) }

// DivInPlace replaces the held value with x / rhs.
func (x *Float[F]) DivInPlace(rhs F) { *x = x.Div(rhs) }

// RemInPlace replaces the held value with the truncated remainder of
// x / rhs.
func (x *Float[F]) RemInPlace(rhs F) { *x = x.Rem(rhs) }
