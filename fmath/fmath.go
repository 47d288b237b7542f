package fmath

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-relaxed/internal/finite"
)

// Add returns a + b under the relaxed contract.
//
// Precondition: both operands are finite (not NaN, not infinite). A
// violation gives an unspecified result; builds with the finitecheck tag
// panic instead.
func Add[F constraints.Float](a, b F) F {
	finite.Assert("add", a, b)
	return a + b
}

// Sub returns a - b under the relaxed contract. Same precondition as Add.
func Sub[F constraints.Float](a, b F) F {
	finite.Assert("sub", a, b)
	return a - b
}

// Mul returns a * b under the relaxed contract. Same precondition as Add.
func Mul[F constraints.Float](a, b F) F {
	finite.Assert("mul", a, b)
	return a * b
}

// Div returns a / b under the relaxed contract. Same precondition as Add.
func Div[F constraints.Float](a, b F) F {
	finite.Assert("div", a, b)
	return a / b
}

// Rem returns the truncated remainder of a / b under the relaxed
// contract. Same precondition as Add.
func Rem[F constraints.Float](a, b F) F {
	finite.Assert("rem", a, b)
	return F(math.Mod(float64(a), float64(b)))
}
