package relaxed

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Category describes the IEEE-754 class of a floating-point value.
type Category uint8

const (
	CategoryNaN Category = iota
	CategoryInf
	CategoryZero
	CategorySubnormal
	CategoryNormal
)

// String returns a short lower-case name for the category.
func (c Category) String() string {
	switch c {
	case CategoryNaN:
		return "nan"
	case CategoryInf:
		return "inf"
	case CategoryZero:
		return "zero"
	case CategorySubnormal:
		return "subnormal"
	case CategoryNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// smallestNormal returns the smallest positive normal value of F as a
// float64. The width probe relies on F being exactly float32 or float64
// sized, which the constraint guarantees.
func smallestNormal[F constraints.Float]() float64 {
	if unsafe.Sizeof(F(0)) == 4 {
		return 0x1p-126
	}
	return 0x1p-1022
}

// Classify returns the IEEE-754 category of the held value.
func (x Float[F]) Classify() Category {
	f := float64(x.v)
	switch {
	case math.IsNaN(f):
		return CategoryNaN
	case math.IsInf(f, 0):
		return CategoryInf
	case f == 0:
		return CategoryZero
	case math.Abs(f) < smallestNormal[F]():
		return CategorySubnormal
	default:
		return CategoryNormal
	}
}

// IsNormal reports whether the held value is a normal number: neither
// zero, subnormal, infinite nor NaN.
func (x Float[F]) IsNormal() bool {
	return x.Classify() == CategoryNormal
}
