//go:build finitecheck

package finite

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Assert panics if either operand is NaN or infinite.
func Assert[F constraints.Float](op string, a, b F) {
	if !isFinite(float64(a)) || !isFinite(float64(b)) {
		panic(fmt.Sprintf("relaxed: %s requires finite operands, got %v and %v", op, a, b))
	}
}

// AssertSlice panics if any element is NaN or infinite.
func AssertSlice(op string, xs []float64) {
	for i, v := range xs {
		if !isFinite(v) {
			panic(fmt.Sprintf("relaxed: %s requires finite operands, got %v at index %d", op, v, i))
		}
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
