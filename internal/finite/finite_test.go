package finite

import "testing"

func TestAssertAcceptsFiniteOperands(t *testing.T) {
	// Valid under both build modes: the default build never panics and
	// the finitecheck build accepts finite operands.
	Assert("add", 1.5, -2.25)
	Assert[float32]("mul", 0, 3)
	AssertSlice("sum", []float64{0, -0.5, 1e300})
}
