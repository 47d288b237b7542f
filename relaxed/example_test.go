package relaxed_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-relaxed/relaxed"
)

func ExampleWrap() {
	x := relaxed.Wrap(2.0)
	y := x.Add(1.0).Mul(3.0)

	fmt.Println(y.Get())

	// Output:
	// 9
}

func ExampleFloat_Add() {
	// Folding through the wrapper keeps the relaxed contract visible at
	// every accumulation step.
	xs := []float64{0.5, 1.25, -0.75, 2}
	acc := relaxed.Zero[float64]()
	for _, v := range xs {
		acc = acc.Add(v)
	}

	fmt.Println(acc.Get())

	// Output:
	// 3
}

func ExampleFloat_Classify() {
	fmt.Println(relaxed.Wrap(1.0).Classify())
	fmt.Println(relaxed.Wrap(math.Inf(-1)).Classify())
	fmt.Println(relaxed.Wrap(math.NaN()).Classify())

	// Output:
	// normal
	// inf
	// nan
}

func ExampleFloat_Sqrt() {
	// Delegated operations keep strict IEEE behavior: no relaxed
	// precondition, NaN flows through naturally.
	fmt.Println(relaxed.Wrap(9.0).Sqrt().Get())
	fmt.Println(relaxed.Wrap(-1.0).Sqrt().IsNaN())

	// Output:
	// 3
	// true
}
