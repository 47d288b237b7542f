package vec_test

import (
	"fmt"

	"github.com/cwbudde/algo-relaxed/vec"
)

func ExampleSum() {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	fmt.Println(vec.Sum(xs))

	// Output:
	// 36
}

func ExampleDot() {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	fmt.Println(vec.Dot(a, b))

	// Output:
	// 32
}
