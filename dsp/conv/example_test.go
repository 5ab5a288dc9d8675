package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-peaks/dsp/conv"
)

func ExampleDirect() {
	signal := []float64{1, 2, 3, 4, 5, 4, 3, 2, 1}
	kernel := []float64{0.25, 0.5, 0.25}

	result, _ := conv.Direct(signal, kernel)

	fmt.Printf("Output length: %d\n", len(result))
	fmt.Printf("First values: %.2f, %.2f, %.2f\n", result[0], result[1], result[2])

	// Output:
	// Output length: 11
	// First values: 0.25, 1.00, 2.00
}

func ExampleConvolveMode() {
	trace := []float64{0, 0, 0, 4, 0, 0, 0}
	smooth := []float64{0.25, 0.5, 0.25}

	out, _ := conv.ConvolveMode(trace, smooth, conv.ModeSame)
	fmt.Println(out)

	// Output:
	// [0 0 1 2 1 0 0]
}
