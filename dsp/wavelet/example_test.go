package wavelet_test

import (
	"fmt"

	"github.com/cwbudde/algo-peaks/dsp/wavelet"
)

func ExampleCWT() {
	trace := make([]float64, 64)
	trace[31] = 1

	coef, err := wavelet.CWT(trace, []int{1, 2, 3}, wavelet.Ricker)
	if err != nil {
		fmt.Println(err)
		return
	}

	scales, samples := coef.Dims()
	fmt.Println(scales, samples)

	// Output:
	// 3 64
}
