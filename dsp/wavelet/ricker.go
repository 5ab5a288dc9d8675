package wavelet

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Kernel generates a wavelet of the given number of samples for a width
// (scale) parameter.
type Kernel func(size int, width float64) []float64

// Ricker returns size samples of the Ricker wavelet
//
//	A * (1 - (t/sigma)^2) * exp(-t^2 / (2*sigma^2)),  A = 2 / (sqrt(3*sigma) * pi^(1/4))
//
// with t spaced linearly over [-size/2, size/2].
func Ricker(size int, sigma float64) []float64 {
	if size <= 0 {
		return []float64{}
	}

	amp := 2 / (math.Sqrt(3*sigma) * math.Pow(math.Pi, 0.25))
	half := float64(size) / 2
	step := 0.0
	if size > 1 {
		step = float64(size) / float64(size-1)
	}

	poly := make([]float64, size)
	envelope := make([]float64, size)
	for i := range poly {
		t := -half + float64(i)*step
		u := t / sigma
		poly[i] = amp * (1 - u*u)
		envelope[i] = math.Exp(-0.5 * u * u)
	}

	out := make([]float64, size)
	vecmath.MulBlock(out, poly, envelope)
	return out
}
