package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a spike of the given height at pos.
func Impulse(length, pos int, height float64) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = height
	}
	return out
}

// GaussianPeak generates a Gaussian of the given height and standard
// deviation centered on center.
func GaussianPeak(length int, center, sigma, height float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		d := (float64(i) - center) / sigma
		out[i] = height * math.Exp(-0.5*d*d)
	}
	return out
}

// Mix returns the element-wise sum of equally long signals.
func Mix(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}
