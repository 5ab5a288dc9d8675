package peaks

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-peaks/dsp/extrema"
)

// noisePercentile is the quantile of absolute coefficients taken as the
// local noise level.
const noisePercentile = 0.1

// EstimateNoise returns a local noise level for every position of row,
// normally the finest-scale transform row. The level at i is the 10th
// percentile of |row| over a window of the given length centered on i, with
// row edge-padded at both ends.
//
// A window of Auto uses len(row)/10. A negative floor uses 1% of the largest
// absolute value in row. Levels below the floor, and levels that cannot be
// computed because the window is empty, are replaced by the floor.
func EstimateNoise(row []float64, window int, floor float64) ([]float64, error) {
	if window == Auto {
		window = len(row) / 10
	}
	if floor < 0 {
		floor = maxAbs(row) / 100
	}

	noise := make([]float64, len(row))
	if window <= 0 {
		for i := range noise {
			noise[i] = floor
		}
		return noise, nil
	}

	abs := make([]float64, len(row))
	for i, v := range row {
		abs[i] = math.Abs(v)
	}
	views, err := extrema.SlidingWindowCentered(abs, window, 1)
	if err != nil {
		return nil, err
	}

	sorted := make([]float64, window)
	for i, view := range views {
		copy(sorted, view)
		slices.Sort(sorted)
		level := quantileLinear(noisePercentile, sorted)
		if math.IsNaN(level) || level < floor {
			level = floor
		}
		noise[i] = level
	}
	return noise, nil
}

// quantileLinear returns the p-quantile of sorted, interpolating linearly
// between the order statistics around rank (n-1)*p.
func quantileLinear(p float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	if lo < 0 {
		return sorted[0]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

func maxAbs(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		m = math.Max(m, math.Abs(v))
	}
	return m
}
