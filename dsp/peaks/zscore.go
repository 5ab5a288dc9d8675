package peaks

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ZScoreConfig controls FindPeaksZScore.
type ZScoreConfig struct {
	// Lag is the number of preceding samples the running mean and standard
	// deviation are taken over.
	Lag int
	// Threshold is the number of standard deviations that marks a sample.
	Threshold float64
	// Influence weights marked samples in the running statistics, from 0
	// (ignored) to 1 (taken as is).
	Influence float64

	Base       BaseMethod
	Height     EdgeHeightMethod
	Thresholds Thresholds
}

// DefaultZScoreConfig returns the defaults of FindPeaksZScore.
func DefaultZScoreConfig() ZScoreConfig {
	return ZScoreConfig{
		Lag:       10,
		Threshold: 3.3,
		Influence: 0.5,
		Base:      BaseBaseline,
		Height:    EdgeHeightMaxima,
	}
}

// ZScoreSignal marks samples of x that deviate from the mean of the
// preceding lag samples by more than threshold standard deviations: 1 above
// the mean, -1 below, 0 otherwise. Marked samples enter the running
// statistics damped by influence. The first lag samples are never marked.
// The second result is the damped trace the statistics were taken over.
func ZScoreSignal(x []float64, lag int, threshold, influence float64) ([]int8, []float64, error) {
	if lag <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidLag, lag)
	}

	signal := make([]int8, len(x))
	filtered := make([]float64, len(x))
	copy(filtered, x)

	for i := lag; i < len(x); i++ {
		mean, std := stat.PopMeanStdDev(filtered[i-lag:i], nil)
		dev := x[i] - mean
		if dev < 0 {
			dev = -dev
		}
		if dev <= std*threshold {
			continue
		}
		if x[i] > mean {
			signal[i] = 1
		} else {
			signal[i] = -1
		}
		filtered[i] = influence*x[i] + (1-influence)*filtered[i-1]
	}
	return signal, filtered, nil
}

// FindPeaksZScore detects peaks as runs of samples marked above the running
// mean by ZScoreSignal. A run that is still open at the end of x is ignored.
func FindPeaksZScore(x []float64, cfg ZScoreConfig) ([]Peak, error) {
	if err := cfg.Base.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Height.validate(); err != nil {
		return nil, err
	}

	signal, _, err := ZScoreSignal(x, cfg.Lag, cfg.Threshold, cfg.Influence)
	if err != nil {
		return nil, err
	}

	var lefts, rights []int
	for i := 0; i+1 < len(signal); i++ {
		cur, next := signal[i] > 0, signal[i+1] > 0
		switch {
		case !cur && next:
			lefts = append(lefts, i)
		case cur && !next:
			rights = append(rights, i+1)
		}
	}
	lefts = lefts[:len(rights)]

	peaks, err := FromEdges(x, lefts, rights, cfg.Base, cfg.Height)
	if err != nil {
		return nil, err
	}
	return FilterPeaks(peaks, cfg.Thresholds), nil
}
