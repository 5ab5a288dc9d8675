package peaks

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MaximaCoord locates the strongest transform coefficient of a ridge.
type MaximaCoord struct {
	Scale    int // row index into the transform
	Position int // trace index
}

// FilterConfig controls which ridges survive FilterRidges.
type FilterConfig struct {
	// MinLength is the number of positions a ridge must exceed. Auto uses a
	// third of the scale count.
	MinLength int
	// MinSNR is the signal-to-noise ratio a ridge must exceed.
	MinSNR float64
}

// DefaultFilterConfig returns the configuration used by FindPeaks.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{MinLength: Auto, MinSNR: 10}
}

// FilterRidges drops short ridges and ridges whose strongest coefficient is
// not clearly above the local noise level. noise holds one level per trace
// position, as returned by EstimateNoise.
//
// The result keeps the order of ridges and pairs each surviving ridge with
// the coordinate of its strongest coefficient. Filtering everything away is
// not an error.
func FilterRidges(ridges *RidgeSet, coef *mat.Dense, noise []float64, cfg FilterConfig) (*RidgeSet, []MaximaCoord, error) {
	scales, n := coef.Dims()
	if ridges.Scales() != scales {
		return nil, nil, fmt.Errorf("%w: ridges span %d scales, transform has %d rows", ErrScaleMismatch, ridges.Scales(), scales)
	}
	if len(noise) != n {
		return nil, nil, fmt.Errorf("%w: %d levels for %d positions", ErrNoiseLength, len(noise), n)
	}

	minLength := cfg.MinLength
	if minLength < 0 {
		minLength = scales / 3
	}

	kept := NewRidgeSet(scales)
	coords := make([]MaximaCoord, 0)
	for j := 0; j < ridges.Len(); j++ {
		r := ridges.Ridge(j)
		if r.Len() <= minLength {
			continue
		}

		best := MaximaCoord{Scale: -1}
		bestValue := 0.0
		for i, pos := range r.Positions {
			if pos == Gap {
				continue
			}
			if pos < 0 || pos >= n {
				return nil, nil, fmt.Errorf("%w: ridge %d has position %d at scale %d", ErrPositionRange, j, pos, i)
			}
			if v := coef.At(i, pos); best.Scale < 0 || v > bestValue {
				best, bestValue = MaximaCoord{Scale: i, Position: pos}, v
			}
		}

		if best.Scale < 0 {
			continue
		}
		if snr := bestValue / noise[best.Position]; !(snr > cfg.MinSNR) {
			continue
		}
		if err := kept.Append(r.Positions, r.State); err != nil {
			return nil, nil, err
		}
		coords = append(coords, best)
	}
	return kept, coords, nil
}
