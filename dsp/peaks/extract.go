package peaks

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-peaks/dsp/core"
)

// ExtractConfig controls how ridge coordinates become peaks.
type ExtractConfig struct {
	Height      HeightMethod
	Integration IntegrationMethod
	Edges       EdgePolicy
}

// DefaultExtractConfig returns the configuration used by FindPeaks.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		Height:      HeightMaxima,
		Integration: IntegrateBase,
		Edges:       EdgeReject,
	}
}

// ExtractPeaks builds one peak per maxima coordinate. The peak spans the
// wavelet width windows[c.Scale] on both sides of c.Position and its area is
// integrated over [Left, Right) with unit sample spacing.
//
// Invalid methods fail before any peak is built. Peaks whose span leaves the
// trace are dropped or clamped according to cfg.Edges.
func ExtractPeaks(x []float64, maxima []MaximaCoord, windows []int, cfg ExtractConfig) ([]Peak, error) {
	if err := cfg.Height.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Integration.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Edges.validate(); err != nil {
		return nil, err
	}

	n := len(x)
	peaks := make([]Peak, 0, len(maxima))
	for _, c := range maxima {
		if c.Scale < 0 || c.Scale >= len(windows) {
			return nil, fmt.Errorf("%w: scale index %d with %d windows", ErrScaleMismatch, c.Scale, len(windows))
		}
		if c.Position < 0 || c.Position >= n {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrPositionRange, c.Position, n)
		}

		width := windows[c.Scale]
		left, right := c.Position-width, c.Position+width
		if left < 0 || right > n-1 {
			if cfg.Edges == EdgeReject {
				continue
			}
			left, right = core.ClampIndex(left, n), core.ClampIndex(right, n)
		}
		base := min(left, right)
		span := x[left:right]

		top := c.Position
		if cfg.Height == HeightMaxima && len(span) > 0 {
			top = floats.MaxIdx(span) + left
		}

		baseline := x[base]
		if cfg.Integration == IntegrateProminence {
			baseline = math.Max(x[left], x[right])
		}

		peaks = append(peaks, Peak{
			Height:   x[top] - x[base],
			Width:    width,
			Area:     trapezoid(span, left, baseline),
			Top:      top,
			Base:     base,
			Left:     left,
			Right:    right,
			Baseline: x[base],
		})
	}
	return peaks, nil
}

// trapezoid integrates y - baseline over the sample positions
// offset, offset+1, ...
func trapezoid(y []float64, offset int, baseline float64) float64 {
	if len(y) < 2 {
		return 0
	}
	pos := make([]float64, len(y))
	f := make([]float64, len(y))
	for i := range y {
		pos[i] = float64(offset + i)
	}
	copy(f, y)
	floats.AddConst(-baseline, f)
	return integrate.Trapezoidal(pos, f)
}
