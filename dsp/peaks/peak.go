package peaks

import (
	"fmt"
	"math"
)

// Auto selects the documented default for integer parameters that are
// derived from the input size, and for the noise floor.
const Auto = -1

// Peak describes one detected peak. Positions are indices into the
// analyzed trace.
type Peak struct {
	Height   float64 // trace value at Top minus Baseline
	Width    int     // wavelet width for ridge peaks, Right-Left for edge peaks
	Area     float64 // trapezoid integral above the integration baseline
	Top      int     // index of the peak maximum
	Base     int     // index whose value is the height baseline
	Left     int     // left boundary
	Right    int     // right boundary
	Baseline float64 // value subtracted from the top to give Height
}

// Prominence returns the height of p above the higher of the trace values at
// its two boundaries.
func Prominence(x []float64, p Peak) float64 {
	return p.Height - math.Max(x[p.Left], x[p.Right])
}

// HeightMethod selects how the top of a ridge peak is located.
type HeightMethod string

const (
	// HeightCWT places the top at the ridge's strongest transform coefficient.
	HeightCWT HeightMethod = "cwt"
	// HeightMaxima places the top at the largest trace value between the
	// peak boundaries.
	HeightMaxima HeightMethod = "maxima"
)

func (m HeightMethod) validate() error {
	switch m {
	case HeightCWT, HeightMaxima:
		return nil
	default:
		return fmt.Errorf("%w %q, valid values are 'cwt', 'maxima'", ErrUnknownHeightMethod, string(m))
	}
}

// IntegrationMethod selects the baseline subtracted before integrating the
// area of a ridge peak.
type IntegrationMethod string

const (
	// IntegrateBase subtracts the trace value at the peak base.
	IntegrateBase IntegrationMethod = "base"
	// IntegrateProminence subtracts the higher of the two boundary values.
	IntegrateProminence IntegrationMethod = "prominence"
)

func (m IntegrationMethod) validate() error {
	switch m {
	case IntegrateBase, IntegrateProminence:
		return nil
	default:
		return fmt.Errorf("%w %q, valid values are 'base', 'prominence'", ErrUnknownIntegrationMethod, string(m))
	}
}

// EdgePolicy decides what happens to ridge peaks whose boundaries fall
// outside the trace.
type EdgePolicy string

const (
	// EdgeReject discards such peaks, keeping Right-Left == 2*Width for
	// every reported peak.
	EdgeReject EdgePolicy = "reject"
	// EdgeClamp moves out-of-range boundaries onto the first or last sample.
	EdgeClamp EdgePolicy = "clamp"
)

func (p EdgePolicy) validate() error {
	switch p {
	case EdgeReject, EdgeClamp:
		return nil
	default:
		return fmt.Errorf("%w %q, valid values are 'reject', 'clamp'", ErrUnknownEdgePolicy, string(p))
	}
}

// Thresholds are minimum attribute values a peak must reach to be kept.
type Thresholds struct {
	MinArea   float64
	MinHeight float64
	MinWidth  float64
}

// FilterPeaks returns the peaks whose area, height and width all reach th.
func FilterPeaks(peaks []Peak, th Thresholds) []Peak {
	out := make([]Peak, 0, len(peaks))
	for _, p := range peaks {
		if p.Area < th.MinArea || p.Height < th.MinHeight || float64(p.Width) < th.MinWidth {
			continue
		}
		out = append(out, p)
	}
	return out
}
