package peaks

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-peaks/dsp/extrema"
)

// BaseMethod selects the level a peak's height and area are measured from.
type BaseMethod string

const (
	// BaseBaseline uses the 25th percentile of the trace around the top,
	// over a window four times the widest peak.
	BaseBaseline BaseMethod = "baseline"
	// BaseEdge uses the trace value at the left edge.
	BaseEdge BaseMethod = "edge"
	// BaseMinima uses the smallest trace value inside the peak.
	BaseMinima BaseMethod = "minima"
	// BaseProminence uses the trace value at the right edge.
	BaseProminence BaseMethod = "prominence"
	// BaseZero measures from zero.
	BaseZero BaseMethod = "zero"
)

func (m BaseMethod) validate() error {
	switch m {
	case BaseBaseline, BaseEdge, BaseMinima, BaseProminence, BaseZero:
		return nil
	default:
		return fmt.Errorf("%w %q, valid values are 'baseline', 'edge', 'minima', 'prominence', 'zero'", ErrUnknownBaseMethod, string(m))
	}
}

// EdgeHeightMethod selects the top of a peak given by its edges.
type EdgeHeightMethod string

const (
	// EdgeHeightCenter places the top midway between the edges.
	EdgeHeightCenter EdgeHeightMethod = "center"
	// EdgeHeightMaxima places the top at the largest value between the edges.
	EdgeHeightMaxima EdgeHeightMethod = "maxima"
)

func (m EdgeHeightMethod) validate() error {
	switch m {
	case EdgeHeightCenter, EdgeHeightMaxima:
		return nil
	default:
		return fmt.Errorf("%w %q, valid values are 'center', 'maxima'", ErrUnknownHeightMethod, string(m))
	}
}

const baselinePercentile = 0.25

// FromEdges builds peaks spanning lefts[i]..rights[i], both inclusive. The
// width of each peak is rights[i]-lefts[i] and its area is the trapezoid
// integral of the trace above the base level.
func FromEdges(x []float64, lefts, rights []int, base BaseMethod, height EdgeHeightMethod) ([]Peak, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	if err := height.validate(); err != nil {
		return nil, err
	}
	if len(lefts) != len(rights) {
		return nil, fmt.Errorf("%w: %d lefts, %d rights", ErrEdgeMismatch, len(lefts), len(rights))
	}
	if len(lefts) == 0 {
		return []Peak{}, nil
	}

	maxWidth := 0
	for i := range lefts {
		l, r := lefts[i], rights[i]
		if l < 0 || r >= len(x) || r < l {
			return nil, fmt.Errorf("%w: edges [%d, %d] with %d samples", ErrPositionRange, l, r, len(x))
		}
		maxWidth = max(maxWidth, r-l)
	}

	var baselines [][]float64
	if base == BaseBaseline {
		var err error
		baselines, err = extrema.SlidingWindowCentered(x, max(4*maxWidth, 1), 1)
		if err != nil {
			return nil, err
		}
	}

	peaks := make([]Peak, len(lefts))
	scratch := make([]float64, 0)
	for i := range lefts {
		l, r := lefts[i], rights[i]
		span := x[l : r+1]

		top := (l + r) / 2
		if height == EdgeHeightMaxima {
			top = floats.MaxIdx(span) + l
		}

		var bottom int
		var level float64
		switch base {
		case BaseBaseline:
			bottom = top
			scratch = append(scratch[:0], baselines[top]...)
			slices.Sort(scratch)
			level = quantileLinear(baselinePercentile, scratch)
		case BaseEdge:
			bottom = l
			level = x[bottom]
		case BaseMinima:
			bottom = floats.MinIdx(span) + l
			level = x[bottom]
		case BaseProminence:
			bottom = r
			level = x[bottom]
		case BaseZero:
			bottom = top
		}

		peaks[i] = Peak{
			Height:   x[top] - level,
			Width:    r - l,
			Area:     trapezoid(span, l, level),
			Top:      top,
			Base:     bottom,
			Left:     l,
			Right:    r,
			Baseline: level,
		}
	}
	return peaks, nil
}
