package extrema

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Mode selects which kind of extremum to locate.
type Mode int

const (
	// Maxima locates local maxima.
	Maxima Mode = iota
	// Minima locates local minima.
	Minima
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Maxima:
		return "maxima"
	case Minima:
		return "minima"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "maxima" or "minima".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "maxima":
		return Maxima, nil
	case "minima":
		return Minima, nil
	default:
		return 0, fmt.Errorf("extrema: unknown mode %q, valid values are 'maxima', 'minima'", s)
	}
}

// Local returns the ascending indices of x that hold the first maximum (or
// minimum) of their centered, edge-padded window of the given length.
func Local(x []float64, window int, mode Mode) ([]int, error) {
	if mode != Maxima && mode != Minima {
		return nil, fmt.Errorf("extrema: unknown mode %v", mode)
	}

	windows, err := SlidingWindowCentered(x, window, 1)
	if err != nil {
		return nil, err
	}

	center := window / 2
	idx := []int{}
	for i, w := range windows {
		var at int
		if mode == Maxima {
			at = floats.MaxIdx(w)
		} else {
			at = floats.MinIdx(w)
		}
		if at == center {
			idx = append(idx, i)
		}
	}
	return idx, nil
}

// LocalMaxima returns the indices whose value is strictly greater than both
// neighbors. The first and last samples only need to exceed their single
// neighbor.
func LocalMaxima(x []float64) []int {
	idx := []int{}
	for i := range x {
		if i > 0 && !(x[i] > x[i-1]) {
			continue
		}
		if i < len(x)-1 && !(x[i] > x[i+1]) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}
