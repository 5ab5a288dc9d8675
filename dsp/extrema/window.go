package extrema

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow is returned for window lengths below one.
	ErrInvalidWindow = errors.New("extrema: window must be > 0")
	// ErrInvalidStep is returned for window steps below one.
	ErrInvalidStep = errors.New("extrema: step must be > 0")
)

// SlidingWindow returns views of length window into x, starting every step
// samples. The views share memory with x. Windows that would run past the
// end of x are not returned.
func SlidingWindow(x []float64, window, step int) ([][]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	if window > len(x) {
		return [][]float64{}, nil
	}

	out := make([][]float64, 0, (len(x)-window)/step+1)
	for start := 0; start+window <= len(x); start += step {
		out = append(out, x[start:start+window:start+window])
	}
	return out, nil
}

// SlidingWindowCentered returns one window of length window per step,
// centered so that element window/2 of the i-th view is x[i*step]. x is
// edge-padded by repeating its first and last values. The views share memory
// with an internal padded copy, never with x.
func SlidingWindowCentered(x []float64, window, step int) ([][]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	if len(x) == 0 {
		return [][]float64{}, nil
	}

	return SlidingWindow(padEdge(x, window/2, window-window/2-1), window, step)
}

// padEdge returns x extended by before copies of x[0] and after copies of
// its last element.
func padEdge(x []float64, before, after int) []float64 {
	out := make([]float64, before+len(x)+after)
	first, last := x[0], x[len(x)-1]
	for i := 0; i < before; i++ {
		out[i] = first
	}
	copy(out[before:], x)
	for i := before + len(x); i < len(out); i++ {
		out[i] = last
	}
	return out
}
