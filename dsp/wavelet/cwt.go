package wavelet

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-peaks/dsp/conv"
)

// Errors returned by CWT.
var (
	ErrEmptySignal  = errors.New("wavelet: empty signal")
	ErrNoWidths     = errors.New("wavelet: no widths")
	ErrInvalidWidth = errors.New("wavelet: width must be > 0")
	ErrKernelSize   = errors.New("wavelet: kernel returned wrong number of samples")
)

// supportFactor is the kernel length in multiples of the width.
const supportFactor = 10

// CWT returns the len(widths) x len(x) continuous wavelet transform of x.
// A nil kernel selects Ricker.
func CWT(x []float64, widths []int, kernel Kernel) (*mat.Dense, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}
	if len(widths) == 0 {
		return nil, ErrNoWidths
	}
	if kernel == nil {
		kernel = Ricker
	}

	coef := mat.NewDense(len(widths), len(x), nil)
	for i, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("%w: widths[%d] = %d", ErrInvalidWidth, i, w)
		}

		n := min(len(x), supportFactor*w)
		k := kernel(n, float64(w))
		if len(k) != n {
			return nil, fmt.Errorf("%w: width %d: got %d, want %d", ErrKernelSize, w, len(k), n)
		}

		row, err := conv.ConvolveMode(x, k, conv.ModeSame)
		if err != nil {
			return nil, fmt.Errorf("wavelet: width %d: %w", w, err)
		}
		coef.SetRow(i, row)
	}

	return coef, nil
}
