package conv

import (
	"errors"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// directThreshold is the kernel length above which Convolve switches to overlap-add.
const directThreshold = 64

// Mode specifies the output mode of a convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input,
	// centered on the full result.
	ModeSame

	// ModeValid returns only the portion where the inputs fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Direct performs time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution into dst, which must have length
// len(a) + len(b) - 1. dst is overwritten.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	for i, av := range a {
		if av == 0 {
			continue
		}
		out := dst[i : i+len(b)]
		for j, bv := range b {
			out[j] += av * bv
		}
	}
}

// Convolve performs linear convolution, using direct summation for kernels of
// up to 64 samples and FFT overlap-add above that.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Convolution commutes; keep the longer sequence as the signal.
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode performs convolution and trims the result to mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the portion of a full convolution result selected by mode.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
