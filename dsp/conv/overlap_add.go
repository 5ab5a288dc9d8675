package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minBlockSize is the smallest automatically chosen overlap-add block.
const minBlockSize = 256

// OverlapAdd convolves long signals with a fixed kernel by splitting the input
// into blocks, multiplying each block's spectrum with the precomputed kernel
// spectrum, and summing the overlapping block results.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan *algofft.Plan[complex128]

	scratch []complex128
}

// NewOverlapAdd creates an overlap-add convolver for kernel.
// A blockSize of 0 or less selects a size from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(len(kernel)), minBlockSize)
	}

	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		scratch:   make([]complex128, fftSize),
	}

	for i, v := range kernel {
		oa.scratch[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, oa.scratch); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// Process returns the full linear convolution of input with the kernel,
// of length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.ProcessTo(output, input); err != nil {
		return nil, err
	}

	return output, nil
}

// ProcessTo convolves input into output, which must have length
// len(input) + KernelLen() - 1. output is overwritten.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}

	want := len(input) + oa.kernelLen - 1
	if len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	for i := range output {
		output[i] = 0
	}

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		for i := range oa.scratch {
			oa.scratch[i] = 0
		}
		for i, v := range input[start:end] {
			oa.scratch[i] = complex(v, 0)
		}

		if err := oa.plan.Forward(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range oa.scratch {
			oa.scratch[i] *= oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		// A block of length L yields L + M - 1 samples.
		n := end - start + oa.kernelLen - 1
		for i := 0; i < n && start+i < len(output); i++ {
			output[start+i] += real(oa.scratch[i])
		}
	}

	return nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
