// Package conv provides linear convolution of real-valued sequences.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain sum, used for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// [Convolve] chooses between them by kernel length, and [ConvolveMode] trims the
// full result to the requested output mode. The continuous wavelet transform in
// package wavelet relies on [ModeSame], which keeps the output aligned with the
// input trace so that coefficient indices are signal indices.
//
// # Usage
//
//	full, err := conv.Convolve(trace, kernel)
//	same, err := conv.ConvolveMode(trace, kernel, conv.ModeSame)
//
// For repeated convolution with the same kernel, keep an [OverlapAdd]:
//
//	oa, err := conv.NewOverlapAdd(kernel, 0)
//	out, err := oa.Process(trace)
package conv
