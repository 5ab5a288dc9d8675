// Package wavelet computes continuous wavelet transforms of sampled traces.
//
// [CWT] convolves the input with one wavelet per width and stores the results
// as rows of a scale-by-position matrix, row i belonging to widths[i]. Each
// kernel spans min(len(x), 10*width) samples and the convolution keeps the
// input length, so column j of the matrix is sample j of the input.
//
// The default kernel is the Ricker ("Mexican hat") wavelet, see [Ricker].
// Any [Kernel] can be supplied instead.
package wavelet
