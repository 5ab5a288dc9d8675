// Package peaks finds peaks of unknown and varying width in one-dimensional
// intensity traces, such as the transient signals recorded by laser-ablation
// mass spectrometers.
//
// The main entry point, [FindPeaks], runs a multiscale ridge-tracking search:
//
//  1. A continuous wavelet transform (package wavelet) is computed for every
//     width in [minWidth, maxWidth].
//  2. [IdentifyRidges] follows local extrema of the transform from the coarsest
//     scale down to the finest, linking extrema of neighboring scales into
//     ridges. Ridges may skip a limited number of scales.
//  3. [EstimateNoise] derives a local noise floor from the finest transform row.
//  4. [FilterRidges] drops short ridges and ridges whose strongest coefficient
//     does not exceed the noise floor by the required signal-to-noise ratio.
//  5. [ExtractPeaks] turns each surviving ridge into a [Peak] with height,
//     width, area and boundaries.
//  6. Peaks failing the area, height, width or prominence thresholds are
//     dropped.
//
// Each stage is exported so it can be run, inspected or replaced on its own.
//
// # Usage
//
//	found, err := peaks.FindPeaks(trace, 2, 12,
//		peaks.WithRidgeMinSNR(8),
//		peaks.WithMinHeight(100),
//	)
//
// The result follows ridge creation order, which is not position order.
//
// # Z-score detection
//
// [FindPeaksZScore] is a lighter alternative for traces with a stable
// background: a smoothed z-score detector marks samples that deviate from a
// trailing mean, and every run of marked samples becomes a peak via
// [FromEdges].
//
// # Grid layout
//
// [BinPeaks] places peaks on a fixed grid with one bin per acquisition of a
// regularly sampled scan. [InsertMissing] fills the gaps in a sequence of
// regularly spaced peaks.
package peaks
