package peaks

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-peaks/dsp/wavelet"
)

// Scales returns the widths minWidth..maxWidth inclusive.
func Scales(minWidth, maxWidth int) ([]int, error) {
	if minWidth < 1 || maxWidth < minWidth {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidWidthRange, minWidth, maxWidth)
	}
	windows := make([]int, 0, maxWidth-minWidth+1)
	for w := minWidth; w <= maxWidth; w++ {
		windows = append(windows, w)
	}
	return windows, nil
}

// FindPeaks detects peaks in x whose widths lie between minWidth and
// maxWidth samples.
//
// The trace is transformed with the configured wavelet at every width in
// range, ridges are traced from the coarsest to the finest scale, ridges
// that are short or weak relative to the local noise are dropped, and the
// rest are turned into peaks. Peaks below any of the configured area, height,
// width or prominence thresholds are removed last.
//
// Traces shorter than two samples produce no peaks. The result follows ridge
// creation order, not position order.
func FindPeaks(x []float64, minWidth, maxWidth int, opts ...Option) ([]Peak, error) {
	cfg := ApplyOptions(opts...)
	return FindPeaksConfig(x, minWidth, maxWidth, cfg)
}

// FindPeaksConfig is FindPeaks with an explicit configuration.
func FindPeaksConfig(x []float64, minWidth, maxWidth int, cfg Config) ([]Peak, error) {
	windows, err := Scales(minWidth, maxWidth)
	if err != nil {
		return nil, err
	}
	if err := cfg.Extract.Height.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Extract.Integration.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Extract.Edges.validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if len(x) < 2 {
		log.Debug("trace too short", zap.Int("samples", len(x)))
		return []Peak{}, nil
	}

	coef, err := wavelet.CWT(x, windows, cfg.Kernel)
	if err != nil {
		return nil, fmt.Errorf("peaks: transform: %w", err)
	}

	ridges, err := IdentifyRidges(coef, windows, cfg.Ridge)
	if err != nil {
		return nil, err
	}

	noise, err := EstimateNoise(coef.RawRowView(0), cfg.NoiseWindow, cfg.MinNoise)
	if err != nil {
		return nil, fmt.Errorf("peaks: noise: %w", err)
	}

	kept, maxima, err := FilterRidges(ridges, coef, noise, cfg.Filter)
	if err != nil {
		return nil, err
	}

	candidates, err := ExtractPeaks(x, maxima, windows, cfg.Extract)
	if err != nil {
		return nil, err
	}

	found := make([]Peak, 0, len(candidates))
	for _, p := range FilterPeaks(candidates, cfg.Thresholds) {
		if Prominence(x, p) < cfg.MinProminence {
			continue
		}
		found = append(found, p)
	}

	log.Debug("peaks found",
		zap.Int("samples", len(x)),
		zap.Int("scales", len(windows)),
		zap.Int("ridges", ridges.Len()),
		zap.Int("ridges_kept", kept.Len()),
		zap.Int("candidates", len(candidates)),
		zap.Int("peaks", len(found)),
	)
	return found, nil
}
