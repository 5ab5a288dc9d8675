// Package signal generates deterministic synthetic intensity traces.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// PeakShape describes one Gaussian peak of a synthetic trace.
type PeakShape struct {
	Center float64 // sample position of the maximum
	Sigma  float64 // standard deviation in samples
	Height float64 // height above the baseline
}

// Generator creates deterministic traces.
type Generator struct {
	seed     int64
	baseline float64
	noise    float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithBaseline sets the constant background level of Trace.
func WithBaseline(level float64) Option {
	return func(g *Generator) {
		g.baseline = level
	}
}

// WithNoise sets the white noise amplitude added by Trace.
func WithNoise(amplitude float64) Option {
	return func(g *Generator) {
		if amplitude >= 0 {
			g.noise = amplitude
		}
	}
}

// NewGenerator creates a configured trace generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed updates the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Gaussian generates a single Gaussian peak.
func (g *Generator) Gaussian(shape PeakShape, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("gaussian samples must be > 0: %d", samples)
	}
	if shape.Sigma <= 0 {
		return nil, fmt.Errorf("gaussian sigma must be > 0: %f", shape.Sigma)
	}
	out := make([]float64, samples)
	for i := range out {
		d := (float64(i) - shape.Center) / shape.Sigma
		out[i] = shape.Height * math.Exp(-0.5*d*d)
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Trace generates the sum of the given peaks, the baseline and white noise.
func (g *Generator) Trace(samples int, peaks ...PeakShape) ([]float64, error) {
	out, err := g.WhiteNoise(g.noise, samples)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] += g.baseline
	}
	for _, p := range peaks {
		peak, err := g.Gaussian(p, samples)
		if err != nil {
			return nil, err
		}
		for i, v := range peak {
			out[i] += v
		}
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
