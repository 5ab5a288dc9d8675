package wavelet

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-peaks/dsp/conv"
	"github.com/cwbudde/algo-peaks/internal/testutil"
)

func TestCWTShapeAndRows(t *testing.T) {
	x := testutil.Mix(
		testutil.GaussianPeak(200, 80, 3, 5),
		testutil.DeterministicNoise(9, 0.05, 200),
	)
	widths := []int{1, 2, 4, 8, 30}

	coef, err := CWT(x, widths, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, c := coef.Dims()
	if r != len(widths) || c != len(x) {
		t.Fatalf("dims = %dx%d, want %dx%d", r, c, len(widths), len(x))
	}

	for i, w := range widths {
		n := min(len(x), 10*w)
		want, err := conv.ConvolveMode(x, Ricker(n, float64(w)), conv.ModeSame)
		if err != nil {
			t.Fatalf("reference convolution: %v", err)
		}
		testutil.RequireSliceNearlyEqual(t, coef.RawRowView(i), want, 1e-9)
		testutil.RequireFinite(t, coef.RawRowView(i))
	}
}

func TestCWTPeakResponse(t *testing.T) {
	x := testutil.GaussianPeak(201, 100, 3, 10)

	coef, err := CWT(x, []int{2, 4, 6}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Even-length kernels center the response between samples 100 and 101.
	for i := 0; i < 3; i++ {
		row := coef.RawRowView(i)
		top := floats.MaxIdx(row)
		if top != 100 && top != 101 {
			t.Fatalf("row %d maximum at %d, want 100 or 101", i, top)
		}
		if row[top] <= 0 {
			t.Fatalf("row %d maximum %v, want positive", i, row[top])
		}
	}
}

func TestCWTCustomKernel(t *testing.T) {
	box := func(size int, _ float64) []float64 {
		out := make([]float64, size)
		for i := range out {
			out[i] = 1
		}
		return out
	}

	x := []float64{0, 0, 0, 0, 0, 1}
	coef, err := CWT(x, []int{1}, box)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Kernel length min(6, 10) = 6, trimmed with (6-1)/2 = 2 leading samples.
	testutil.RequireSliceNearlyEqual(t, coef.RawRowView(0), []float64{0, 0, 0, 1, 1, 1}, 1e-9)
}

func TestCWTErrors(t *testing.T) {
	if _, err := CWT(nil, []int{1}, nil); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
	if _, err := CWT([]float64{1}, nil, nil); !errors.Is(err, ErrNoWidths) {
		t.Fatalf("expected ErrNoWidths, got %v", err)
	}
	if _, err := CWT([]float64{1, 2}, []int{1, 0}, nil); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}

	short := func(size int, _ float64) []float64 { return make([]float64, size-1) }
	if _, err := CWT([]float64{1, 2, 3}, []int{1}, short); !errors.Is(err, ErrKernelSize) {
		t.Fatalf("expected ErrKernelSize, got %v", err)
	}
}
