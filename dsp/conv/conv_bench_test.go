package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-peaks/internal/testutil"
)

func BenchmarkConvolve(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{1024, 20},
		{1024, 100},
		{8192, 20},
		{8192, 300},
	}

	for _, size := range sizes {
		signal := testutil.DeterministicNoise(1, 1, size.signal)
		kernel := testutil.DeterministicNoise(2, 1, size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Convolve(signal, kernel)
			}
		})
	}
}
