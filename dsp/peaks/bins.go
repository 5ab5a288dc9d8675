package peaks

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// BinPeaks lays peaks out on a fixed grid of size/binSize bins with perBin
// slots each, as needed when every bin is one acquisition of a line scan.
// Bin i holds the peaks with Top in [i*binSize, (i+1)*binSize). A bin with
// more than perBin peaks keeps the perBin largest by area, in Top order.
// Empty slots are zero-area placeholders whose Top is offset plus the slot
// index times binSize/perBin.
func BinPeaks(peaks []Peak, size, binSize, perBin, offset int) ([]Peak, error) {
	if binSize <= 0 || perBin <= 0 || size < 0 {
		return nil, fmt.Errorf("%w: size %d, bin size %d, %d per bin", ErrInvalidBins, size, binSize, perBin)
	}

	bins := size / binSize
	out := make([]Peak, bins*perBin)
	for k := range out {
		out[k].Top = offset + k*(binSize/perBin)
	}

	grouped := make([][]Peak, bins)
	for _, p := range peaks {
		if p.Top < 0 {
			continue
		}
		if i := p.Top / binSize; i < bins {
			grouped[i] = append(grouped[i], p)
		}
	}

	for i, group := range grouped {
		if len(group) > perBin {
			slices.SortStableFunc(group, func(a, b Peak) int { return cmp.Compare(b.Area, a.Area) })
			group = group[:perBin]
		}
		slices.SortStableFunc(group, func(a, b Peak) int { return a.Top - b.Top })
		copy(out[i*perBin:], group)
	}
	return out, nil
}

// InsertMissing fills gaps in a sequence of regularly spaced peaks. Wherever
// consecutive tops are more than distance apart, placeholder peaks with the
// given area are inserted every distance samples after the earlier peak,
// stopping short of the later one. A distance of zero or less uses 1.1 times
// the median spacing.
func InsertMissing(peaks []Peak, distance, area float64) []Peak {
	if len(peaks) < 2 {
		return slices.Clone(peaks)
	}

	if distance <= 0 {
		diffs := make([]float64, len(peaks)-1)
		for i := range diffs {
			diffs[i] = float64(peaks[i+1].Top - peaks[i].Top)
		}
		slices.Sort(diffs)
		distance = 1.1 * stat.Quantile(0.5, stat.Empirical, diffs, nil)
		if distance <= 0 {
			return slices.Clone(peaks)
		}
	}

	out := make([]Peak, 0, len(peaks))
	for i, p := range peaks {
		out = append(out, p)
		if i+1 == len(peaks) {
			break
		}
		gap := float64(peaks[i+1].Top - p.Top)
		if gap <= distance {
			continue
		}
		missing := int(math.Ceil(gap/distance)) - 1
		for k := 1; k <= missing; k++ {
			out = append(out, Peak{Top: p.Top + int(float64(k)*distance), Area: area})
		}
	}
	return out
}
