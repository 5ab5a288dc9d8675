package peaks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var edgeTrace = []float64{0, 1, 3, 7, 3, 1, 0, 2, 6, 2, 0}

func TestFromEdges(t *testing.T) {
	tests := []struct {
		name       string
		base       BaseMethod
		height     EdgeHeightMethod
		wantTop    int
		wantBase   int
		wantHeight float64
		wantArea   float64
	}{
		{"edge", BaseEdge, EdgeHeightMaxima, 3, 1, 6, 10},
		{"minima", BaseMinima, EdgeHeightMaxima, 3, 1, 6, 10},
		{"prominence", BaseProminence, EdgeHeightMaxima, 3, 5, 6, 10},
		{"zero", BaseZero, EdgeHeightMaxima, 3, 3, 7, 14},
		{"center", BaseZero, EdgeHeightCenter, 3, 3, 7, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			peaks, err := FromEdges(edgeTrace, []int{1, 6}, []int{5, 10}, tt.base, tt.height)
			require.NoError(t, err)
			require.Len(t, peaks, 2)

			p := peaks[0]
			assert.Equal(t, tt.wantTop, p.Top)
			assert.Equal(t, tt.wantBase, p.Base)
			assert.Equal(t, 4, p.Width)
			assert.Equal(t, 1, p.Left)
			assert.Equal(t, 5, p.Right)
			assert.InDelta(t, tt.wantHeight, p.Height, 1e-12)
			assert.InDelta(t, tt.wantArea, p.Area, 1e-12)
			assert.InDelta(t, edgeTrace[p.Top]-p.Height, p.Baseline, 1e-12)

			assert.Equal(t, 8, peaks[1].Top)
		})
	}
}

func TestFromEdgesBaseline(t *testing.T) {
	x := make([]float64, 40)
	for i := 20; i <= 22; i++ {
		x[i] = 4
	}

	peaks, err := FromEdges(x, []int{19}, []int{23}, BaseBaseline, EdgeHeightMaxima)
	require.NoError(t, err)
	require.Len(t, peaks, 1)
	assert.Equal(t, 20, peaks[0].Top)
	assert.Equal(t, 20, peaks[0].Base)
	assert.InDelta(t, 0.0, peaks[0].Baseline, 1e-12)
	assert.InDelta(t, 4.0, peaks[0].Height, 1e-12)
	assert.InDelta(t, 12.0, peaks[0].Area, 1e-12)
}

func TestFromEdgesBaselineInterpolates(t *testing.T) {
	x := make([]float64, 20)
	for i := range x {
		x[i] = float64(i)
	}

	// The baseline window around the top at 10 holds 6..13; its 25th
	// percentile sits three quarters of the way from 7 to 8.
	peaks, err := FromEdges(x, []int{8}, []int{10}, BaseBaseline, EdgeHeightMaxima)
	require.NoError(t, err)
	require.Len(t, peaks, 1)
	assert.Equal(t, 10, peaks[0].Top)
	assert.InDelta(t, 7.75, peaks[0].Baseline, 1e-12)
	assert.InDelta(t, 2.25, peaks[0].Height, 1e-12)
}

func TestFromEdgesErrors(t *testing.T) {
	_, err := FromEdges(edgeTrace, []int{1}, []int{5, 10}, BaseEdge, EdgeHeightMaxima)
	assert.ErrorIs(t, err, ErrEdgeMismatch)

	_, err = FromEdges(edgeTrace, []int{5}, []int{1}, BaseEdge, EdgeHeightMaxima)
	assert.ErrorIs(t, err, ErrPositionRange)

	_, err = FromEdges(edgeTrace, []int{1}, []int{11}, BaseEdge, EdgeHeightMaxima)
	assert.ErrorIs(t, err, ErrPositionRange)

	_, err = FromEdges(edgeTrace, []int{1}, []int{5}, "median", EdgeHeightMaxima)
	assert.ErrorIs(t, err, ErrUnknownBaseMethod)

	_, err = FromEdges(edgeTrace, []int{1}, []int{5}, BaseEdge, "cwt")
	assert.ErrorIs(t, err, ErrUnknownHeightMethod)

	peaks, err := FromEdges(edgeTrace, nil, nil, BaseEdge, EdgeHeightMaxima)
	require.NoError(t, err)
	assert.NotNil(t, peaks)
	assert.Empty(t, peaks)
}
