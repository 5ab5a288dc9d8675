package peaks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func filterFixture(t *testing.T) (*RidgeSet, *mat.Dense, []float64) {
	t.Helper()
	ridges := NewRidgeSet(3)
	require.NoError(t, ridges.Append([]int{2, 2, 2}, RidgeActive))
	require.NoError(t, ridges.Append([]int{Gap, 6, Gap}, RidgeActive))
	require.NoError(t, ridges.Append([]int{7, 7, Gap}, RidgeDead))

	coef := mat.NewDense(3, 10, nil)
	coef.Set(0, 2, 1)
	coef.Set(1, 2, 5)
	coef.Set(2, 2, 3)
	coef.Set(1, 6, 50)
	coef.Set(0, 7, 0.5)
	coef.Set(1, 7, 0.5)

	noise := make([]float64, 10)
	for i := range noise {
		noise[i] = 0.1
	}
	return ridges, coef, noise
}

func TestFilterRidges(t *testing.T) {
	ridges, coef, noise := filterFixture(t)

	kept, maxima, err := FilterRidges(ridges, coef, noise, DefaultFilterConfig())
	require.NoError(t, err)

	// The one-point ridge is too short; the last one is too weak.
	require.Equal(t, 1, kept.Len())
	assert.Equal(t, []int{2, 2, 2}, kept.Ridge(0).Positions)
	assert.Equal(t, []MaximaCoord{{Scale: 1, Position: 2}}, maxima)
}

func TestFilterRidgesTieUsesFinestScale(t *testing.T) {
	ridges, coef, noise := filterFixture(t)

	kept, maxima, err := FilterRidges(ridges, coef, noise, FilterConfig{MinLength: Auto, MinSNR: 4})
	require.NoError(t, err)

	require.Equal(t, 2, kept.Len())
	assert.Equal(t, RidgeDead, kept.Ridge(1).State)
	assert.Equal(t, []MaximaCoord{{Scale: 1, Position: 2}, {Scale: 0, Position: 7}}, maxima)
}

func TestFilterRidgesMinLength(t *testing.T) {
	ridges, coef, noise := filterFixture(t)

	_, maxima, err := FilterRidges(ridges, coef, noise, FilterConfig{MinLength: 0, MinSNR: 10})
	require.NoError(t, err)
	assert.Equal(t, []MaximaCoord{{Scale: 1, Position: 2}, {Scale: 1, Position: 6}}, maxima)
}

func TestFilterRidgesSkipsEmptyRidges(t *testing.T) {
	ridges, coef, noise := filterFixture(t)
	require.NoError(t, ridges.Append([]int{Gap, Gap, Gap}, RidgeDead))

	for _, minLength := range []int{0, Auto, -5} {
		kept, maxima, err := FilterRidges(ridges, coef, noise, FilterConfig{MinLength: minLength, MinSNR: -1})
		require.NoError(t, err)
		assert.Len(t, maxima, kept.Len())
		for _, c := range maxima {
			assert.GreaterOrEqual(t, c.Scale, 0)
		}
	}
}

func TestFilterRidgesEverythingFiltered(t *testing.T) {
	ridges, coef, noise := filterFixture(t)

	kept, maxima, err := FilterRidges(ridges, coef, noise, FilterConfig{MinLength: Auto, MinSNR: 1e6})
	require.NoError(t, err)
	assert.Equal(t, 0, kept.Len())
	assert.NotNil(t, maxima)
	assert.Empty(t, maxima)
}

func TestFilterRidgesErrors(t *testing.T) {
	ridges, coef, noise := filterFixture(t)

	_, _, err := FilterRidges(ridges, coef, noise[:5], DefaultFilterConfig())
	assert.ErrorIs(t, err, ErrNoiseLength)

	_, _, err = FilterRidges(NewRidgeSet(2), coef, noise, DefaultFilterConfig())
	assert.ErrorIs(t, err, ErrScaleMismatch)

	bad := NewRidgeSet(3)
	require.NoError(t, bad.Append([]int{12, 3, 3}, RidgeActive))
	_, _, err = FilterRidges(bad, coef, noise, DefaultFilterConfig())
	assert.ErrorIs(t, err, ErrPositionRange)
}
