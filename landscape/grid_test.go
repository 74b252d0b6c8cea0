package landscape_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/landmetrics/landscape"
)

const nodata = 255

// roundTrip is a 5×5 grid with a no-data border, a 2×2 block of class 1 at
// (1,1)-(2,2) and class 2 on the rest of the interior.
func roundTrip() [][]int {
	return [][]int{
		{255, 255, 255, 255, 255},
		{255, 1, 1, 2, 255},
		{255, 1, 1, 2, 255},
		{255, 2, 2, 2, 255},
		{255, 255, 255, 255, 255},
	}
}

func mustGrid(t testing.TB, values [][]int, nd int) *landscape.Grid {
	t.Helper()
	g, err := landscape.NewGrid(values, nd)
	require.NoError(t, err)
	return g
}

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"NoRows", nil, landscape.ErrEmptyGrid},
		{"NoCols", [][]int{{}}, landscape.ErrEmptyGrid},
		{"Ragged", [][]int{{1, 2}, {1}}, landscape.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := landscape.NewGrid(tc.values, 0)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	g := mustGrid(t, in, 0)
	in[0][0] = 9
	assert.Equal(t, 1, g.At(0, 0))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, g.Rows())
}

// TestClassify checks sorting, deduplication and no-data exclusion.
func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		nd     int
		want   []int
	}{
		{"RoundTrip", roundTrip(), nodata, []int{1, 2}},
		{"Unsorted", [][]int{{7, 3, 7}, {0, 3, 5}}, -1, []int{0, 3, 5, 7}},
		{"NoDataZero", [][]int{{0, 4}, {4, 0}}, 0, []int{4}},
		{"Negative", [][]int{{-2, 3}, {-9, 3}}, 255, []int{-9, -2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := landscape.Classify(mustGrid(t, tc.values, tc.nd))
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Classify mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify_AllNoData(t *testing.T) {
	_, err := landscape.Classify(mustGrid(t, [][]int{{9, 9}, {9, 9}}, 9))
	require.ErrorIs(t, err, landscape.ErrEmptyClassSet)
}

func TestClassifyValues(t *testing.T) {
	got, err := landscape.ClassifyValues([][]float64{{-9999, 2, 1}, {1, 2, -9999}}, -9999)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	for _, bad := range []float64{1.5, math.NaN(), math.Inf(1)} {
		_, err := landscape.ClassifyValues([][]float64{{1, bad}}, 0)
		assert.ErrorIs(t, err, landscape.ErrInvalidData, "value %v", bad)
	}
}

func TestFromFloat64(t *testing.T) {
	g, err := landscape.FromFloat64([][]float64{{1, 2}, {-1, 3}}, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, g.NoData)
	assert.Equal(t, [][]int{{1, 2}, {-1, 3}}, g.Rows())
	assert.Equal(t, []float64{1, 2, 3}, g.Values())

	_, err = landscape.FromFloat64([][]float64{{1, 2.25}}, 0)
	require.ErrorIs(t, err, landscape.ErrInvalidData)

	_, err = landscape.FromFloat64([][]float64{{1}}, 0.5)
	require.ErrorIs(t, err, landscape.ErrInvalidData)
}

func TestMask(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 3}, {3, 255}}, nodata)

	m := g.Mask(3, true)
	assert.Equal(t, []int{0, 3, 3, 0}, m.Values, "class value survives")
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, m.Binary())

	zero := g.Mask(0, true)
	assert.Equal(t, []int{1, 0, 0, 0}, zero.Values, "class 0 uses an inclusion mask")

	plain := g.Mask(3, false)
	assert.Equal(t, []int{0, 1, 1, 0}, plain.Values)

	assert.False(t, m.Contains(-1, 0))
	assert.True(t, m.Contains(1, 0))
}

func TestMask_Erode(t *testing.T) {
	full := make([][]int, 5)
	for y := range full {
		full[y] = []int{1, 1, 1, 1, 1}
	}
	core := mustGrid(t, full, nodata).Mask(1, true).Erode()
	assert.Equal(t, 9, core.Count(), "raster edge erodes")
	assert.False(t, core.Contains(0, 0))
	assert.True(t, core.Contains(2, 2))
}
