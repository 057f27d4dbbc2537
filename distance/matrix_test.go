package distance_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/genonet/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows_Valid(t *testing.T) {
	dm, err := distance.FromRows([]string{"A", "B", "C"}, [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, dm.Samples())
	d, err := dm.Between("C", "A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
	i, ok := dm.Index("B")
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 0, 2}, dm.Row(i))
	assert.Contains(t, dm.String(), "A [0, 1, 3]")
}

func TestFromRows_Rejects(t *testing.T) {
	cases := map[string]struct {
		ids  []string
		rows [][]float64
		want error
	}{
		"duplicate id": {[]string{"A", "A"}, [][]float64{{0, 1}, {1, 0}}, distance.ErrDuplicateSample},
		"row count":    {[]string{"A", "B"}, [][]float64{{0, 1}}, distance.ErrDimensionMismatch},
		"row length":   {[]string{"A", "B"}, [][]float64{{0, 1}, {1}}, distance.ErrDimensionMismatch},
		"asymmetric":   {[]string{"A", "B"}, [][]float64{{0, 1}, {2, 0}}, distance.ErrAsymmetry},
		"diagonal":     {[]string{"A", "B"}, [][]float64{{1, 1}, {1, 0}}, distance.ErrNonZeroDiagonal},
		"negative":     {[]string{"A", "B"}, [][]float64{{0, -1}, {-1, 0}}, distance.ErrBadValue},
		"nan":          {[]string{"A", "B"}, [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, distance.ErrBadValue},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := distance.FromRows(tc.ids, tc.rows)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMatrix_Lookups(t *testing.T) {
	dm, err := distance.FromRows([]string{"A"}, [][]float64{{0}})
	require.NoError(t, err)

	_, err = dm.At(1, 0)
	assert.ErrorIs(t, err, distance.ErrOutOfRange)
	_, err = dm.At(0, -1)
	assert.ErrorIs(t, err, distance.ErrOutOfRange)
	_, err = dm.Between("A", "Z")
	assert.ErrorIs(t, err, distance.ErrUnknownSample)
}

// BenchmarkCompute measures the O(N²·V) kernel for 200 samples × 2000 variants.
func BenchmarkCompute(b *testing.B) {
	gm := randomGenotypes(b, 200, 2000, 42) // pre-build matrix once
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.Compute(ctx, gm)
	}
}
