package distance_test

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/genonet/distance"
	"github.com/katalvlaran/genonet/genotype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hom0 = genotype.NewCall(0, 0)
	het  = genotype.NewCall(0, 1)
	teh  = genotype.NewCall(1, 0)
	hom1 = genotype.NewCall(1, 1)
	miss = genotype.Missing
)

// randomGenotypes builds an n×v matrix with ~10% missing calls and a fixed seed.
func randomGenotypes(t testing.TB, n, v int, seed int64) *genotype.Matrix {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	ids := make([]string, n)
	rows := make([][]genotype.Call, n)
	for i := range rows {
		ids[i] = "S" + string(rune('A'+i%26)) + string(rune('a'+i/26))
		rows[i] = make([]genotype.Call, v)
		for k := range rows[i] {
			if r.Intn(10) == 0 {
				rows[i][k] = miss
				continue
			}
			rows[i][k] = genotype.NewCall(r.Intn(3), r.Intn(3))
		}
	}
	m, err := genotype.NewMatrix(ids, rows)
	require.NoError(t, err)

	return m
}

// mustAt reads a cell or fails the test.
func mustAt(t *testing.T, m *distance.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestCompute_AllelicMismatchPositional(t *testing.T) {
	gm, err := genotype.NewMatrix(
		[]string{"A", "B", "C"},
		[][]genotype.Call{
			{hom0, het, hom1},
			{hom0, teh, hom0},
			{hom1, het, hom1},
		},
	)
	require.NoError(t, err)

	dm, err := distance.Compute(context.Background(), gm)
	require.NoError(t, err)

	// A-B: variant 1 (0,1)vs(1,0) = 2, variant 2 (1,1)vs(0,0) = 2
	assert.Equal(t, 4.0, mustAt(t, dm, 0, 1))
	// A-C: variant 0 = 2
	assert.Equal(t, 2.0, mustAt(t, dm, 0, 2))
	// B-C: 2 + 2 + 2
	assert.Equal(t, 6.0, mustAt(t, dm, 1, 2))
	assert.NoError(t, distance.Validate(dm, 0))
}

func TestCompute_UnorderedGenotypes(t *testing.T) {
	gm, err := genotype.NewMatrix([]string{"A", "B"}, [][]genotype.Call{{het, miss}, {teh, hom0}})
	require.NoError(t, err)

	dm, err := distance.Compute(context.Background(), gm, distance.WithUnorderedGenotypes())
	require.NoError(t, err)
	assert.Equal(t, 0.0, mustAt(t, dm, 0, 1))
}

// Missing at variant 5 for X makes variant 5 contribute 0 to every pair with X,
// while Y-Z still counts its variant-5 mismatch.
func TestCompute_MissingNeverMismatches(t *testing.T) {
	base := []genotype.Call{hom0, hom0, hom0, hom0, hom0, hom0}
	x := append([]genotype.Call(nil), base...)
	y := append([]genotype.Call(nil), base...)
	z := append([]genotype.Call(nil), base...)
	x[5] = miss
	y[5] = hom1
	z[5] = hom0

	gm, err := genotype.NewMatrix([]string{"X", "Y", "Z"}, [][]genotype.Call{x, y, z})
	require.NoError(t, err)
	dm, err := distance.Compute(context.Background(), gm)
	require.NoError(t, err)

	xy, err := dm.Between("X", "Y")
	require.NoError(t, err)
	yz, err := dm.Between("Y", "Z")
	require.NoError(t, err)
	assert.Equal(t, 0.0, xy)
	assert.Equal(t, 2.0, yz)
}

func TestCompute_PropertiesOnRandomData(t *testing.T) {
	const n, v = 23, 57
	gm := randomGenotypes(t, n, v, 7)

	dm, err := distance.Compute(context.Background(), gm, distance.WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, n, dm.Size())

	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, mustAt(t, dm, i, i))
		for j := 0; j < n; j++ {
			d := mustAt(t, dm, i, j)
			assert.Equal(t, d, mustAt(t, dm, j, i), "symmetry at (%d,%d)", i, j)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, float64(2*v))
			assert.Equal(t, math.Trunc(d), d, "allelic distance is integral")
		}
	}
}

func TestCompute_WorkerCountDoesNotChangeResult(t *testing.T) {
	gm := randomGenotypes(t, 31, 40, 11)
	for _, metric := range []distance.Metric{distance.AllelicMismatch, distance.Euclidean, distance.Hamming} {
		one, err := distance.Compute(context.Background(), gm, distance.WithMetric(metric), distance.WithWorkers(1))
		require.NoError(t, err)
		many, err := distance.Compute(context.Background(), gm, distance.WithMetric(metric), distance.WithWorkers(8))
		require.NoError(t, err)
		for i := 0; i < gm.NumSamples(); i++ {
			assert.Equal(t, one.Row(i), many.Row(i), "metric %v row %d", metric, i)
		}
	}
}

func TestCompute_EuclideanWithImputation(t *testing.T) {
	// variant 1 is missing for B: mean of A and C dosages (0 and 2) = 1.
	gm, err := genotype.NewMatrix(
		[]string{"A", "B", "C"},
		[][]genotype.Call{{hom0, hom0}, {hom1, miss}, {het, hom1}},
	)
	require.NoError(t, err)

	dm, err := distance.Compute(context.Background(), gm, distance.WithMetric(distance.Euclidean))
	require.NoError(t, err)

	// A=(0,0) B=(2,1) C=(1,2)
	assert.InDelta(t, math.Sqrt(5), mustAt(t, dm, 0, 1), 1e-12)
	assert.InDelta(t, math.Sqrt(5), mustAt(t, dm, 0, 2), 1e-12)
	assert.InDelta(t, math.Sqrt(2), mustAt(t, dm, 1, 2), 1e-12)
	assert.NoError(t, distance.ValidateValues(dm))

	hm, err := distance.Compute(context.Background(), gm, distance.WithMetric(distance.Hamming))
	require.NoError(t, err)
	assert.Equal(t, 2.0, mustAt(t, hm, 0, 1))
	assert.Equal(t, 2.0, mustAt(t, hm, 1, 2))
}

func TestCompute_AllMissingVariantHasNoNaN(t *testing.T) {
	gm, err := genotype.NewMatrix([]string{"A", "B"}, [][]genotype.Call{{miss}, {miss}})
	require.NoError(t, err)

	for _, metric := range []distance.Metric{distance.AllelicMismatch, distance.Euclidean, distance.Hamming} {
		dm, err := distance.Compute(context.Background(), gm, distance.WithMetric(metric))
		require.NoError(t, err)
		assert.Equal(t, 0.0, mustAt(t, dm, 0, 1), metric.String())
	}
}

func TestCompute_DegenerateSizes(t *testing.T) {
	one, err := genotype.NewMatrix([]string{"only"}, [][]genotype.Call{{het, hom1}})
	require.NoError(t, err)
	dm, err := distance.Compute(context.Background(), one)
	require.NoError(t, err)
	assert.Equal(t, 1, dm.Size())
	assert.Equal(t, 0.0, mustAt(t, dm, 0, 0))

	none, err := genotype.NewMatrix(nil, nil)
	require.NoError(t, err)
	dm, err = distance.Compute(context.Background(), none)
	require.NoError(t, err)
	assert.Equal(t, 0, dm.Size())
}

func TestCompute_Cancelled(t *testing.T) {
	gm := randomGenotypes(t, 12, 10, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dm, err := distance.Compute(ctx, gm)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, dm)
}

func TestCompute_CancelledMidRun(t *testing.T) {
	const n = 600
	for _, workers := range []int{1, 4} {
		t.Run("workers="+strconv.Itoa(workers), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// Cancel from inside the kernel once the first row is under way.
			var calls atomic.Int64
			pair := func(i, j int) float64 {
				if calls.Add(1) == 50 {
					cancel()
				}
				return 1
			}

			dm, err := distance.FillPairs(ctx, n, workers, pair)
			assert.ErrorIs(t, err, context.Canceled)
			assert.Nil(t, dm)
			assert.Less(t, calls.Load(), int64(n*(n-1)/2), "rows kept running after cancel")
		})
	}
}

func TestFillPairs_Complete(t *testing.T) {
	dm, err := distance.FillPairs(context.Background(), 300, 3, func(i, j int) float64 {
		return float64(i + j)
	})
	require.NoError(t, err)
	for _, c := range [][2]int{{0, 1}, {0, 299}, {150, 298}} {
		got, err := dm.At(c[0], c[1])
		require.NoError(t, err)
		assert.Equal(t, float64(c[0]+c[1]), got)
		mirror, err := dm.At(c[1], c[0])
		require.NoError(t, err)
		assert.Equal(t, got, mirror)
	}
}

func TestCompute_Errors(t *testing.T) {
	_, err := distance.Compute(context.Background(), nil)
	assert.ErrorIs(t, err, distance.ErrNilGenotypes)

	gm := randomGenotypes(t, 3, 3, 1)
	_, err = distance.Compute(context.Background(), gm, distance.WithMetric(distance.Metric(42)))
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)
}

func TestParseMetric(t *testing.T) {
	for name, want := range map[string]distance.Metric{
		"":          distance.AllelicMismatch,
		"Allelic":   distance.AllelicMismatch,
		"euclidean": distance.Euclidean,
		" HAMMING ": distance.Hamming,
	} {
		got, err := distance.ParseMetric(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := distance.ParseMetric("manhattan")
	assert.ErrorIs(t, err, distance.ErrUnknownMetric)
	assert.Equal(t, "euclidean", distance.Euclidean.String())
}
