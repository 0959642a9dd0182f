package filter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/filter"
)

const eps = 1e-9

func column(values [][]float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v[0]
	}
	return out
}

func TestIdentity_CopiesInput(t *testing.T) {
	pts := [][]float64{{1, 2}, {3, 4}}
	out, err := filter.Identity().Apply(pts)
	require.NoError(t, err)
	assert.Equal(t, pts, out)

	out[0][0] = 99
	assert.Equal(t, 1.0, pts[0][0], "input must not be aliased")

	d, err := filter.Identity().Dim(7)
	require.NoError(t, err)
	assert.Equal(t, 7, d)
}

func TestProjection(t *testing.T) {
	pts := [][]float64{{1, 2, 3}, {4, 5, 6}}

	out, err := filter.Projection(2, 0).Apply(pts)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1}, {6, 4}}, out)

	scalar, err := filter.Projection(1).Apply(pts)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, column(scalar))
}

func TestProjection_Errors(t *testing.T) {
	pts := [][]float64{{1, 2}}
	cases := []struct {
		name    string
		indices []int
		want    error
	}{
		{"none", nil, filter.ErrNoIndices},
		{"negative", []int{-1}, filter.ErrProjectionIndex},
		{"past dimension", []int{0, 2}, filter.ErrProjectionIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := filter.Projection(tc.indices...).Apply(pts)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, errors.IsInvalidConfiguration(err))
		})
	}
}

func TestApply_EmptyAndRagged(t *testing.T) {
	_, err := filter.Identity().Apply(nil)
	require.ErrorIs(t, err, filter.ErrEmptyInput)
	assert.True(t, errors.IsEmptyInput(err))

	_, err = filter.Sum().Apply([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, filter.ErrRagged)
}

func TestFunc(t *testing.T) {
	sq := filter.Func(2, func(p []float64) []float64 { return []float64{p[0] * p[0], -p[0]} })
	out, err := sq.Apply([][]float64{{3}, {-2}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{9, -3}, {4, 2}}, out)

	bad := filter.Func(2, func(p []float64) []float64 { return p })
	_, err = bad.Apply([][]float64{{1}})
	require.ErrorIs(t, err, filter.ErrOutputDim)

	_, err = filter.Func(0, func(p []float64) []float64 { return p }).Dim(1)
	require.ErrorIs(t, err, filter.ErrOutputDim)

	_, err = filter.Func(1, nil).Apply([][]float64{{1}})
	require.ErrorIs(t, err, filter.ErrNilFunc)
}

func TestScalarLenses(t *testing.T) {
	pts := [][]float64{{3, -4}, {1, 1}}
	cases := []struct {
		name string
		f    filter.Filter
		want []float64
	}{
		{"sum", filter.Sum(), []float64{-1, 2}},
		{"mean", filter.Mean(), []float64{-0.5, 1}},
		{"max", filter.Max(), []float64{3, 1}},
		{"min", filter.Min(), []float64{-4, 1}},
		{"l2norm", filter.L2Norm(), []float64{5, math.Sqrt2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.f.Apply(pts)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, column(out), eps)
			d, err := tc.f.Dim(2)
			require.NoError(t, err)
			assert.Equal(t, 1, d)
		})
	}
}

func TestDistanceToCentroid(t *testing.T) {
	out, err := filter.DistanceToCentroid().Apply([][]float64{{0, 0}, {2, 0}, {1, 3}, {1, -3}})
	require.NoError(t, err)
	// centroid is (1, 0)
	assert.InDeltaSlice(t, []float64{1, 1, 3, 3}, column(out), eps)
}

func TestEccentricity(t *testing.T) {
	pts := [][]float64{{0}, {1}, {2}}

	out, err := filter.Eccentricity(1).Apply(pts)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2.0 / 3, 1}, column(out), eps)

	out, err = filter.Eccentricity(2).Apply(pts)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5.0/3), out[0][0], eps)
	assert.InDelta(t, math.Sqrt(2.0/3), out[1][0], eps)

	_, err = filter.Eccentricity(0.5).Apply(pts)
	require.ErrorIs(t, err, filter.ErrPower)
}

func TestPCA_LineRecoversArcLength(t *testing.T) {
	pts := [][]float64{{0, 0}, {1, 2}, {2, 4}}
	out, err := filter.PCA(1).Apply(pts)
	require.NoError(t, err)
	r5 := math.Sqrt(5)
	assert.InDeltaSlice(t, []float64{-r5, 0, r5}, column(out), 1e-8)

	_, err = filter.PCA(3).Apply(pts)
	require.ErrorIs(t, err, filter.ErrComponents)
	_, err = filter.PCA(0).Dim(2)
	require.ErrorIs(t, err, filter.ErrComponents)
}

func TestPCA_SinglePointAndDeterminism(t *testing.T) {
	out, err := filter.PCA(2).Apply([][]float64{{5, 5}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}}, out)

	pts := [][]float64{{1, 0, 2}, {0, 1, 1}, {3, 3, 0}, {2, -1, 1}, {0, 0, 0}}
	a, err := filter.PCA(2).Apply(pts)
	require.NoError(t, err)
	b, err := filter.PCA(2).Apply(pts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestByName(t *testing.T) {
	cases := []struct {
		kind    string
		params  filter.Params
		wantDim int
		wantErr error
	}{
		{"", filter.Params{}, 3, nil},
		{"Identity", filter.Params{}, 3, nil},
		{"projection", filter.Params{Indices: []int{0, 1}}, 2, nil},
		{"projection", filter.Params{}, 0, filter.ErrNoIndices},
		{"sum", filter.Params{}, 1, nil},
		{"l2norm", filter.Params{}, 1, nil},
		{"centroid", filter.Params{}, 1, nil},
		{"eccentricity", filter.Params{}, 1, nil},
		{"eccentricity", filter.Params{Power: 0.5}, 0, filter.ErrPower},
		{"pca", filter.Params{Components: 2}, 2, nil},
		{"pca", filter.Params{}, 0, filter.ErrComponents},
		{"umap", filter.Params{}, 0, filter.ErrUnknownFilter},
	}
	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			f, err := filter.ByName(tc.kind, tc.params)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			d, err := f.Dim(3)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDim, d)
		})
	}
}
