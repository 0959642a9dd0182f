// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strings"

	"github.com/katalvlaran/lvmapper/errors"
)

// Metric is a distance between two equal-length vectors.
// Implementations must be symmetric and return 0 for identical inputs.
type Metric func(a, b []float64) float64

// Metric names accepted by MetricByName.
const (
	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
	MetricChebyshev = "chebyshev"
	MetricCosine    = "cosine"
)

// ErrUnknownMetric is returned by MetricByName for unsupported names.
var ErrUnknownMetric = errors.Invalid("matrix: unknown metric")

// Euclidean returns the L2 distance.
func Euclidean(a, b []float64) float64 {
	var sum float64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		sum += d0*d0 + d1*d1 + d2*d2 + d3*d3
	}
	for ; i < len(a); i++ {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Manhattan returns the L1 distance.
func Manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// Chebyshev returns the L∞ distance.
func Chebyshev(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}

	return m
}

// Cosine returns 1 - cos(a,b). A zero vector is at distance 1 from anything
// except another zero vector, which is at distance 0.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 && nb == 0 {
		return 0
	}
	if na == 0 || nb == 0 {
		return 1
	}
	d := 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
	if d < 0 {
		return 0 // rounding on parallel vectors
	}

	return d
}

// MetricByName resolves a metric name (case-insensitive); "" means Euclidean.
func MetricByName(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MetricEuclidean:
		return Euclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, errors.Wrapf(ErrUnknownMetric, "%q", name)
	}
}

// PairwiseDistances returns the symmetric n×n matrix D[i,j] = metric(p_i, p_j)
// with a zero diagonal. A nil metric means Euclidean.
// Returns ErrBadShape for empty or ragged input.
// Complexity: O(n²·d) time, O(n²) memory; each unordered pair is evaluated once.
func PairwiseDistances(points [][]float64, metric Metric) (*Dense, error) {
	n := len(points)
	if n == 0 || len(points[0]) == 0 {
		return nil, errors.Wrap(ErrBadShape, "PairwiseDistances: empty input")
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, errors.Wrapf(ErrBadShape, "PairwiseDistances: row %d", i)
		}
	}
	if metric == nil {
		metric = Euclidean
	}
	D, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric(points[i], points[j])
			D.data[i*n+j] = d
			D.data[j*n+i] = d
		}
	}

	return D, nil
}
