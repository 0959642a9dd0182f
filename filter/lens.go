// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/matrix"
)

// scalar reduces each point to one value.
type scalar struct {
	name   string
	reduce func([]float64) float64
}

func (s scalar) Dim(int) (int, error) { return 1, nil }

func (s scalar) Apply(points [][]float64) ([][]float64, error) {
	if _, err := inputDim(points); err != nil {
		return nil, err
	}
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = []float64{s.reduce(p)}
	}

	return out, nil
}

func (s scalar) String() string { return s.name }

// Sum returns the lens Σ_j x_j.
func Sum() Filter {
	return scalar{name: KindSum, reduce: func(p []float64) float64 {
		var s float64
		for _, v := range p {
			s += v
		}
		return s
	}}
}

// Mean returns the lens Σ_j x_j / D.
func Mean() Filter {
	return scalar{name: KindMean, reduce: func(p []float64) float64 {
		var s float64
		for _, v := range p {
			s += v
		}
		return s / float64(len(p))
	}}
}

// Max returns the lens max_j x_j.
func Max() Filter {
	return scalar{name: KindMax, reduce: func(p []float64) float64 {
		m := p[0]
		for _, v := range p[1:] {
			if v > m {
				m = v
			}
		}
		return m
	}}
}

// Min returns the lens min_j x_j.
func Min() Filter {
	return scalar{name: KindMin, reduce: func(p []float64) float64 {
		m := p[0]
		for _, v := range p[1:] {
			if v < m {
				m = v
			}
		}
		return m
	}}
}

// L2Norm returns the lens ‖x‖₂.
func L2Norm() Filter {
	return scalar{name: KindL2Norm, reduce: func(p []float64) float64 {
		var s float64
		for _, v := range p {
			s += v * v
		}
		return math.Sqrt(s)
	}}
}

// centroid measures the Euclidean distance of every point to the cloud mean.
type centroid struct{}

// DistanceToCentroid returns the lens ‖x - mean(X)‖₂.
func DistanceToCentroid() Filter { return centroid{} }

func (centroid) Dim(int) (int, error) { return 1, nil }

func (centroid) Apply(points [][]float64) ([][]float64, error) {
	if _, err := inputDim(points); err != nil {
		return nil, err
	}
	X, err := matrix.FromRows(points)
	if err != nil {
		return nil, errors.Wrap(err, "filter: centroid")
	}
	means, err := matrix.ColumnMeans(X)
	if err != nil {
		return nil, errors.Wrap(err, "filter: centroid")
	}
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = []float64{matrix.Euclidean(p, means)}
	}

	return out, nil
}

func (centroid) String() string { return KindCentroid }

// eccentricity is the p-mean of a point's distances to every point.
type eccentricity struct {
	p float64
}

// Eccentricity returns the lens (Σ_j d(x_i,x_j)^p / N)^(1/p), p >= 1.
// Central points get small values and outlying points large ones.
// Memory: O(N²) for the distance matrix.
func Eccentricity(p float64) Filter { return eccentricity{p: p} }

func (f eccentricity) Dim(int) (int, error) {
	if f.p < 1 || math.IsInf(f.p, 0) || math.IsNaN(f.p) {
		return 0, errors.Wrapf(ErrPower, "p=%g", f.p)
	}

	return 1, nil
}

func (f eccentricity) Apply(points [][]float64) ([][]float64, error) {
	d, err := inputDim(points)
	if err != nil {
		return nil, err
	}
	if _, err = f.Dim(d); err != nil {
		return nil, err
	}
	D, err := matrix.PairwiseDistances(points, matrix.Euclidean)
	if err != nil {
		return nil, errors.Wrap(err, "filter: eccentricity")
	}
	n := len(points)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		var s float64
		for _, dist := range D.Row(i) {
			if f.p == 1 {
				s += dist
			} else {
				s += math.Pow(dist, f.p)
			}
		}
		s /= float64(n)
		if f.p != 1 {
			s = math.Pow(s, 1/f.p)
		}
		out[i] = []float64{s}
	}

	return out, nil
}

func (f eccentricity) String() string { return fmt.Sprintf("%s(%g)", KindEccentricity, f.p) }
