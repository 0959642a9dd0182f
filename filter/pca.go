// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmapper/errors"
	"github.com/katalvlaran/lvmapper/matrix"
)

// pca projects centred points on the top-k eigenvectors of the sample covariance.
type pca struct {
	k int
}

// PCA returns a lens projecting every point onto the k leading principal axes.
// Requires 1 <= k <= inputDim. Axis signs are fixed so that the largest-magnitude
// loading of each axis is positive, which makes the output reproducible.
// A single-point cloud maps to the origin.
func PCA(k int) Filter { return pca{k: k} }

func (f pca) Dim(inputDim int) (int, error) {
	if f.k < 1 || f.k > inputDim {
		return 0, errors.Wrapf(ErrComponents, "k=%d, input dimension %d", f.k, inputDim)
	}

	return f.k, nil
}

func (f pca) Apply(points [][]float64) ([][]float64, error) {
	d, err := inputDim(points)
	if err != nil {
		return nil, err
	}
	if _, err = f.Dim(d); err != nil {
		return nil, err
	}
	n := len(points)
	out := make([][]float64, n)
	if n == 1 {
		out[0] = make([]float64, f.k)
		return out, nil
	}

	// Stage 1: covariance and column means
	X, err := matrix.FromRows(points)
	if err != nil {
		return nil, errors.Wrap(err, "filter: pca")
	}
	cov, means, err := matrix.Covariance(X)
	if err != nil {
		return nil, errors.Wrap(err, "filter: pca")
	}

	// Stage 2: eigen-decomposition, eigenvalues descending
	_, vecs, err := matrix.EigenSym(cov, matrix.DefaultEigenTol, 0)
	if err != nil {
		return nil, errors.Wrap(err, "filter: pca")
	}
	axes := make([][]float64, f.k)
	for c := 0; c < f.k; c++ {
		axes[c] = canonicalSign(vecs.Col(c))
	}

	// Stage 3: project centred points
	for i, p := range points {
		v := make([]float64, f.k)
		for c, axis := range axes {
			var s float64
			for j := range p {
				s += (p[j] - means[j]) * axis[j]
			}
			v[c] = s
		}
		out[i] = v
	}

	return out, nil
}

func (f pca) String() string { return fmt.Sprintf("%s(%d)", KindPCA, f.k) }

// canonicalSign flips v in place so its largest-magnitude entry is positive.
func canonicalSign(v []float64) []float64 {
	best := 0
	for i := range v {
		if math.Abs(v[i]) > math.Abs(v[best]) {
			best = i
		}
	}
	if v[best] < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}

	return v
}
