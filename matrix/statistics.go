// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics used by the PCA and centroid lenses: means, centering,
//     sample covariance.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops, operating on the flat row-major buffer.

package matrix

const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
// Complexity: O(r*c).
func ColumnMeans(X *Dense) ([]float64, error) {
	if X == nil {
		return nil, matrixErrorf(opColumnMeans, ErrBadShape)
	}
	r, c := X.r, X.c
	means := make([]float64, c)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}
	inv := 1.0 / float64(r)
	for j := range means {
		means[j] *= inv
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element and returns
// the centered copy together with the means.
// Complexity: O(r*c) time and space.
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc := X.Clone()
	for i := 0; i < Xc.r; i++ {
		base := i * Xc.c
		for j := 0; j < Xc.c; j++ {
			Xc.data[base+j] -= means[j]
		}
	}

	return Xc, means, nil
}

// Covariance returns the c×c sample covariance of the columns of X,
// (Xcᵀ Xc)/(r-1), and the column means. Requires r ≥ 2 (ErrTooFewRows).
// The result is exactly symmetric: only the upper triangle is accumulated.
// Complexity: O(r*c²).
func Covariance(X *Dense) (*Dense, []float64, error) {
	if X == nil {
		return nil, nil, matrixErrorf(opCovariance, ErrBadShape)
	}
	if X.r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrTooFewRows)
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	c := X.c
	cov, err := NewDense(c, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	denom := float64(X.r - 1)
	for a := 0; a < c; a++ {
		for b := a; b < c; b++ {
			var s float64
			for i := 0; i < Xc.r; i++ {
				s += Xc.data[i*c+a] * Xc.data[i*c+b]
			}
			s /= denom
			cov.data[a*c+b] = s
			cov.data[b*c+a] = s
		}
	}

	return cov, means, nil
}
