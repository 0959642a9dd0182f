// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All routines return these sentinels (wrapped with call-site context) and
// tests check them via errors.Is. No routine panics on user input.

package matrix

import "github.com/katalvlaran/lvmapper/errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when input rows have differing lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals a matrix expected to be symmetric is not, within tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEigenFailed indicates that the Jacobi sweep did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")

	// ErrTooFewRows indicates a statistic needs more observations (e.g. covariance with r<2).
	ErrTooFewRows = errors.New("matrix: not enough rows")
)

// matrixErrorf wraps err with an operation tag, keeping the sentinel for errors.Is.
func matrixErrorf(op string, err error) error {
	return errors.Wrapf(err, "%s", op)
}
