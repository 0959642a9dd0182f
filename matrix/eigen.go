// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvmapper/errors"
)

const opEigenSym = "EigenSym"

// DefaultEigenTol is used when EigenSym receives a non-positive tolerance.
const DefaultEigenTol = 1e-12

// defaultSweeps scales the rotation budget (×n²) when maxIter <= 0.
const defaultSweeps = 100

// EigenSym performs Jacobi eigenvalue decomposition on a symmetric matrix m.
// It returns eigenvalues sorted in descending order and a matrix Q whose
// column k is the unit eigenvector for eigenvalue k.
// tol is the convergence threshold on the largest off-diagonal magnitude,
// maxIter caps the number of rotations.
// Returns ErrNonSquare, ErrAsymmetry, or ErrEigenFailed.
// Complexity: O(n²) per rotation to find the pivot plus O(n) to apply it;
// Memory: O(n²).
func EigenSym(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	// Stage 1: Validate input
	if m == nil || m.r != m.c {
		return nil, nil, matrixErrorf(opEigenSym, ErrNonSquare)
	}
	n := m.r
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxIter <= 0 {
		maxIter = defaultSweeps * n * n
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return nil, nil, errors.Wrapf(ErrAsymmetry, "%s: (%d,%d)", opEigenSym, i, j)
			}
		}
	}

	// Stage 2: Prepare A (work) and Q (eigenvectors, starts as identity)
	A := m.Clone()
	Q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	for i := 0; i < n; i++ {
		Q.data[i*n+i] = 1
	}

	// Stage 3: Jacobi rotations on the largest off-diagonal pivot
	var (
		iter      int
		p, q      int
		converged bool
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff := 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if off := math.Abs(A.data[i*n+j]); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}
		app := A.data[p*n+p]
		aqq := A.data[q*n+q]
		apq := A.data[p*n+q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for k := 0; k < n; k++ {
			if k == p || k == q {
				continue
			}
			akp := A.data[k*n+p]
			akq := A.data[k*n+q]
			A.data[k*n+p] = c*akp - s*akq
			A.data[p*n+k] = A.data[k*n+p]
			A.data[k*n+q] = s*akp + c*akq
			A.data[q*n+k] = A.data[k*n+q]
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q] = 0
		A.data[q*n+p] = 0

		for k := 0; k < n; k++ {
			qkp := Q.data[k*n+p]
			qkq := Q.data[k*n+q]
			Q.data[k*n+p] = c*qkp - s*qkq
			Q.data[k*n+q] = s*qkp + c*qkq
		}
	}
	if !converged {
		return nil, nil, errors.Wrapf(ErrEigenFailed, "%s: %d iterations", opEigenSym, iter)
	}

	// Stage 4: sort eigenpairs by descending eigenvalue (stable for ties)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return A.data[order[a]*n+order[a]] > A.data[order[b]*n+order[b]]
	})
	vals := make([]float64, n)
	vecs, _ := NewDense(n, n)
	for k, src := range order {
		vals[k] = A.data[src*n+src]
		for i := 0; i < n; i++ {
			vecs.data[i*n+k] = Q.data[i*n+src]
		}
	}

	return vals, vecs, nil
}
