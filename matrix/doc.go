// Package matrix provides the small amount of dense linear algebra the
// Mapper lenses and clusterers need.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set.
//   - Column statistics: ColumnMeans, CenterColumns and the sample
//     Covariance (n-1 denominator).
//   - EigenSym: cyclic Jacobi eigen-decomposition of symmetric matrices,
//     eigenvalues sorted descending with matching eigenvector columns.
//   - Distance metrics (Euclidean, Manhattan, Chebyshev, Cosine) and
//     PairwiseDistances.
//
// Every routine reports failures through the sentinels in errors.go; none
// panics on user input.
package matrix
