// Package filter provides lens functions: maps from a point cloud to a
// low-dimensional "filter value" per point, the first stage of the Mapper
// pipeline.
//
// What
//
//   - Filter is a pure, deterministic capability: Apply returns exactly one
//     output vector per input point, all of the same length Dim(inputDim).
//   - Coordinate lenses: Identity, Projection(indices...).
//   - User lenses: Func(dim, fn).
//   - Statistical scalar lenses: Sum, Mean, Max, Min, L2Norm,
//     DistanceToCentroid, Eccentricity(p).
//   - Linear lens: PCA(k), projection on the top-k principal axes.
//   - ByName resolves a lens from configuration.
//
// Errors
//
//	All configuration problems (no indices, index past the input dimension,
//	bad output dimension, bad PCA component count) are of the
//	errors.ErrInvalidConfiguration class; an empty input is of the
//	errors.ErrEmptyInput class.
//
// Complexity (N = points, D = input dimension)
//
//   - Identity, Projection, scalar lenses: O(N·D).
//   - Eccentricity: O(N²·D) time, O(N²) memory (pairwise distance matrix).
//   - PCA: O(N·D² + D³).
//
// Usage
//
//	values, err := filter.Projection(0).Apply(cloud.Points)
//	if err != nil {
//	    // errors.Is(err, filter.ErrProjectionIndex) ...
//	}
package filter
