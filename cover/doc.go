// Package cover partitions the range of filter values into overlapping
// axis-aligned regions and assigns points to them.
//
// What
//
//   - Region: a closed hyperrectangle [Lo, Hi] with a stable integer ID.
//   - Cover: builds regions from filter values and assigns every point to
//     each region containing it.
//   - Cubical: the classic Mapper cover. Per filter dimension the padded
//     range [min, max] is split into n equal base intervals of width w, each
//     widened by Overlap·w/2 on both sides so neighbours share a band of width
//     Overlap·w. Dimensions are combined by Cartesian product.
//
// Boundary rule
//
//	Bounds are closed on both ends. A value sitting exactly on a shared base
//	boundary belongs to both neighbouring regions, even with zero overlap.
//	Base edges are computed once per dimension (lo + k·w, last pinned to max),
//	so neighbouring regions share the identical float boundary.
//
// Region IDs
//
//	IDs are row-major over the per-dimension interval indices, last dimension
//	fastest: for counts (n0, n1) region (i, j) has ID i·n1 + j.
//
// Invariants
//
//   - Covering: every value used to Build lies in at least one region.
//   - Membership lists are ascending point indices; NonEmpty is ascending
//     region IDs.
//
// Complexity (N = points, m = filter dimension, n = intervals per dimension)
//
//   - Build: O(N·m + nᵐ·m).
//   - Cubical.Assign: O(N·(m·n + k)) where k is the number of regions a point
//     falls in.
package cover
