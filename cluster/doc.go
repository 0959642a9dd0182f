// Package cluster defines the clustering capability the Mapper pipeline runs
// inside every cover region, plus three implementations.
//
// Contract
//
//	Cluster(ctx, points) returns a Result whose Labels are aligned with points:
//	a label >= 0 names a cluster, Noise (-1) marks an unassigned point.
//	Clusters are disjoint and non-empty by construction; label values need
//	not be contiguous. Implementations must be deterministic for a fixed
//	input and should return ctx.Err() promptly once ctx is done.
//
// Implementations
//
//   - DBSCAN: density based. A core point has at least MinPts points (itself
//     included) within Eps; clusters grow breadth-first from core points;
//     border points join the first cluster reaching them; the rest is Noise.
//   - SingleLinkage: Kruskal over the pairs closer than Threshold with a
//     disjoint-set forest (path compression, union by rank). Components
//     smaller than MinSize are Noise.
//   - Trivial: one cluster holding every point.
//
// Complexity (n = points in the region, d = dimension)
//
//   - DBSCAN:        O(n²·d) time, O(n + Σ neighbours) memory.
//   - SingleLinkage: O(n²·d + E log E) time for E pairs under the threshold.
//   - Trivial:       O(n).
package cluster
