// Package mapper assembles the Mapper graph: filter → cover → per-region
// clustering → nerve edges.
//
// What
//
//   - New(opts...) validates the capabilities once (filter, cover, clusterer,
//     worker count, minimum cluster size) and returns a reusable Mapper.
//   - (*Mapper).Build(ctx, cloud) runs one stateless pass and returns a Result
//     holding the core.Graph plus the regions, membership and filter values
//     that produced it.
//
// Algorithm
//
//  1. Validate the cloud; apply the filter; build the cover and assign points.
//  2. Fork: one task per non-empty region, at most Workers at a time. Each task
//     clusters its region's coordinate subset and writes only its own slot.
//  3. Join. One node per cluster with at least MinClusterSize members, created
//     in ascending (region, cluster) order with ID "r<region>c<cluster>";
//     cluster numbers follow each cluster's smallest member.
//  4. Edge pass (single-threaded): every unordered node pair from different
//     regions whose member sets intersect gets an edge weighted by the
//     intersection size. With overlap pruning on, pairs from regions with
//     disjoint bounds are skipped without computing the intersection.
//
// Errors
//
//	Configuration problems surface from New or Build with the
//	errors.ErrInvalidConfiguration class; an empty cloud with the
//	errors.ErrEmptyInput class. A clusterer failure aborts the run and is
//	returned as *RegionError, which unwraps to the clusterer's own error.
//	No partial graph is ever returned.
//
// Determinism
//
//	Same cloud + same configuration ⇒ identical node IDs, member sets, edge
//	endpoints, weights and edge IDs, for any worker count.
package mapper
