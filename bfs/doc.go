// Package bfs provides breadth-first search and connected components over a
// Mapper graph (core.Graph).
//
// What
//
//   - BFS explores nodes in non-decreasing hop distance from a start node and
//     returns a Result with the visit Order, the Depth of every reached node
//     and the Parent links of the BFS tree.
//   - OnVisit may abort the search with an error.
//   - WithFilterNeighbor skips individual links; WithMaxDepth bounds the search.
//   - Components partitions the graph into connected components.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbours sorted by ID, and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - BFS:        O(V + E) time, O(V) memory.
//   - Components: O(V + E) time, O(V) memory.
package bfs
