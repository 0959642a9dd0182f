// Package core provides the thread-safe in-memory Mapper graph: nodes are
// clusters of point indices, edges join clusters whose member sets intersect.
//
// The Graph G = (V,E) is always undirected and simple:
//
//   - Node: ID "r<region>c<cluster>", the originating cover region and the
//     cluster label within it, the ascending global point indices it holds,
//     and free-form Metadata.
//   - Edge: ID "e1", "e2", … from an atomic counter, endpoints normalized so
//     From < To, integer Weight >= 1 (the size of the member intersection).
//   - No self-loops, no parallel edges.
//   - Separate sync.RWMutex for nodes (muNode) and edges+adjacency (muEdgeAdj).
//
// Determinism
//
//	Nodes() is ordered by (Region, Cluster, ID), Edges() by (From, To), and
//	NeighborIDs() lexicographically, so every enumeration is reproducible.
//
// Errors
//
//	ErrEmptyNodeID         - node ID is the empty string.
//	ErrEmptyMembers        - node has no member points.
//	ErrDuplicateNode       - a node with that ID already exists.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested node pair is not linked.
//	ErrLoopNotAllowed      - edge endpoints are the same node.
//	ErrMultiEdgeNotAllowed - an edge between the endpoints already exists.
//	ErrBadWeight           - edge weight below 1.
//
// Complexity
//
//   - AddNode: O(k log k) for k members; AddEdge, HasEdge, Degree: O(1).
//   - Nodes, Edges: O(V log V), O(E log E).
//   - Clone: O(V·k + E).
//
// Usage
//
//	g := core.NewGraph()
//	_ = g.AddNode(core.Node{ID: core.NodeID(0, 0), Members: []int{0, 1, 2}})
//	_ = g.AddNode(core.Node{ID: core.NodeID(1, 0), Region: 1, Members: []int{2, 3}})
//	_, _ = g.AddEdge("r0c0", "r1c0", 1)
package core
