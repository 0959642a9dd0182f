package core

import "sync/atomic"

// Clone returns a deep copy of nodes, edges and adjacency. Member slices are
// copied; Metadata maps are shared. The edge ID counter carries over so new
// edges on the clone never reuse an ID.
// Complexity: O(V·k + E).
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	cp := NewGraph()
	atomic.StoreUint64(&cp.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, n := range g.nodes {
		nn := copyNode(n)
		cp.nodes[id] = &nn
	}
	for eid, e := range g.edges {
		ee := *e
		cp.edges[eid] = &ee
	}
	for from, inner := range g.adjacency {
		m := make(map[string]string, len(inner))
		for to, eid := range inner {
			m[to] = eid
		}
		cp.adjacency[from] = m
	}

	return cp
}
