package core

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/lvmapper/errors"
)

const edgeIDPrefix = "e"

// AddEdge links a and b with the given weight and returns the new Edge.ID.
// Endpoints are stored as From = min(a, b), To = max(a, b).
//
// Returns ErrNodeNotFound, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed or ErrBadWeight.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string, weight int64) (string, error) {
	// 1) Validation
	if weight < 1 {
		return "", errors.Wrapf(ErrBadWeight, "weight=%d", weight)
	}
	if a == b {
		return "", errors.Wrapf(ErrLoopNotAllowed, "node %q", a)
	}
	if !g.HasNode(a) {
		return "", errors.Wrapf(ErrNodeNotFound, "node %q", a)
	}
	if !g.HasNode(b) {
		return "", errors.Wrapf(ErrNodeNotFound, "node %q", b)
	}
	if b < a {
		a, b = b, a
	}

	// 2) Insert under the edge lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, exists := g.adjacency[a][b]; exists {
		return "", errors.Wrapf(ErrMultiEdgeNotAllowed, "%q-%q", a, b)
	}
	eid := edgeIDPrefix + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: a, To: b, Weight: weight}
	g.link(a, b, eid)
	g.link(b, a, eid)

	return eid, nil
}

// link records adjacency[from][to] = eid; caller holds muEdgeAdj.
func (g *Graph) link(from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]string)
	}
	g.adjacency[from][to] = eid
}

// HasEdge reports whether a and b are linked, in either order.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edge returns the edge between a and b, in either order.
func (g *Graph) Edge(a, b string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[a][b]
	if !ok {
		return Edge{}, errors.Wrapf(ErrEdgeNotFound, "%q-%q", a, b)
	}

	return *g.edges[eid], nil
}

// Edges returns all edges ordered by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the sorted IDs of nodes linked to id.
// Returns ErrNodeNotFound for unknown nodes.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, errors.Wrapf(ErrNodeNotFound, "node %q", id)
	}
	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasNode(id) {
		return 0, errors.Wrapf(ErrNodeNotFound, "node %q", id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// Stats computes summary counts over the current graph.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges)}
	for id, n := range g.nodes {
		deg := len(g.adjacency[id])
		if deg == 0 {
			s.Isolated++
		}
		if deg > s.MaxDegree {
			s.MaxDegree = deg
		}
		if len(n.Members) > s.MaxNodeSize {
			s.MaxNodeSize = len(n.Members)
		}
	}
	for _, e := range g.edges {
		s.TotalWeight += e.Weight
	}
	if s.Nodes > 0 {
		s.MeanDegree = 2 * float64(s.Edges) / float64(s.Nodes)
	}

	return s
}
