package core

import (
	"sort"

	"github.com/katalvlaran/lvmapper/errors"
)

// AddNode inserts n. Members are copied and sorted ascending; Metadata is
// referenced. Returns ErrEmptyNodeID, ErrEmptyMembers or ErrDuplicateNode.
// Complexity: O(k log k) for k members.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if len(n.Members) == 0 {
		return errors.Wrapf(ErrEmptyMembers, "node %q", n.ID)
	}
	members := append([]int(nil), n.Members...)
	sort.Ints(members)
	n.Members = members
	if n.Metadata == nil {
		n.Metadata = make(map[string]interface{})
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, exists := g.nodes[n.ID]; exists {
		return errors.Wrapf(ErrDuplicateNode, "node %q", n.ID)
	}
	g.nodes[n.ID] = &n

	g.muEdgeAdj.Lock()
	if g.adjacency[n.ID] == nil {
		g.adjacency[n.ID] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID.
// Members is a fresh slice; Metadata is shared.
func (g *Graph) Node(id string) (Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, errors.Wrapf(ErrNodeNotFound, "node %q", id)
	}

	return copyNode(n), nil
}

// Members returns a copy of the member indices of node id.
func (g *Graph) Members(id string) ([]int, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "node %q", id)
	}

	return append([]int(nil), n.Members...), nil
}

// Nodes returns copies of all nodes ordered by (Region, Cluster, ID).
// Complexity: O(V log V + Σk).
func (g *Graph) Nodes() []Node {
	g.muNode.RLock()
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, copyNode(n))
	}
	g.muNode.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Region != out[j].Region {
			return out[i].Region < out[j].Region
		}
		if out[i].Cluster != out[j].Cluster {
			return out[i].Cluster < out[j].Cluster
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// NodeIDs returns the node IDs in the same order as Nodes.
func (g *Graph) NodeIDs() []string {
	nodes := g.Nodes()
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

func copyNode(n *Node) Node {
	cp := *n
	cp.Members = append([]int(nil), n.Members...)

	return cp
}
