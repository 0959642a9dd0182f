// Package core defines the Mapper Graph, Node and Edge types and the
// thread-safe primitives for building, querying and cloning them.
package core

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvmapper/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyMembers indicates a Node with no member points.
	ErrEmptyMembers = errors.New("core: node has no members")

	// ErrDuplicateNode indicates AddNode was called twice with the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates the requested node pair is not linked.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an edge weight below 1.
	ErrBadWeight = errors.New("core: edge weight must be >= 1")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Node is one cluster found inside one cover region.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Region is the cover region the cluster was found in.
	Region int

	// Cluster is the cluster label inside that region.
	Cluster int

	// Members holds the global point indices, ascending.
	Members []int

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Size returns the number of member points.
func (n Node) Size() int { return len(n.Members) }

// Edge is an undirected link between two nodes sharing member points.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From and To are the endpoint node IDs, From < To.
	From string
	To   string

	// Weight is the number of shared member points.
	Weight int64
}

// Stats summarizes a Graph.
type Stats struct {
	Nodes       int     `json:"nodes" yaml:"nodes"`
	Edges       int     `json:"edges" yaml:"edges"`
	Isolated    int     `json:"isolated" yaml:"isolated"`
	MaxDegree   int     `json:"max_degree" yaml:"max_degree"`
	MeanDegree  float64 `json:"mean_degree" yaml:"mean_degree"`
	TotalWeight int64   `json:"total_weight" yaml:"total_weight"`
	MaxNodeSize int     `json:"max_node_size" yaml:"max_node_size"`
}

// Graph is the Mapper graph.
//
// muNode protects nodes; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muNode    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextEdgeID uint64           // atomic edge ID generator
	nodes      map[string]*Node // node ID → Node
	edges      map[string]*Edge // edge ID → Edge

	// adjacency[a][b] = edge ID, mirrored for both endpoints
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}

// NodeID formats the canonical node ID for a (region, cluster) pair.
func NodeID(region, cluster int) string {
	return fmt.Sprintf("r%dc%d", region, cluster)
}
