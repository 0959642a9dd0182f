package export

import (
	"time"

	"github.com/katalvlaran/lvmapper/mapper"
)

// Document is the complete exported graph.
type Document struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Links []Link `json:"links" yaml:"links"`
	Meta  Meta   `json:"meta" yaml:"meta"`
}

// Node is one (region, cluster) node.
type Node struct {
	ID        string         `json:"id" yaml:"id"`
	Region    int            `json:"region" yaml:"region"`
	Cluster   int            `json:"cluster" yaml:"cluster"`
	Size      int            `json:"size" yaml:"size"`
	Members   []int          `json:"members,omitempty" yaml:"members,omitempty"`
	Centroid  []float64      `json:"centroid" yaml:"centroid"`
	Label     string         `json:"label,omitempty" yaml:"label,omitempty"`   // majority label
	Labels    map[string]int `json:"labels,omitempty" yaml:"labels,omitempty"` // label histogram
	Component int            `json:"component" yaml:"component"`
}

// Link is an edge between two nodes sharing Weight points.
type Link struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Weight int64  `json:"value" yaml:"value"` // D3 uses "value"
}

// Meta describes the run that produced the document.
type Meta struct {
	RunID       string            `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
	Elapsed     string            `json:"elapsed" yaml:"elapsed"`
	Stats       Stats             `json:"stats" yaml:"stats"`
	Pipeline    mapper.RunStats   `json:"pipeline" yaml:"pipeline"`
	Config      map[string]string `json:"config,omitempty" yaml:"config,omitempty"`
}

// Stats summarises the exported graph.
type Stats struct {
	Nodes         int `json:"nodes" yaml:"nodes"`
	Edges         int `json:"edges" yaml:"edges"`
	Components    int `json:"components" yaml:"components"`
	Points        int `json:"points" yaml:"points"`
	CoveredPoints int `json:"covered_points" yaml:"covered_points"` // points in at least one node
}
