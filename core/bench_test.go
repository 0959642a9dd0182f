package core_test

import (
	"testing"

	"github.com/katalvlaran/lvmapper/core"
)

// BenchmarkAddEdge measures linking a chain of 1000 nodes.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1000
	ids := make([]string, n)
	for i := range ids {
		ids[i] = core.NodeID(i, 0)
	}
	b.ReportAllocs()
	for it := 0; it < b.N; it++ {
		g := core.NewGraph()
		for i, id := range ids {
			_ = g.AddNode(core.Node{ID: id, Region: i, Members: []int{i, i + 1}})
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(ids[i-1], ids[i], 1); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkNodes measures sorted enumeration.
func BenchmarkNodes(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddNode(core.Node{ID: core.NodeID(i%37, i), Region: i % 37, Cluster: i, Members: []int{i}})
	}
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		_ = g.Nodes()
	}
}
