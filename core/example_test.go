package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvmapper/core"
)

// ExampleGraph links two clusters from neighbouring regions that share points 2 and 3.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddNode(core.Node{ID: core.NodeID(0, 0), Region: 0, Members: []int{0, 1, 2, 3}})
	_ = g.AddNode(core.Node{ID: core.NodeID(1, 0), Region: 1, Members: []int{2, 3, 4, 5}})
	eid, _ := g.AddEdge("r1c0", "r0c0", 2)

	e, _ := g.Edge("r0c0", "r1c0")
	fmt.Println(eid, e.From, e.To, e.Weight)
	fmt.Println(g.NodeIDs())
	// Output:
	// e1 r0c0 r1c0 2
	// [r0c0 r1c0]
}
