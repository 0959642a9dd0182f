package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvmapper/bfs"
	"github.com/katalvlaran/lvmapper/core"
)

func ExampleComponents() {
	g := core.NewGraph()
	for i, id := range []string{"r0c0", "r1c0", "r2c0"} {
		_ = g.AddNode(core.Node{ID: id, Region: i, Members: []int{i}})
	}
	_, _ = g.AddEdge("r0c0", "r1c0", 3)

	comps, _ := bfs.Components(g)
	fmt.Println(comps)
	// Output: [[r0c0 r1c0] [r2c0]]
}
