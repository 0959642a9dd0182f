package export_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmapper/builder"
	"github.com/katalvlaran/lvmapper/cluster"
	"github.com/katalvlaran/lvmapper/cover"
	"github.com/katalvlaran/lvmapper/export"
	"github.com/katalvlaran/lvmapper/mapper"
)

func ExampleFromResult() {
	cloud, _ := builder.Line(10, 1)
	m, _ := mapper.New(
		mapper.WithCover(&cover.Cubical{NIntervals: 3, Overlap: 0.3}),
		mapper.WithClusterer(cluster.Trivial{}),
	)
	res, _ := m.Build(context.Background(), cloud)
	doc, _ := export.FromResult(res, cloud)

	fmt.Println(doc.Meta.Stats.Nodes, doc.Meta.Stats.Edges, doc.Meta.Stats.Components)
	fmt.Println(doc.Nodes[0].Label)
	// Output:
	// 3 2 1
	// line
}
