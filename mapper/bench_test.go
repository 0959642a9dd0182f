package mapper_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmapper/builder"
	"github.com/katalvlaran/lvmapper/cluster"
	"github.com/katalvlaran/lvmapper/cover"
	"github.com/katalvlaran/lvmapper/filter"
	"github.com/katalvlaran/lvmapper/mapper"
)

func BenchmarkBuild_Circle(b *testing.B) {
	cloud, err := builder.Circle(2000, builder.WithNoise(0.02))
	if err != nil {
		b.Fatal(err)
	}
	for _, workers := range []int{1, 4} {
		m, err := mapper.New(
			mapper.WithFilter(filter.Projection(0)),
			mapper.WithCover(&cover.Cubical{NIntervals: 12, Overlap: 0.3}),
			mapper.WithClusterer(&cluster.DBSCAN{Eps: 0.1, MinPts: 3}),
			mapper.WithWorkers(workers),
		)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := m.Build(context.Background(), cloud); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
