// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmapper/core"
)

// TestConcurrentAddNodeAndEdge adds nodes from many goroutines, then links
// each to a hub concurrently; every edge must land exactly once.
func TestConcurrentAddNodeAndEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "hub", Members: []int{0}}))

	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			nid := core.NodeID(id, 0)
			if err := g.AddNode(core.Node{ID: nid, Region: id, Members: []int{0, id + 1}}); err != nil {
				t.Error(err)
				return
			}
			if _, err := g.AddEdge("hub", nid, 1); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	d, err := g.Degree("hub")
	require.NoError(t, err)
	require.Equal(t, num, d)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersAndClone validates concurrent reads and clones do not race.
func TestConcurrentReadersAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddNode(core.Node{ID: fmt.Sprintf("n%02d", i), Members: []int{i}}))
	}
	for i := 1; i < 50; i++ {
		_, err := g.AddEdge("n00", fmt.Sprintf("n%02d", i), 1)
		require.NoError(t, err)
	}

	const readers, cloners = 50, 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.NeighborIDs("n00")
			if err != nil || len(nbs) != 49 {
				t.Errorf("neighbors: %v, %d", err, len(nbs))
			}
			_ = g.Stats()
		}()
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()
}
