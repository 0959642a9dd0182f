package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmapper/bfs"
	"github.com/katalvlaran/lvmapper/core"
)

// graphOf builds a graph with one singleton node per ID and unit-weight links.
func graphOf(t *testing.T, nodes []string, links [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range nodes {
		require.NoError(t, g.AddNode(core.Node{ID: id, Region: i, Members: []int{i}}))
	}
	for _, l := range links {
		_, err := g.AddEdge(l[0], l[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := graphOf(t, []string{"A"}, nil)
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsAndOrder(t *testing.T) {
	// A - B - D
	//  \     /
	//    C -
	g := graphOf(t, []string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["D"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)

	_, err = res.PathTo("E")
	require.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return nbr != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	stop := errors.New("stop")
	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	g := graphOf(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := graphOf(t, []string{"r0c0", "r1c0", "r2c0", "r3c0", "r4c0"},
		[][2]string{{"r0c0", "r1c0"}, {"r3c0", "r4c0"}})

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"r0c0", "r1c0"}, {"r2c0"}, {"r3c0", "r4c0"}}, comps)

	idx, n, err := bfs.ComponentIndex(g)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, idx["r2c0"])
	assert.Equal(t, 2, idx["r4c0"])

	empty, err := bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
