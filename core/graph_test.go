package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmapper/core"
)

// triangle builds r0c0 -- r1c0 -- r2c0 with r0c0 -- r2c0 and an isolated r3c0.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "r0c0", Region: 0, Members: []int{2, 0, 1}}))
	require.NoError(t, g.AddNode(core.Node{ID: "r1c0", Region: 1, Members: []int{1, 2, 3}}))
	require.NoError(t, g.AddNode(core.Node{ID: "r2c0", Region: 2, Members: []int{2, 3, 4}}))
	require.NoError(t, g.AddNode(core.Node{ID: "r3c0", Region: 3, Members: []int{9}}))
	_, err := g.AddEdge("r0c0", "r1c0", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("r2c0", "r1c0", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("r0c0", "r2c0", 1)
	require.NoError(t, err)
	return g
}

func TestAddNode(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddNode(core.Node{}), core.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddNode(core.Node{ID: "x"}), core.ErrEmptyMembers)

	in := []int{3, 1, 2}
	require.NoError(t, g.AddNode(core.Node{ID: core.NodeID(4, 1), Region: 4, Cluster: 1, Members: in}))
	in[0] = 99 // caller's slice is not retained
	n, err := g.Node("r4c1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, n.Members)
	assert.Equal(t, 3, n.Size())
	assert.NotNil(t, n.Metadata)

	require.ErrorIs(t, g.AddNode(core.Node{ID: "r4c1", Members: []int{1}}), core.ErrDuplicateNode)
	assert.True(t, g.HasNode("r4c1"))
	assert.False(t, g.HasNode(""))

	_, err = g.Node("nope")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAddEdge(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("r1c0", "r0c0"))
	assert.True(t, g.HasEdge("r0c0", "r1c0"))
	assert.False(t, g.HasEdge("r0c0", "r3c0"))

	e, err := g.Edge("r1c0", "r2c0")
	require.NoError(t, err)
	assert.Equal(t, core.Edge{ID: "e2", From: "r1c0", To: "r2c0", Weight: 2}, e)

	_, err = g.Edge("r0c0", "r3c0")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	cases := []struct {
		name string
		a, b string
		w    int64
		want error
	}{
		{"loop", "r0c0", "r0c0", 1, core.ErrLoopNotAllowed},
		{"multi", "r1c0", "r0c0", 1, core.ErrMultiEdgeNotAllowed},
		{"weight", "r0c0", "r3c0", 0, core.ErrBadWeight},
		{"missing", "r0c0", "zz", 1, core.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.a, tc.b, tc.w)
			require.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 3, g.EdgeCount(), "failed inserts leave the graph unchanged")
}

func TestEnumerationOrder(t *testing.T) {
	g := core.NewGraph()
	for _, n := range []core.Node{
		{ID: "r10c0", Region: 10, Members: []int{1}},
		{ID: "r2c1", Region: 2, Cluster: 1, Members: []int{2}},
		{ID: "r2c0", Region: 2, Members: []int{3}},
	} {
		require.NoError(t, g.AddNode(n))
	}
	assert.Equal(t, []string{"r2c0", "r2c1", "r10c0"}, g.NodeIDs())

	g2 := triangle(t)
	edges := g2.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, [2]string{"r0c0", "r1c0"}, [2]string{edges[0].From, edges[0].To})
	assert.Equal(t, [2]string{"r0c0", "r2c0"}, [2]string{edges[1].From, edges[1].To})
	assert.Equal(t, [2]string{"r1c0", "r2c0"}, [2]string{edges[2].From, edges[2].To})
}

func TestNeighborsDegreeMembers(t *testing.T) {
	g := triangle(t)
	nbs, err := g.NeighborIDs("r1c0")
	require.NoError(t, err)
	assert.Equal(t, []string{"r0c0", "r2c0"}, nbs)

	nbs, err = g.NeighborIDs("r3c0")
	require.NoError(t, err)
	assert.Empty(t, nbs)

	_, err = g.NeighborIDs("zz")
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	d, err := g.Degree("r0c0")
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	m, err := g.Members("r0c0")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, m)
	m[0] = 42
	m2, _ := g.Members("r0c0")
	assert.Equal(t, 0, m2[0])
}

func TestStats(t *testing.T) {
	s := triangle(t).Stats()
	assert.Equal(t, core.Stats{
		Nodes: 4, Edges: 3, Isolated: 1, MaxDegree: 2,
		MeanDegree: 1.5, TotalWeight: 5, MaxNodeSize: 3,
	}, s)
	assert.Equal(t, core.Stats{}, core.NewGraph().Stats())
}

func TestClone(t *testing.T) {
	g := triangle(t)
	cp := g.Clone()
	assert.Equal(t, g.Nodes(), cp.Nodes())
	assert.Equal(t, g.Edges(), cp.Edges())

	require.NoError(t, cp.AddNode(core.Node{ID: "r9c0", Members: []int{1}}))
	eid, err := cp.AddEdge("r9c0", "r3c0", 1)
	require.NoError(t, err)
	assert.Equal(t, "e4", eid, "clone continues the edge counter")
	assert.False(t, g.HasNode("r9c0"))
	assert.Equal(t, 3, g.EdgeCount())
}
