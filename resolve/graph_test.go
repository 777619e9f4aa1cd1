package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectedGraphAddDuplicateVertexIsNoOp(t *testing.T) {
	g := NewDirectedGraph[string]()
	g.Add("a")
	g.Add("a")

	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Contains("a"))
}

func TestDirectedGraphConnectWithMissingVertexIsNoOp(t *testing.T) {
	g := NewDirectedGraph[string]()
	g.Add("a")

	g.Connect("a", "b")

	assert.Empty(t, g.Edges())
	assert.Empty(t, g.Children("a"))
}

func TestDirectedGraphConnectTracksForwardAndBackwardAdjacency(t *testing.T) {
	g := NewDirectedGraph[string]()
	g.Add("a")
	g.Add("b")
	g.Connect("a", "b")

	assert.ElementsMatch(t, []string{"b"}, g.Children("a"))
	assert.ElementsMatch(t, []string{"a"}, g.Parents("b"))
	assert.Empty(t, g.Children("b"))
	assert.Empty(t, g.Parents("a"))

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, Edge[string]{From: "a", To: "b"}, edges[0])
}

func TestDirectedGraphConnectSameEdgeTwiceCollapses(t *testing.T) {
	g := NewDirectedGraph[string]()
	g.Add("a")
	g.Add("b")
	g.Connect("a", "b")
	g.Connect("a", "b")

	assert.Len(t, g.Edges(), 1)
}

func TestDirectedGraphChildrenOfUnknownVertexIsNil(t *testing.T) {
	g := NewDirectedGraph[string]()

	assert.Nil(t, g.Children("missing"))
	assert.Nil(t, g.Parents("missing"))
}

func TestNodeBottomIsDistinctFromAnyIdentifier(t *testing.T) {
	bottom := Bottom[string]()
	a := Node("a")

	assert.True(t, bottom.IsBottom())
	assert.False(t, a.IsBottom())
	assert.Equal(t, "a", a.ID())
	assert.NotEqual(t, bottom, a)
}
