package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noLinks(topo Topology) []string {
	return make([]string, len(topo.Edges))
}

func TestBuildable(t *testing.T) {
	topo := testTopology()
	builtBy := noLinks(topo)

	assert.True(t, Buildable(topo, builtBy, 0, EraCanal))
	assert.True(t, Buildable(topo, builtBy, 0, EraRail))
	assert.False(t, Buildable(topo, builtBy, 2, EraCanal))
	assert.False(t, Buildable(topo, builtBy, -1, EraCanal))
	assert.False(t, Buildable(topo, builtBy, len(topo.Edges), EraCanal))

	builtBy[0] = "A"
	assert.False(t, Buildable(topo, builtBy, 0, EraCanal))
}

func TestIsLegalEdge(t *testing.T) {
	topo := testTopology()
	builtBy := noLinks(topo)

	assert.True(t, IsLegalEdge(topo, builtBy, "Alpha", "Beta", EraCanal))
	assert.True(t, IsLegalEdge(topo, builtBy, "Beta", "Alpha", EraCanal))
	assert.False(t, IsLegalEdge(topo, builtBy, "Beta", "Gamma", EraRail))
	assert.False(t, IsLegalEdge(topo, builtBy, "Alpha", "Harbour", EraCanal))

	builtBy[0] = "A"
	assert.False(t, IsLegalEdge(topo, builtBy, "Alpha", "Beta", EraCanal))
}

func TestConnectedIsReflexive(t *testing.T) {
	topo := testTopology()

	assert.True(t, Connected(topo, noLinks(topo), "Alpha", "Alpha"))
	assert.True(t, Connected(topo, noLinks(topo), "Harbour", "Harbour"))
}

func TestConnectedWalksBuiltLinks(t *testing.T) {
	topo := testTopology()
	builtBy := noLinks(topo)

	assert.False(t, Connected(topo, builtBy, "Alpha", "Beta"))

	builtBy[0] = "A"
	assert.True(t, Connected(topo, builtBy, "Alpha", "Beta"))
	assert.True(t, Connected(topo, builtBy, "Beta", "Alpha"))
	assert.False(t, Connected(topo, builtBy, "Alpha", "Gamma"))

	// Multi-hop across links built by different players, out to a port.
	builtBy[1] = "B"
	builtBy[2] = "A"
	assert.True(t, Connected(topo, builtBy, "Alpha", "Harbour"))
}

func TestBuildableEdges(t *testing.T) {
	topo := testTopology()
	builtBy := noLinks(topo)

	assert.Equal(t, []int{0, 1}, BuildableEdges(topo, builtBy, EraCanal))
	assert.Equal(t, []int{0, 2}, BuildableEdges(topo, builtBy, EraRail))

	builtBy[0] = "A"
	assert.Equal(t, []int{1}, BuildableEdges(topo, builtBy, EraCanal))

	require.NoError(t, topo.Validate())
}
