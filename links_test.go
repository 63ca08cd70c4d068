package ironworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minaorangina/ironworks/board"
)

func TestAreConnectedIsReflexive(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "links-seed")

	assert.True(t, AreConnected(state, "Birmingham", "Birmingham"))
	assert.False(t, AreConnected(state, "Birmingham", "Coventry"))
}

func TestAreConnectedFollowsBuiltLinksOnly(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "links-seed")
	state = BuildLinkState(state, "A", "Birmingham", "Coventry", board.EraCanal)
	state = BuildLinkState(state, "B", "Coventry", "Nuneaton", board.EraCanal)

	// Connectivity ignores who built each link.
	assert.True(t, AreConnected(state, "Birmingham", "Nuneaton"))
	assert.True(t, AreConnected(state, "Nuneaton", "Birmingham"))
	assert.False(t, AreConnected(state, "Birmingham", "Derby"))
}

func TestAreConnectedReachesPorts(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "links-seed")
	state = BuildLinkState(state, "A", "Worcester", "Gloucester", board.EraCanal)

	assert.True(t, AreConnected(state, "Worcester", "Gloucester"))
}

func TestPlayerNetwork(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "links-seed")
	state = BuildLinkState(state, "A", "Birmingham", "Coventry", board.EraCanal)
	state = BuildLinkState(state, "B", "Burton", "Derby", board.EraCanal)
	state = withTiles(state, map[string]TileState{
		"t-a": coalTile("t-a", "Stafford", "A", 1),
	})

	network := PlayerNetwork(state, "A")

	assert.True(t, network["Birmingham"])
	assert.True(t, network["Coventry"])
	assert.True(t, network["Stafford"])
	assert.False(t, network["Burton"])
	assert.False(t, network["Derby"])
}

func TestIsLegalLinkBuildBootstrapsEmptyNetwork(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "links-seed")

	// No network yet: any era-eligible edge goes.
	assert.True(t, IsLegalLinkBuild(state, "A", "Derby", "Nottingham", board.EraCanal))
	assert.False(t, IsLegalLinkBuild(state, "A", "Walsall", "Wolverhampton", board.EraCanal))
}

func TestIsLegalLinkBuildRequiresNetworkTouch(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "links-seed")
	state = BuildLinkState(state, "A", "Birmingham", "Coventry", board.EraCanal)

	assert.True(t, IsLegalLinkBuild(state, "A", "Birmingham", "Wolverhampton", board.EraCanal))
	assert.False(t, IsLegalLinkBuild(state, "A", "Derby", "Nottingham", board.EraCanal))

	// B still has no network and may build anywhere eligible.
	assert.True(t, IsLegalLinkBuild(state, "B", "Derby", "Nottingham", board.EraCanal))
}

func TestBuildLinkStatePanicsOnMissingEdge(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "links-seed")

	assert.Panics(t, func() {
		BuildLinkState(state, "A", "Birmingham", "Gloucester", board.EraCanal)
	})
}

func TestBuildLinkStatePanicsOnBuiltEdge(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "links-seed")
	state = BuildLinkState(state, "A", "Birmingham", "Coventry", board.EraCanal)

	assert.Panics(t, func() {
		BuildLinkState(state, "B", "Birmingham", "Coventry", board.EraCanal)
	})
}

func TestBuildLinkStateDoesNotMutateInput(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "links-seed")
	idx := state.Board.Topology.FindEdge("Birmingham", "Coventry", board.EraCanal)
	require.NotEqual(t, -1, idx)

	next := BuildLinkState(state, "A", "Birmingham", "Coventry", board.EraCanal)

	assert.Empty(t, state.Board.LinkStates[idx].BuiltBy)
	assert.Equal(t, "A", next.Board.LinkStates[idx].BuiltBy)
}
