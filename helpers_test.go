package ironworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minaorangina/ironworks/board"
	"github.com/minaorangina/ironworks/deck"
)

// findEdge locates an edge matching the predicate, failing the test if
// the topology has none.
func findEdge(t *testing.T, state GameState, predicate func(board.Edge) bool) board.Edge {
	t.Helper()
	for _, edge := range state.Board.Topology.Edges {
		if predicate(edge) {
			return edge
		}
	}
	t.Fatal("no edge in test topology matches predicate")
	return board.Edge{}
}

func canalOrBoth(edge board.Edge) bool {
	return edge.Kind == board.EdgeCanal || edge.Kind == board.EdgeBoth
}

// withTiles replaces the board's tiles wholesale.
func withTiles(state GameState, tiles map[string]TileState) GameState {
	next := state.Clone()
	next.Board.Tiles = tiles
	return next
}

// withSingleCardInHand swaps the player's hand for exactly one card,
// moving the displaced cards to the removed pile so card conservation
// still holds.
func withSingleCardInHand(state GameState, player string, card deck.Card) GameState {
	next := state.Clone()
	p := next.Players[player]
	next.Deck = next.Deck.RemoveCards(p.Hand...)
	p.Hand = []string{card.ID}
	next.Players[player] = p
	next.Deck.ByID[card.ID] = card
	return next
}

// expectOk asserts a successful reduction that preserved the tile
// invariant.
func expectOk(t *testing.T, next GameState, rerr *RuleError) GameState {
	t.Helper()
	require.Nil(t, rerr)
	require.Nil(t, CheckTileInvariants(next))
	return next
}

// expectInvalid asserts a rejection with the given code whose returned
// state differs from prev only by one INVALID_ACTION log entry.
func expectInvalid(t *testing.T, next GameState, rerr *RuleError, prev GameState, code ErrorCode) GameState {
	t.Helper()
	require.NotNil(t, rerr)
	assert.Equal(t, code, rerr.Code)

	require.Len(t, next.Log, len(prev.Log)+1)
	last := next.Log[len(next.Log)-1]
	assert.Equal(t, EventInvalidAction, last.Type)

	data, ok := last.Data.(InvalidActionData)
	require.True(t, ok, "INVALID_ACTION data has unexpected type %T", last.Data)
	assert.Equal(t, code, data.Code)
	assert.Equal(t, rerr.Message, data.Message)
	assert.Equal(t, prev.CurrentPlayer, data.Context.CurrentPlayer)
	assert.Equal(t, prev.Phase, data.Context.Phase)

	trimmed := next.Clone()
	trimmed.Log = trimmed.Log[:len(prev.Log)]
	assert.Equal(t, prev, trimmed)

	return next
}

func lastEvent(state GameState) GameEvent {
	return state.Log[len(state.Log)-1]
}
