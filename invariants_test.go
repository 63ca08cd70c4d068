package ironworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTileInvariants(t *testing.T) {
	cases := []struct {
		name string
		tile TileState
		ok   bool
	}{
		{"unflipped with resources", TileState{ID: "t", ResourcesRemaining: 2}, true},
		{"flipped with no resources", TileState{ID: "t", Flipped: true}, true},
		{"unflipped with no resources", TileState{ID: "t"}, false},
		{"flipped with resources", TileState{ID: "t", ResourcesRemaining: 1, Flipped: true}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := CreateGame([]string{"A", "B"}, "invariant-seed")
			state = withTiles(state, map[string]TileState{tc.tile.ID: tc.tile})

			rerr := CheckTileInvariants(state)
			if tc.ok {
				assert.Nil(t, rerr)
			} else {
				require.NotNil(t, rerr)
				assert.Equal(t, InvalidTileFlipState, rerr.Code)
			}
		})
	}
}

func TestCheckCardConservationFreshGame(t *testing.T) {
	state := CreateGame([]string{"A", "B", "C", "D"}, "invariant-seed")
	assert.NoError(t, CheckCardConservation(state))
}

func TestCheckCardConservationDetectsDuplicate(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "invariant-seed")
	held := state.Players["A"].Hand[0]
	state.Deck = state.Deck.DiscardCards(held)

	assert.Error(t, CheckCardConservation(state))
}

func TestCheckCardConservationDetectsLoss(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "invariant-seed")
	p := state.Players["A"]
	p.Hand = p.Hand[1:]
	state.Players["A"] = p

	assert.Error(t, CheckCardConservation(state))
}

func TestCheckCardConservationDetectsForeignCard(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "invariant-seed")
	p := state.Players["A"]
	p.Hand = append(p.Hand, "card-from-nowhere")
	state.Players["A"] = p

	// The extra card is unknown to the deck.
	assert.Error(t, CheckCardConservation(state))
}

func TestCardConservationHoldsThroughBuilds(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "invariant-seed")
	state = withSingleCardInHand(state, "A", wildCard)

	next, rerr := Reduce(state, BuildIndustry{
		Player: "A", City: "Dudley", Industry: Iron, Level: 1, CardID: wildCard.ID,
	})
	require.Nil(t, rerr)

	assert.NoError(t, CheckCardConservation(next))
}
