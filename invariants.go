package ironworks

import "fmt"

// CheckTileInvariants verifies that every tile's flipped flag agrees
// with its remaining resources. The reducer runs this on entry and exit
// of every transition; a violation in production means a bug in the
// transition logic, not a user error.
func CheckTileInvariants(state GameState) *RuleError {
	for id, tile := range state.Board.Tiles {
		if tile.ResourcesRemaining == 0 && !tile.Flipped {
			return ruleError(InvalidTileFlipState, "tile %s has no resources but is not flipped", id)
		}
		if tile.ResourcesRemaining > 0 && tile.Flipped {
			return ruleError(InvalidTileFlipState, "tile %s has resources remaining but is flipped", id)
		}
	}
	return nil
}

// CheckCardConservation verifies that every card id appears in exactly
// one of the draw, discard or removed piles or a single player's hand.
func CheckCardConservation(state GameState) error {
	counts := map[string]int{}
	for _, id := range state.Deck.Draw {
		counts[id]++
	}
	for _, id := range state.Deck.Discard {
		counts[id]++
	}
	for _, id := range state.Deck.Removed {
		counts[id]++
	}
	for _, p := range state.Players {
		for _, id := range p.Hand {
			counts[id]++
		}
	}

	for id := range state.Deck.ByID {
		switch counts[id] {
		case 1:
		case 0:
			return fmt.Errorf("card %s is missing from every pile and hand", id)
		default:
			return fmt.Errorf("card %s appears %d times across piles and hands", id, counts[id])
		}
	}
	for id := range counts {
		if _, known := state.Deck.ByID[id]; !known {
			return fmt.Errorf("card %s is held but unknown to the deck", id)
		}
	}
	return nil
}
