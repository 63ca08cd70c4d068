package ironworks

import (
	"strings"

	"github.com/minaorangina/ironworks/deck"
)

// normalizeIndustry maps a card's industry payload onto an IndustryKind,
// tolerating case and surrounding whitespace.
func normalizeIndustry(value string) (IndustryKind, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "coal":
		return Coal, true
	case "iron":
		return Iron, true
	}
	return "", false
}

func cardFromHand(state GameState, player, cardID string) (deck.Card, bool) {
	inHand := false
	for _, id := range state.Players[player].Hand {
		if id == cardID {
			inHand = true
			break
		}
	}
	if !inHand {
		return deck.Card{}, false
	}
	card, ok := state.Deck.ByID[cardID]
	return card, ok
}

// validateBuildCard checks that the named hand card authorizes the
// requested build. Wild cards authorize anything; Location cards must
// name the exact city; Industry cards must match the industry and the
// city must be in the acting player's network.
func validateBuildCard(state GameState, action BuildIndustry) (deck.Card, *RuleError) {
	card, ok := cardFromHand(state, action.Player, action.CardID)
	if !ok {
		return deck.Card{}, ruleError(CardNotInHand, "card %s is not in %s's hand", action.CardID, action.Player)
	}

	switch card.Kind {
	case deck.Wild:
		return card, nil

	case deck.Location:
		if card.City == "" {
			return deck.Card{}, ruleError(InvalidBuildCard, "location card %s is missing a city", card.ID)
		}
		if _, known := state.Board.Topology.CityByID(card.City); !known || card.City != action.City {
			return deck.Card{}, ruleError(CardDoesNotAllowBuild, "location card %s does not allow a build in %s", card.ID, action.City)
		}
		return card, nil

	case deck.Industry:
		if card.IndustryName == "" {
			return deck.Card{}, ruleError(InvalidBuildCard, "industry card %s is missing an industry", card.ID)
		}
		industry, ok := normalizeIndustry(card.IndustryName)
		if !ok {
			return deck.Card{}, ruleError(InvalidBuildCard, "industry card %s names unsupported industry %q", card.ID, card.IndustryName)
		}
		if industry != action.Industry {
			return deck.Card{}, ruleError(CardDoesNotAllowBuild, "industry card %s does not match %s", card.ID, action.Industry)
		}
		if !PlayerNetwork(state, action.Player)[action.City] {
			return deck.Card{}, ruleError(BuildNotConnectedForCard, "industry card builds require %s to be in %s's network", action.City, action.Player)
		}
		return card, nil
	}

	return deck.Card{}, ruleError(InvalidBuildCard, "card %s has unsupported kind %q", card.ID, card.Kind)
}

// consumeCard removes the card from the player's hand and discards it.
// Mutates st in place; st must be a working copy owned by the caller.
func consumeCard(st *GameState, player, cardID string) {
	p := st.Players[player]
	hand := make([]string, 0, len(p.Hand))
	for _, id := range p.Hand {
		if id != cardID {
			hand = append(hand, id)
		}
	}
	p.Hand = hand
	st.Players[player] = p
	st.Deck = st.Deck.DiscardCards(cardID)
}
