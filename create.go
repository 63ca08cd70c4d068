package ironworks

import (
	"fmt"
	"hash/fnv"

	"github.com/minaorangina/ironworks/board"
	"github.com/minaorangina/ironworks/deck"
)

// CreateGame creates a fresh game on the standard board. It is fully
// deterministic for a fixed seed: the deck shuffle, the dealt hands and
// the game id all derive from it. A seat count outside 2-4 is a caller
// bug and panics.
func CreateGame(seats []string, seed string) GameState {
	if len(seats) < minSeats || len(seats) > maxSeats {
		panic(fmt.Sprintf("ironworks: game requires %d-%d seats, got %d", minSeats, maxSeats, len(seats)))
	}

	deckState := deck.Build(seed)
	hands, deckState := deckState.DealToSeats(seats, HandSize)

	players := make(map[string]PlayerState, len(seats))
	for _, id := range seats {
		players[id] = PlayerState{
			ID:    id,
			Money: StartingMoney,
			Hand:  hands[id],
		}
	}

	topo := board.Midlands

	state := GameState{
		ID:            gameID(seed),
		Seed:          seed,
		Phase:         PhaseCanal,
		Round:         1,
		Turn:          1,
		SeatOrder:     append([]string{}, seats...),
		CurrentPlayer: seats[0],
		Players:       players,
		Deck:          deckState,
		Market: MarketState{
			Coal: MarketTrack{Units: InitialCoalMarketUnits, FallbackPrice: CoalMarketFallbackPrice},
			Iron: MarketTrack{Units: InitialIronMarketUnits, FallbackPrice: IronMarketFallbackPrice},
		},
		Board: BoardState{
			Topology:   topo,
			LinkStates: make([]LinkState, len(topo.Edges)),
			Tiles:      map[string]TileState{},
		},
	}

	appendEvent(&state, EventGameCreated, GameCreatedData{
		Seats: append([]string{}, seats...),
		Seed:  seed,
	})

	return state
}

func gameID(seed string) string {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return fmt.Sprintf("game-%016x", h.Sum64())
}
