package ironworks

import (
	"github.com/minaorangina/ironworks/board"
	"github.com/minaorangina/ironworks/deck"
)

// Phase is the current construction era.
type Phase string

const (
	PhaseCanal Phase = "canal"
	PhaseRail  Phase = "rail"
)

// Era returns the edge era gated by this phase.
func (p Phase) Era() board.EraKind {
	if p == PhaseRail {
		return board.EraRail
	}
	return board.EraCanal
}

// IndustryKind is a buildable industry.
type IndustryKind string

const (
	Coal IndustryKind = "coal"
	Iron IndustryKind = "iron"
)

// Label returns the industry slot label used in city definitions.
func (k IndustryKind) Label() string {
	switch k {
	case Coal:
		return "Coal"
	case Iron:
		return "Iron"
	}
	return ""
}

// PlayerState holds one player's resources. Income only ever increases;
// money is debited by the resource resolver before any spend.
type PlayerState struct {
	ID     string   `json:"id"`
	Money  int      `json:"money"`
	Income int      `json:"income"`
	Hand   []string `json:"hand"`
	VP     int      `json:"vp"`
}

// TileState is a placed industry marker. Owner is empty for unowned
// placeholder tiles.
type TileState struct {
	ID                 string       `json:"id"`
	City               board.NodeID `json:"city"`
	Industry           IndustryKind `json:"industry"`
	Owner              string       `json:"owner,omitempty"`
	Level              int          `json:"level"`
	ResourcesRemaining int          `json:"resourcesRemaining"`
	IncomeOnFlip       int          `json:"incomeOnFlip"`
	Flipped            bool         `json:"flipped"`
}

// LinkState records who built the link on the topology edge at the same
// index. An empty BuiltBy means the link is unbuilt.
type LinkState struct {
	BuiltBy string `json:"builtBy,omitempty"`
}

// BoardState pairs the shared immutable topology with per-game link and
// tile state.
type BoardState struct {
	Topology   board.Topology       `json:"topology"`
	LinkStates []LinkState          `json:"linkStates"`
	Tiles      map[string]TileState `json:"tiles"`
}

// builders flattens LinkStates for the board graph functions.
func (b BoardState) builders() []string {
	built := make([]string, len(b.LinkStates))
	for i, ls := range b.LinkStates {
		built[i] = ls.BuiltBy
	}
	return built
}

// MarketTrack is one resource's shared market pool.
type MarketTrack struct {
	Units         int `json:"units"`
	FallbackPrice int `json:"fallbackPrice"`
}

// MarketState holds the coal and iron tracks.
type MarketState struct {
	Coal MarketTrack `json:"coal"`
	Iron MarketTrack `json:"iron"`
}

// GameState is the root immutable snapshot. It is only ever replaced by
// reducer outputs, never mutated in place; use Clone before changing
// anything.
type GameState struct {
	ID            string                 `json:"id"`
	Seed          string                 `json:"seed"`
	Phase         Phase                  `json:"phase"`
	Round         int                    `json:"round"`
	Turn          int                    `json:"turn"`
	ActionsTaken  int                    `json:"actionsTakenThisTurn"`
	SeatOrder     []string               `json:"seatOrder"`
	CurrentPlayer string                 `json:"currentPlayer"`
	Players       map[string]PlayerState `json:"players"`
	Log           []GameEvent            `json:"log"`
	Deck          deck.State             `json:"deck"`
	Market        MarketState            `json:"market"`
	Board         BoardState             `json:"board"`
}

// Clone returns a deep copy sharing only the immutable topology.
func (s GameState) Clone() GameState {
	next := s

	next.SeatOrder = append([]string{}, s.SeatOrder...)

	next.Players = make(map[string]PlayerState, len(s.Players))
	for id, p := range s.Players {
		p.Hand = append([]string{}, p.Hand...)
		next.Players[id] = p
	}

	next.Log = make([]GameEvent, len(s.Log))
	copy(next.Log, s.Log)

	next.Deck = s.Deck.Clone()

	next.Board.LinkStates = append([]LinkState{}, s.Board.LinkStates...)
	next.Board.Tiles = make(map[string]TileState, len(s.Board.Tiles))
	for id, tile := range s.Board.Tiles {
		next.Board.Tiles[id] = tile
	}

	return next
}
