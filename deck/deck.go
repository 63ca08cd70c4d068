package deck

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// templateCards is repeated to form the full deck.
var templateCards = []Card{
	{Kind: Location, City: "Birmingham"},
	{Kind: Location, City: "Coventry"},
	{Kind: Industry, IndustryName: "Coal"},
	{Kind: Industry, IndustryName: "Iron"},
	{Kind: Wild},
	{Kind: Wild},
}

// 6 * 6 = 36 cards, enough for 4 players with 8 cards each.
const templateRepetitions = 6

// State holds the three disjoint piles plus a lookup of every card in
// the game. Card ids never move between ByID entries; only the piles and
// player hands change.
type State struct {
	Draw    []string        `json:"draw"`
	Discard []string        `json:"discard"`
	Removed []string        `json:"removed"`
	ByID    map[string]Card `json:"byId"`
}

// NewRand returns a rand.Rand seeded deterministically from seed. The
// same seed string always yields the same sequence.
func NewRand(seed string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// Build creates a shuffled deck. Shuffling is driven entirely by seed,
// never by ambient entropy.
func Build(seed string) State {
	cards := []Card{}
	n := 0
	for rep := 0; rep < templateRepetitions; rep++ {
		for _, tmpl := range templateCards {
			c := tmpl
			c.ID = fmt.Sprintf("c%d", n)
			n++
			cards = append(cards, c)
		}
	}

	byID := map[string]Card{}
	draw := make([]string, len(cards))
	for i, c := range cards {
		byID[c.ID] = c
		draw[i] = c.ID
	}

	r := NewRand(seed)
	for i := len(draw) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		draw[i], draw[j] = draw[j], draw[i]
	}

	return State{Draw: draw, Discard: []string{}, Removed: []string{}, ByID: byID}
}

// DrawCards deals up to n card ids from the top of the draw pile.
func (s State) DrawCards(n int) ([]string, State) {
	if n > len(s.Draw) {
		n = len(s.Draw)
	}
	ids := append([]string{}, s.Draw[:n]...)
	next := s.Clone()
	next.Draw = next.Draw[n:]
	return ids, next
}

// DiscardCards appends ids to the discard pile.
func (s State) DiscardCards(ids ...string) State {
	next := s.Clone()
	next.Discard = append(next.Discard, ids...)
	return next
}

// RemoveCards appends ids to the removed pile.
func (s State) RemoveCards(ids ...string) State {
	next := s.Clone()
	next.Removed = append(next.Removed, ids...)
	return next
}

// DealToSeats deals handSize cards to each seat in order.
func (s State) DealToSeats(seats []string, handSize int) (map[string][]string, State) {
	hands := map[string][]string{}
	next := s
	for _, seat := range seats {
		var ids []string
		ids, next = next.DrawCards(handSize)
		hands[seat] = ids
	}
	return hands, next
}

// Clone returns a deep copy. ByID values are immutable so the lookup map
// is copied shallowly per entry.
func (s State) Clone() State {
	byID := make(map[string]Card, len(s.ByID))
	for id, c := range s.ByID {
		byID[id] = c
	}
	return State{
		Draw:    append([]string{}, s.Draw...),
		Discard: append([]string{}, s.Discard...),
		Removed: append([]string{}, s.Removed...),
		ByID:    byID,
	}
}
