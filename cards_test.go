package ironworks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIndustry(t *testing.T) {
	cases := []struct {
		in   string
		want IndustryKind
		ok   bool
	}{
		{"Coal", Coal, true},
		{"coal", Coal, true},
		{"  IRON ", Iron, true},
		{"Cotton", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := normalizeIndustry(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestCardFromHand(t *testing.T) {
	state := CreateGame([]string{"A", "B"}, "cards-seed")
	held := state.Players["A"].Hand[0]

	card, ok := cardFromHand(state, "A", held)
	assert.True(t, ok)
	assert.Equal(t, held, card.ID)

	_, ok = cardFromHand(state, "B", held)
	assert.False(t, ok)

	_, ok = cardFromHand(state, "A", "card-unknown")
	assert.False(t, ok)
}
