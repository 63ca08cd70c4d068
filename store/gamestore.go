// Package store holds game snapshots for a hosting process. The engine
// itself is pure; the store provides the single-writer-at-a-time gate
// that serializes concurrent actions against the same game id.
package store

import (
	"errors"
	"fmt"
	"sync"

	ironworks "github.com/minaorangina/ironworks"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
)

// GameStore keeps game snapshots keyed by game id.
type GameStore interface {
	Add(state ironworks.GameState) error
	Find(gameID string) (ironworks.GameState, bool)
	Apply(gameID string, action ironworks.Action) (ironworks.GameState, *ironworks.RuleError, error)
}

// InMemoryGameStore maps game id to the latest snapshot. A per-game
// mutex serializes Apply calls for one game id into a single linear
// history; distinct games never contend.
type InMemoryGameStore struct {
	mu    sync.Mutex
	games map[string]ironworks.GameState
	locks map[string]*sync.Mutex
}

// NewInMemoryGameStore constructs an InMemoryGameStore.
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]ironworks.GameState{},
		locks: map[string]*sync.Mutex{},
	}
}

// Add registers a new game. Fails if the id already exists.
func (s *InMemoryGameStore) Add(state ironworks.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[state.ID]; exists {
		return fmt.Errorf("game with id %s already exists", state.ID)
	}
	s.games[state.ID] = state
	s.locks[state.ID] = &sync.Mutex{}
	return nil
}

// Find returns the latest snapshot for a game id.
func (s *InMemoryGameStore) Find(gameID string) (ironworks.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.games[gameID]
	return state, ok
}

// Apply runs an action through the reducer under the game's lock and
// stores the resulting snapshot. Rule failures still advance the stored
// log (with the INVALID_ACTION entry) and are returned alongside it.
func (s *InMemoryGameStore) Apply(gameID string, action ironworks.Action) (ironworks.GameState, *ironworks.RuleError, error) {
	s.mu.Lock()
	gameLock, ok := s.locks[gameID]
	s.mu.Unlock()
	if !ok {
		return ironworks.GameState{}, nil, ErrUnknownGameID
	}

	gameLock.Lock()
	defer gameLock.Unlock()

	s.mu.Lock()
	state := s.games[gameID]
	s.mu.Unlock()

	next, rerr := ironworks.Reduce(state, action)

	s.mu.Lock()
	s.games[gameID] = next
	s.mu.Unlock()

	return next, rerr, nil
}
