package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ironworks "github.com/minaorangina/ironworks"
	"github.com/minaorangina/ironworks/protocol"
	"github.com/minaorangina/ironworks/store"
)

func newTestServer(t *testing.T) (*httptest.Server, store.GameStore) {
	t.Helper()
	gameStore := store.NewInMemoryGameStore()
	ts := httptest.NewServer(NewServer(gameStore))
	t.Cleanup(ts.Close)
	return ts, gameStore
}

func createTestGame(t *testing.T, ts *httptest.Server, seats []string, seed string) NewGameRes {
	t.Helper()
	body, err := json.Marshal(NewGameReq{Seats: seats, Seed: seed})
	require.NoError(t, err)

	res, err := http.Post(ts.URL+"/new", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created NewGameRes
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	return created
}

func TestHandleNewGame(t *testing.T) {
	ts, gameStore := newTestServer(t)

	created := createTestGame(t, ts, []string{"A", "B"}, "server-seed")

	assert.NotEmpty(t, created.GameID)
	assert.Equal(t, "server-seed", created.Seed)
	assert.Equal(t, "A", created.State.CurrentPlayer)

	_, ok := gameStore.Find(created.GameID)
	assert.True(t, ok)
}

func TestHandleNewGameGeneratesSeed(t *testing.T) {
	ts, _ := newTestServer(t)

	created := createTestGame(t, ts, []string{"A", "B"}, "")

	assert.NotEmpty(t, created.Seed)
}

func TestHandleNewGameRejectsBadSeatCounts(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, seats := range [][]string{{}, {"solo"}, {"a", "b", "c", "d", "e"}} {
		body, _ := json.Marshal(NewGameReq{Seats: seats})
		res, err := http.Post(ts.URL+"/new", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	}
}

func TestHandleNewGameRejectsGet(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/new")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHandleFindGame(t *testing.T) {
	ts, _ := newTestServer(t)
	created := createTestGame(t, ts, []string{"A", "B"}, "find-seed")

	res, err := http.Get(ts.URL + "/game?game_id=" + created.GameID)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var state ironworks.GameState
	require.NoError(t, json.NewDecoder(res.Body).Decode(&state))
	assert.Equal(t, created.GameID, state.ID)
}

func TestHandleFindGameUnknownID(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/game?game_id=game-that-never-was")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHandleFindGameMissingID(t *testing.T) {
	ts, _ := newTestServer(t)

	res, err := http.Get(ts.URL + "/game")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHandleAction(t *testing.T) {
	ts, _ := newTestServer(t)
	created := createTestGame(t, ts, []string{"A", "B"}, "action-seed")

	envelope := protocol.ActionEnvelope{
		Type: protocol.BuildLink, Player: "A", From: "Birmingham", To: "Coventry",
	}
	body, _ := json.Marshal(envelope)

	res, err := http.Post(ts.URL+"/game/action?game_id="+created.GameID, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var applied ActionRes
	require.NoError(t, json.NewDecoder(res.Body).Decode(&applied))
	assert.Nil(t, applied.Error)
	assert.Equal(t, "B", applied.State.CurrentPlayer)
}

func TestHandleActionRuleFailure(t *testing.T) {
	ts, _ := newTestServer(t)
	created := createTestGame(t, ts, []string{"A", "B"}, "action-seed")

	envelope := protocol.ActionEnvelope{Type: protocol.EndTurn, Player: "B"}
	body, _ := json.Marshal(envelope)

	res, err := http.Post(ts.URL+"/game/action?game_id="+created.GameID, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var applied ActionRes
	require.NoError(t, json.NewDecoder(res.Body).Decode(&applied))
	require.NotNil(t, applied.Error)
	assert.Equal(t, ironworks.NotCurrentPlayer, applied.Error.Code)
}

func TestHandleActionUnknownGame(t *testing.T) {
	ts, _ := newTestServer(t)

	body, _ := json.Marshal(protocol.ActionEnvelope{Type: protocol.EndTurn, Player: "A"})
	res, err := http.Post(ts.URL+"/game/action?game_id=nope", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHandleLegalMoves(t *testing.T) {
	ts, _ := newTestServer(t)
	created := createTestGame(t, ts, []string{"A", "B"}, "legal-seed")

	res, err := http.Get(ts.URL + "/legal?game_id=" + created.GameID + "&player=A")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var moves LegalMovesRes
	require.NoError(t, json.NewDecoder(res.Body).Decode(&moves))
	require.NotEmpty(t, moves.Moves)
	for _, move := range moves.Moves {
		assert.Equal(t, protocol.BuildLink, move.Type)
		assert.Equal(t, "A", move.Player)
	}

	// The waiting player has no moves.
	res, err = http.Get(ts.URL + "/legal?game_id=" + created.GameID + "&player=B")
	require.NoError(t, err)
	defer res.Body.Close()

	require.NoError(t, json.NewDecoder(res.Body).Decode(&moves))
	assert.Empty(t, moves.Moves)
}

func TestHandleWS(t *testing.T) {
	ts, _ := newTestServer(t)
	created := createTestGame(t, ts, []string{"A", "B"}, "ws-seed")

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?game_id=" + created.GameID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The full log arrives on connect.
	var log []ironworks.GameEvent
	require.NoError(t, conn.ReadJSON(&log))
	require.Len(t, log, 1)
	assert.Equal(t, ironworks.EventGameCreated, log[0].Type)

	// A submitted action returns only the events it appended.
	require.NoError(t, conn.WriteJSON(protocol.ActionEnvelope{
		Type: protocol.BuildLink, Player: "A", From: "Birmingham", To: "Coventry",
	}))

	var res struct {
		Events []ironworks.GameEvent `json:"events"`
		Error  *ironworks.RuleError  `json:"error"`
	}
	require.NoError(t, conn.ReadJSON(&res))
	assert.Nil(t, res.Error)
	require.Len(t, res.Events, 2)
	assert.Equal(t, ironworks.EventBuildLink, res.Events[0].Type)
	assert.Equal(t, ironworks.EventAutoEndTurn, res.Events[1].Type)

	// Rule failures surface on the socket too.
	require.NoError(t, conn.WriteJSON(protocol.ActionEnvelope{
		Type: protocol.EndTurn, Player: "A",
	}))
	require.NoError(t, conn.ReadJSON(&res))
	require.NotNil(t, res.Error)
	assert.Equal(t, ironworks.NotCurrentPlayer, res.Error.Code)
	require.Len(t, res.Events, 1)
	assert.Equal(t, ironworks.EventInvalidAction, res.Events[0].Type)
}
