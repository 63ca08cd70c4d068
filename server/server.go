package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	uuid "github.com/satori/go.uuid"

	ironworks "github.com/minaorangina/ironworks"
	"github.com/minaorangina/ironworks/protocol"
	"github.com/minaorangina/ironworks/store"
)

// NewGameReq creates a game for an ordered list of seats. Seed is
// optional; the server generates one when absent.
type NewGameReq struct {
	Seats []string `json:"seats"`
	Seed  string   `json:"seed,omitempty"`
}

type NewGameRes struct {
	GameID string              `json:"game_id"`
	Seed   string              `json:"seed"`
	State  ironworks.GameState `json:"state"`
}

// ActionRes carries the reducer outcome for one submitted action. Error
// is set for rule failures; the state still reflects the appended
// INVALID_ACTION log entry.
type ActionRes struct {
	State ironworks.GameState  `json:"state"`
	Error *ironworks.RuleError `json:"error,omitempty"`
}

type LegalMovesRes struct {
	Moves []protocol.ActionEnvelope `json:"moves"`
}

// GameServer hosts games over HTTP and websockets.
type GameServer struct {
	store store.GameStore
	http.Server
}

// NewID returns a fresh uuid, used for server-generated seeds.
func NewID() string {
	return uuid.NewV4().String()
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer around a store.
func NewServer(gameStore store.GameStore) *GameServer {
	s := new(GameServer)

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game", http.HandlerFunc(s.HandleFindGame))
	router.Handle("/game/action", http.HandlerFunc(s.HandleAction))
	router.Handle("/legal", http.HandlerFunc(s.HandleLegalMoves))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.store = gameStore
	s.Handler = handlers.LoggingHandler(os.Stdout,
		handlers.CORS(handlers.AllowedOrigins([]string{"*"}))(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("could not parse request"))
		return
	}

	if len(data.Seats) < 2 || len(data.Seats) > 4 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("a game requires between 2 and 4 seats"))
		return
	}

	seed := data.Seed
	if seed == "" {
		seed = NewID()
	}

	state := ironworks.CreateGame(data.Seats, seed)
	if err := g.store.Add(state); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(err.Error()))
		return
	}

	writeJSON(w, http.StatusCreated, NewGameRes{GameID: state.ID, Seed: seed, State: state})
}

// HandleFindGame returns the latest snapshot of a game
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	state, ok := g.store.Find(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// HandleAction applies a single action to a game
func (g *GameServer) HandleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	var envelope protocol.ActionEnvelope
	err := json.NewDecoder(r.Body).Decode(&envelope)
	defer r.Body.Close()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("could not parse action"))
		return
	}

	state, rerr, err := g.store.Apply(gameID, envelope.Action())
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	writeJSON(w, http.StatusOK, ActionRes{State: state, Error: rerr})
}

// HandleLegalMoves lists the current legal moves for a player
func (g *GameServer) HandleLegalMoves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := r.URL.Query().Get("game_id")
	player := r.URL.Query().Get("player")
	if gameID == "" || player == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID or player"))
		return
	}

	state, ok := g.store.Find(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	moves := ironworks.LegalMoves(state, player)
	res := LegalMovesRes{Moves: []protocol.ActionEnvelope{}}
	for _, move := range moves {
		res.Moves = append(res.Moves, protocol.Envelope(move))
	}

	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	responseBytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(responseBytes)
}
