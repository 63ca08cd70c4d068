package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	ironworks "github.com/minaorangina/ironworks"
	"github.com/minaorangina/ironworks/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWS upgrades to a websocket session against one game. The client
// receives the full event log on connect, then submits action envelopes
// and receives the events each action appended plus any rule error.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
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

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("could not upgrade to websocket:", err.Error())
		return
	}
	defer conn.Close()

	if err := conn.WriteJSON(state.Log); err != nil {
		log.Println(err.Error())
		return
	}
	seen := len(state.Log)

	for {
		var envelope protocol.ActionEnvelope
		if err := conn.ReadJSON(&envelope); err != nil {
			return
		}

		next, rerr, err := g.store.Apply(gameID, envelope.Action())
		if err != nil {
			log.Println(err.Error())
			return
		}

		res := wsActionRes{Events: next.Log[seen:], Error: rerr}
		seen = len(next.Log)
		if err := conn.WriteJSON(res); err != nil {
			return
		}
	}
}

type wsActionRes struct {
	Events []ironworks.GameEvent `json:"events"`
	Error  *ironworks.RuleError  `json:"error,omitempty"`
}
