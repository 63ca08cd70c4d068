package ironworks

import "github.com/minaorangina/ironworks/board"

// Action is the closed set of moves a player can submit. The type switch
// in the reducer is exhaustive over the implementations below;
// UnknownAction exists only for malformed data arriving over the wire.
type Action interface {
	Actor() string
	isAction()
}

// EndTurn passes the turn to the next seat.
type EndTurn struct {
	Player string `json:"player"`
}

// BuildLink builds the link on the edge joining From and To.
type BuildLink struct {
	Player string       `json:"player"`
	From   board.NodeID `json:"from"`
	To     board.NodeID `json:"to"`
}

// BuildIndustry places an industry tile at City, authorized by the card
// named by CardID.
type BuildIndustry struct {
	Player   string       `json:"player"`
	City     board.NodeID `json:"city"`
	Industry IndustryKind `json:"industry"`
	Level    int          `json:"level"`
	CardID   string       `json:"cardId"`
}

// UnknownAction is produced by the wire decoder for unrecognized type
// tags. The reducer rejects it with UNKNOWN_ACTION.
type UnknownAction struct {
	Type   string `json:"type"`
	Player string `json:"player"`
}

func (a EndTurn) Actor() string       { return a.Player }
func (a BuildLink) Actor() string     { return a.Player }
func (a BuildIndustry) Actor() string { return a.Player }
func (a UnknownAction) Actor() string { return a.Player }

func (EndTurn) isAction()       {}
func (BuildLink) isAction()     {}
func (BuildIndustry) isAction() {}
func (UnknownAction) isAction() {}
