// Package protocol carries the wire shapes shared between the engine and
// a hosting server. Actions cross a serialization boundary here, so
// unrecognized type tags survive decoding and are rejected by the
// reducer rather than dropped.
package protocol

import (
	"encoding/json"

	ironworks "github.com/minaorangina/ironworks"
)

// Action type tags.
const (
	EndTurn       = "END_TURN"
	BuildLink     = "BUILD_LINK"
	BuildIndustry = "BUILD_INDUSTRY"
)

// ActionEnvelope is the JSON shape of a submitted action, discriminated
// by Type.
type ActionEnvelope struct {
	Type     string `json:"type"`
	Player   string `json:"player"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	City     string `json:"city,omitempty"`
	Industry string `json:"industry,omitempty"`
	Level    int    `json:"level,omitempty"`
	CardID   string `json:"cardId,omitempty"`
}

// Action converts the envelope into an engine action. Unrecognized type
// tags become an UnknownAction for the reducer to reject.
func (e ActionEnvelope) Action() ironworks.Action {
	switch e.Type {
	case EndTurn:
		return ironworks.EndTurn{Player: e.Player}
	case BuildLink:
		return ironworks.BuildLink{Player: e.Player, From: e.From, To: e.To}
	case BuildIndustry:
		return ironworks.BuildIndustry{
			Player:   e.Player,
			City:     e.City,
			Industry: ironworks.IndustryKind(e.Industry),
			Level:    e.Level,
			CardID:   e.CardID,
		}
	default:
		return ironworks.UnknownAction{Type: e.Type, Player: e.Player}
	}
}

// ParseAction decodes a JSON action envelope.
func ParseAction(data []byte) (ironworks.Action, error) {
	var envelope ActionEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return envelope.Action(), nil
}

// Envelope converts an engine action back to its wire shape, for legal
// move listings.
func Envelope(action ironworks.Action) ActionEnvelope {
	switch a := action.(type) {
	case ironworks.EndTurn:
		return ActionEnvelope{Type: EndTurn, Player: a.Player}
	case ironworks.BuildLink:
		return ActionEnvelope{Type: BuildLink, Player: a.Player, From: a.From, To: a.To}
	case ironworks.BuildIndustry:
		return ActionEnvelope{
			Type:     BuildIndustry,
			Player:   a.Player,
			City:     a.City,
			Industry: string(a.Industry),
			Level:    a.Level,
			CardID:   a.CardID,
		}
	case ironworks.UnknownAction:
		return ActionEnvelope{Type: a.Type, Player: a.Player}
	}
	return ActionEnvelope{}
}
