package ironworks

import "github.com/minaorangina/ironworks/board"

// EventType tags an entry in the game log.
type EventType string

const (
	EventGameCreated   EventType = "GAME_CREATED"
	EventEndTurn       EventType = "END_TURN"
	EventAutoEndTurn   EventType = "AUTO_END_TURN"
	EventBuildLink     EventType = "BUILD_LINK"
	EventBuildIndustry EventType = "BUILD_INDUSTRY"
	EventInvalidAction EventType = "INVALID_ACTION"
)

// GameEvent is an append-only log entry. Idx always equals the entry's
// position in the log.
type GameEvent struct {
	Idx  int         `json:"idx"`
	Type EventType   `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// GameCreatedData records the seats and seed a game started from.
type GameCreatedData struct {
	Seats []string `json:"seats"`
	Seed  string   `json:"seed"`
}

// EndTurnData records a turn handover. It is shared by END_TURN and
// AUTO_END_TURN events.
type EndTurnData struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// IncomeAward records a one-time payout to a tile's owner on flip.
type IncomeAward struct {
	TileID string `json:"tileId"`
	Player string `json:"player"`
	Amount int    `json:"amount"`
}

// BuildLinkData records a successful link build. The coal fields are set
// only for rail-era builds.
type BuildLinkData struct {
	Player       string        `json:"player"`
	From         board.NodeID  `json:"from"`
	To           board.NodeID  `json:"to"`
	Era          board.EraKind `json:"era"`
	CoalSource   SourceKind    `json:"coalSource,omitempty"`
	CoalSpend    int           `json:"coalSpend"`
	FlippedTiles []string      `json:"flippedTiles,omitempty"`
	IncomeAwards []IncomeAward `json:"incomeAwards,omitempty"`
}

// ResourceRequirement summarizes how one resource requirement was met.
type ResourceRequirement struct {
	Required int              `json:"required"`
	Sources  []ResourceSource `json:"sources"`
	Spend    int              `json:"spend"`
}

// BuildIndustryData records a successful industry build with full
// resource provenance.
type BuildIndustryData struct {
	Player             string       `json:"player"`
	City               board.NodeID `json:"city"`
	Industry           IndustryKind `json:"industry"`
	Level              int          `json:"level"`
	TileID             string       `json:"tileId"`
	MarketMoved        int          `json:"marketMoved"`
	ResourcesRemaining int          `json:"resourcesRemaining"`
	Flipped            bool         `json:"flipped"`
	IncomeDelta        int          `json:"incomeDelta"`
	BuildCost          int          `json:"buildCost"`
	CardID             string       `json:"cardId"`
	CardKind           string       `json:"cardKind"`
	DiscardedCardID    string       `json:"discardedCardId"`
	ResourceSpend      int          `json:"resourceSpend"`
	ResourceSources    struct {
		Coal ResourceRequirement `json:"coal"`
		Iron ResourceRequirement `json:"iron"`
	} `json:"resourceSources"`
}

// InvalidActionData records a rejected action so that audit trails work
// even for illegal moves.
type InvalidActionData struct {
	Code    ErrorCode            `json:"code"`
	Message string               `json:"message"`
	Context InvalidActionContext `json:"context"`
}

// InvalidActionContext captures the state the action was judged against.
type InvalidActionContext struct {
	CurrentPlayer string `json:"currentPlayer"`
	Phase         Phase  `json:"phase"`
}

func appendEvent(s *GameState, eventType EventType, data interface{}) {
	s.Log = append(s.Log, GameEvent{Idx: len(s.Log), Type: eventType, Data: data})
}
