package ironworks

import "fmt"

// ErrorCode identifies why an action was rejected.
type ErrorCode string

const (
	NotCurrentPlayer         ErrorCode = "NOT_CURRENT_PLAYER"
	ActionsRemaining         ErrorCode = "ACTIONS_REMAINING"
	TurnActionLimitReached   ErrorCode = "TURN_ACTION_LIMIT_REACHED"
	IllegalLinkForPhase      ErrorCode = "ILLEGAL_LINK_FOR_PHASE"
	InsufficientResources    ErrorCode = "INSUFFICIENT_RESOURCES"
	CardNotInHand            ErrorCode = "CARD_NOT_IN_HAND"
	InvalidBuildCard         ErrorCode = "INVALID_BUILD_CARD"
	CardDoesNotAllowBuild    ErrorCode = "CARD_DOES_NOT_ALLOW_BUILD"
	BuildNotConnectedForCard ErrorCode = "BUILD_NOT_CONNECTED_FOR_CARD"
	InvalidTileFlipState     ErrorCode = "INVALID_TILE_FLIP_STATE"
	IllegalIndustryBuild     ErrorCode = "ILLEGAL_INDUSTRY_BUILD"
	UnknownActionType        ErrorCode = "UNKNOWN_ACTION"
)

// RuleError is a user-facing invalid action. It is always returned as a
// result value, never panicked; programmer errors panic instead.
type RuleError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ruleError(code ErrorCode, format string, args ...interface{}) *RuleError {
	return &RuleError{Code: code, Message: fmt.Sprintf(format, args...)}
}
