package ironworks

import (
	"fmt"

	"github.com/minaorangina/ironworks/board"
)

// Reduce validates and applies a single action, returning the next
// snapshot. The input snapshot is never mutated. On failure the returned
// state differs from the input only by an appended INVALID_ACTION log
// entry, so rejected moves still leave an audit trail.
func Reduce(state GameState, action Action) (GameState, *RuleError) {
	if rerr := CheckTileInvariants(state); rerr != nil {
		return rejected(state, rerr)
	}

	next, rerr := apply(state, action)
	if rerr != nil {
		return rejected(state, rerr)
	}

	if rerr := CheckTileInvariants(next); rerr != nil {
		return rejected(state, rerr)
	}

	return next, nil
}

func apply(state GameState, action Action) (GameState, *RuleError) {
	switch a := action.(type) {
	case EndTurn:
		return applyEndTurn(state, a)
	case BuildLink:
		return applyBuildLink(state, a)
	case BuildIndustry:
		return applyBuildIndustry(state, a)
	default:
		// Well-typed callers cannot reach this; wire decoders can.
		return GameState{}, ruleError(UnknownActionType, "unknown action type %T", action)
	}
}

// rejected appends the failure to the log without applying the action.
func rejected(state GameState, rerr *RuleError) (GameState, *RuleError) {
	next := state.Clone()
	appendEvent(&next, EventInvalidAction, InvalidActionData{
		Code:    rerr.Code,
		Message: rerr.Message,
		Context: InvalidActionContext{
			CurrentPlayer: state.CurrentPlayer,
			Phase:         state.Phase,
		},
	})
	return next, rerr
}

func checkActor(state GameState, actor string) *RuleError {
	if actor != state.CurrentPlayer {
		return ruleError(NotCurrentPlayer, "it is %s's turn, not %s's", state.CurrentPlayer, actor)
	}
	return nil
}

func applyEndTurn(state GameState, action EndTurn) (GameState, *RuleError) {
	if rerr := checkActor(state, action.Player); rerr != nil {
		return GameState{}, rerr
	}
	if required := RequiredActions(state.Round); state.ActionsTaken < required {
		return GameState{}, ruleError(ActionsRemaining, "%d of %d actions taken this turn", state.ActionsTaken, required)
	}

	next := state.Clone()
	advanceTurn(&next, EventEndTurn)
	return next, nil
}

// advanceTurn hands the turn to the next seat, bumping the round when
// play wraps past the last seat.
func advanceTurn(st *GameState, eventType EventType) {
	from := st.CurrentPlayer
	i := 0
	for idx, seat := range st.SeatOrder {
		if seat == from {
			i = idx
			break
		}
	}
	nextIdx := (i + 1) % len(st.SeatOrder)
	to := st.SeatOrder[nextIdx]

	st.Turn++
	if nextIdx == 0 {
		st.Round++
	}
	st.CurrentPlayer = to
	st.ActionsTaken = 0

	appendEvent(st, eventType, EndTurnData{From: from, To: to})
}

// finalize consumes one action from the turn quota and silently ends the
// turn once the quota is met.
func finalize(st *GameState) {
	quota := RequiredActions(st.Round)
	st.ActionsTaken++
	if st.ActionsTaken >= quota {
		advanceTurn(st, EventAutoEndTurn)
	}
}

func checkQuota(state GameState) *RuleError {
	if state.ActionsTaken >= RequiredActions(state.Round) {
		return ruleError(TurnActionLimitReached, "no actions left this turn")
	}
	return nil
}

func applyBuildLink(state GameState, action BuildLink) (GameState, *RuleError) {
	if rerr := checkActor(state, action.Player); rerr != nil {
		return GameState{}, rerr
	}
	if rerr := checkQuota(state); rerr != nil {
		return GameState{}, rerr
	}

	era := state.Phase.Era()
	if !IsLegalLinkBuild(state, action.Player, action.From, action.To, era) {
		return GameState{}, ruleError(IllegalLinkForPhase, "no buildable %s link between %s and %s", era, action.From, action.To)
	}

	next := BuildLinkState(state, action.Player, action.From, action.To, era)

	data := BuildLinkData{
		Player: action.Player,
		From:   action.From,
		To:     action.To,
		Era:    era,
	}

	// Rail links consume one coal, sourced relative to the link's own
	// endpoints over the network that now includes the new link.
	if state.Phase == PhaseRail {
		resolved, res, rerr := ResolveCoal(next, action.Player, CoalOptions{
			RequiredUnits: 1,
			Anchors:       []board.NodeID{action.From, action.To},
		})
		if rerr != nil {
			return GameState{}, rerr
		}
		next = resolved
		data.CoalSource = res.Sources[0].Kind
		data.CoalSpend = res.Spend
		data.FlippedTiles = res.FlippedTiles
		data.IncomeAwards = res.IncomeAwards
	}

	appendEvent(&next, EventBuildLink, data)
	finalize(&next)
	return next, nil
}

func applyBuildIndustry(state GameState, action BuildIndustry) (GameState, *RuleError) {
	if rerr := checkActor(state, action.Player); rerr != nil {
		return GameState{}, rerr
	}
	if rerr := checkQuota(state); rerr != nil {
		return GameState{}, rerr
	}

	cfg, ok := IndustryLevels[action.Industry][action.Level]
	if !ok {
		return GameState{}, ruleError(IllegalIndustryBuild, "no %s industry at level %d", action.Industry, action.Level)
	}

	city, known := state.Board.Topology.CityByID(action.City)
	if !known {
		return GameState{}, ruleError(IllegalIndustryBuild, "unknown city %s", action.City)
	}
	supported := false
	for _, slot := range city.Industries {
		if slot == action.Industry.Label() {
			supported = true
			break
		}
	}
	if !supported {
		return GameState{}, ruleError(IllegalIndustryBuild, "%s cannot be built in %s", action.Industry, action.City)
	}

	for _, tile := range state.Board.Tiles {
		if tile.City == action.City && tile.Industry == action.Industry && !tile.Flipped {
			return GameState{}, ruleError(IllegalIndustryBuild, "an unflipped %s tile already exists in %s", action.Industry, action.City)
		}
	}

	card, rerr := validateBuildCard(state, action)
	if rerr != nil {
		return GameState{}, rerr
	}

	if state.Players[action.Player].Money < cfg.Money {
		return GameState{}, ruleError(IllegalIndustryBuild, "base build cost %d exceeds available money", cfg.Money)
	}

	next, coalRes, rerr := ResolveCoal(state, action.Player, CoalOptions{
		RequiredUnits: cfg.CoalRequired,
		Anchors:       []board.NodeID{action.City},
	})
	if rerr != nil {
		return GameState{}, rerr
	}

	next, ironRes, rerr := ResolveIron(next, action.Player, cfg.IronRequired)
	if rerr != nil {
		return GameState{}, rerr
	}

	next = next.Clone()

	p := next.Players[action.Player]
	p.Money -= cfg.Money
	next.Players[action.Player] = p

	consumeCard(&next, action.Player, action.CardID)

	tileID := fmt.Sprintf("tile-%s-%d", action.Industry, len(next.Log))
	next.Board.Tiles[tileID] = TileState{
		ID:                 tileID,
		City:               action.City,
		Industry:           action.Industry,
		Owner:              action.Player,
		Level:              action.Level,
		ResourcesRemaining: cfg.CubesProduced,
		IncomeOnFlip:       cfg.IncomeOnFlip,
		Flipped:            cfg.CubesProduced == 0,
	}

	var move MarketMove
	if action.Industry == Coal {
		next, move = MoveCoalToMarket(next, tileID)
	} else {
		next, move = MoveIronToMarket(next, tileID)
	}

	placed := next.Board.Tiles[tileID]
	data := BuildIndustryData{
		Player:             action.Player,
		City:               action.City,
		Industry:           action.Industry,
		Level:              action.Level,
		TileID:             tileID,
		MarketMoved:        move.Moved,
		ResourcesRemaining: placed.ResourcesRemaining,
		Flipped:            placed.Flipped,
		IncomeDelta:        move.IncomeDelta,
		BuildCost:          cfg.Money,
		CardID:             action.CardID,
		CardKind:           string(card.Kind),
		DiscardedCardID:    action.CardID,
		ResourceSpend:      coalRes.Spend + ironRes.Spend,
	}
	data.ResourceSources.Coal = ResourceRequirement{Required: cfg.CoalRequired, Sources: coalRes.Sources, Spend: coalRes.Spend}
	data.ResourceSources.Iron = ResourceRequirement{Required: cfg.IronRequired, Sources: ironRes.Sources, Spend: ironRes.Spend}

	appendEvent(&next, EventBuildIndustry, data)
	finalize(&next)
	return next, nil
}
