package ironworks

import (
	"sort"

	"github.com/minaorangina/ironworks/board"
)

// SourceKind says where a resolved resource unit came from.
type SourceKind string

const (
	SourceTile     SourceKind = "tile"
	SourceMarket   SourceKind = "market"
	SourceFallback SourceKind = "fallback"
)

// ResourceSource is the provenance of a single resolved unit.
type ResourceSource struct {
	Kind   SourceKind   `json:"kind"`
	TileID string       `json:"tileId,omitempty"`
	City   board.NodeID `json:"city,omitempty"`
	Price  int          `json:"price,omitempty"`
}

// Resolution is the outcome of resolving a resource requirement.
type Resolution struct {
	Sources      []ResourceSource
	Spend        int
	FlippedTiles []string
	IncomeAwards []IncomeAward
}

// CoalOptions configures ResolveCoal. Anchors restrict candidate tiles
// to cities reachable from any anchor; with no anchors every usable coal
// tile qualifies.
type CoalOptions struct {
	RequiredUnits int
	Anchors       []board.NodeID
}

// MarketMove is the outcome of pushing a tile's cubes to the market.
type MarketMove struct {
	Moved       int
	Flipped     bool
	IncomeDelta int
}

func usableTile(tile TileState, industry IndustryKind) bool {
	return tile.Industry == industry && !tile.Flipped && tile.ResourcesRemaining > 0
}

// candidateCoalTiles returns usable coal tiles reachable from any
// anchor, ordered by tile id for a deterministic tie-break.
func candidateCoalTiles(state GameState, anchors []board.NodeID) []string {
	ids := []string{}
	for id, tile := range state.Board.Tiles {
		if !usableTile(tile, Coal) {
			continue
		}
		if len(anchors) == 0 {
			ids = append(ids, id)
			continue
		}
		for _, anchor := range anchors {
			if AreConnected(state, anchor, tile.City) {
				ids = append(ids, id)
				break
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// candidateIronTiles returns every usable iron tile; iron has no
// connectivity requirement.
func candidateIronTiles(state GameState) []string {
	ids := []string{}
	for id, tile := range state.Board.Tiles {
		if usableTile(tile, Iron) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// consumeTile takes units cubes off a tile, flipping it when it empties
// and paying the owner's income exactly once. Mutates st in place; st
// must be a working copy owned by the caller.
func consumeTile(st *GameState, tileID string, units int) (flipped bool, award *IncomeAward) {
	tile := st.Board.Tiles[tileID]
	wasFlipped := tile.Flipped

	tile.ResourcesRemaining -= units
	if tile.ResourcesRemaining < 0 {
		tile.ResourcesRemaining = 0
	}
	tile.Flipped = tile.ResourcesRemaining == 0
	st.Board.Tiles[tileID] = tile

	if tile.Flipped && !wasFlipped && tile.Owner != "" && tile.IncomeOnFlip > 0 {
		owner := st.Players[tile.Owner]
		owner.Income += tile.IncomeOnFlip
		st.Players[tile.Owner] = owner
		return tile.Flipped, &IncomeAward{TileID: tileID, Player: tile.Owner, Amount: tile.IncomeOnFlip}
	}

	return tile.Flipped, nil
}

// ResolveCoal sources the required coal units one at a time, preferring
// connected unflipped tiles over the market, re-evaluating candidates
// after every unit. Fails atomically with INSUFFICIENT_RESOURCES if the
// player cannot pay for a market or fallback unit.
func ResolveCoal(state GameState, player string, opts CoalOptions) (GameState, Resolution, *RuleError) {
	res := Resolution{Sources: []ResourceSource{}, FlippedTiles: []string{}, IncomeAwards: []IncomeAward{}}
	if opts.RequiredUnits <= 0 {
		return state, res, nil
	}

	next := state.Clone()
	for i := 0; i < opts.RequiredUnits; i++ {
		candidates := candidateCoalTiles(next, opts.Anchors)
		if len(candidates) > 0 {
			tileID := candidates[0]
			city := next.Board.Tiles[tileID].City
			flipped, award := consumeTile(&next, tileID, 1)
			if flipped {
				res.FlippedTiles = append(res.FlippedTiles, tileID)
			}
			if award != nil {
				res.IncomeAwards = append(res.IncomeAwards, *award)
			}
			res.Sources = append(res.Sources, ResourceSource{Kind: SourceTile, TileID: tileID, City: city})
			continue
		}

		var rerr *RuleError
		next, res, rerr = buyFromMarket(next, player, Coal, res)
		if rerr != nil {
			return GameState{}, Resolution{}, rerr
		}
	}

	return next, res, nil
}

// ResolveIron sources the required iron units one at a time. Iron tiles
// anywhere on the board qualify; otherwise the market supplies the unit.
func ResolveIron(state GameState, player string, requiredUnits int) (GameState, Resolution, *RuleError) {
	res := Resolution{Sources: []ResourceSource{}, FlippedTiles: []string{}, IncomeAwards: []IncomeAward{}}
	if requiredUnits <= 0 {
		return state, res, nil
	}

	next := state.Clone()
	for i := 0; i < requiredUnits; i++ {
		candidates := candidateIronTiles(next)
		if len(candidates) > 0 {
			tileID := candidates[0]
			city := next.Board.Tiles[tileID].City
			flipped, award := consumeTile(&next, tileID, 1)
			if flipped {
				res.FlippedTiles = append(res.FlippedTiles, tileID)
			}
			if award != nil {
				res.IncomeAwards = append(res.IncomeAwards, *award)
			}
			res.Sources = append(res.Sources, ResourceSource{Kind: SourceTile, TileID: tileID, City: city})
			continue
		}

		var rerr *RuleError
		next, res, rerr = buyFromMarket(next, player, Iron, res)
		if rerr != nil {
			return GameState{}, Resolution{}, rerr
		}
	}

	return next, res, nil
}

// buyFromMarket sources one unit from the market track, or at the fixed
// fallback price when the track is empty.
func buyFromMarket(st GameState, player string, industry IndustryKind, res Resolution) (GameState, Resolution, *RuleError) {
	track := st.Market.Coal
	price := CoalMarketPrice(track.Units)
	if industry == Iron {
		track = st.Market.Iron
		price = IronMarketPrice(track.Units)
	}

	kind := SourceMarket
	if track.Units == 0 {
		kind = SourceFallback
		price = track.FallbackPrice
	}

	p := st.Players[player]
	if p.Money < price {
		return GameState{}, Resolution{}, ruleError(InsufficientResources, "not enough money to source %s", industry)
	}
	p.Money -= price
	st.Players[player] = p

	if track.Units > 0 {
		track.Units--
	}
	if industry == Iron {
		st.Market.Iron = track
	} else {
		st.Market.Coal = track
	}

	res.Sources = append(res.Sources, ResourceSource{Kind: kind, Price: price})
	res.Spend += price
	return st, res, nil
}

// hasCoalMarketAccess reports whether any port is reachable from city
// over built links.
func hasCoalMarketAccess(state GameState, city board.NodeID) bool {
	for _, port := range state.Board.Topology.Ports {
		if AreConnected(state, city, port) {
			return true
		}
	}
	return false
}

// MoveCoalToMarket pushes a coal tile's cubes to the market up to
// capacity, provided the tile's city can reach a port over built links.
// Cubes that do not fit stay on the tile.
func MoveCoalToMarket(state GameState, tileID string) (GameState, MarketMove) {
	tile := state.Board.Tiles[tileID]
	if !hasCoalMarketAccess(state, tile.City) {
		return state, MarketMove{}
	}
	return moveToMarket(state, tileID, Coal, MaxCoalMarketUnits)
}

// MoveIronToMarket pushes an iron tile's cubes to the market up to
// capacity. Iron needs no port connectivity.
func MoveIronToMarket(state GameState, tileID string) (GameState, MarketMove) {
	return moveToMarket(state, tileID, Iron, MaxIronMarketUnits)
}

func moveToMarket(state GameState, tileID string, industry IndustryKind, maxUnits int) (GameState, MarketMove) {
	tile := state.Board.Tiles[tileID]

	units := state.Market.Coal.Units
	if industry == Iron {
		units = state.Market.Iron.Units
	}
	capacity := maxUnits - units
	if capacity < 0 {
		capacity = 0
	}
	moved := tile.ResourcesRemaining
	if moved > capacity {
		moved = capacity
	}
	if moved <= 0 {
		return state, MarketMove{}
	}

	next := state.Clone()
	flipped, award := consumeTile(&next, tileID, moved)
	if industry == Iron {
		next.Market.Iron.Units += moved
	} else {
		next.Market.Coal.Units += moved
	}

	move := MarketMove{Moved: moved, Flipped: flipped}
	if award != nil {
		move.IncomeDelta = award.Amount
	}
	return next, move
}
