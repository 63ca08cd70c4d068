package ironworks

import (
	"fmt"

	"github.com/minaorangina/ironworks/board"
)

// AreConnected reports reachability between two nodes over built links
// only. It is reflexive.
func AreConnected(state GameState, from, to board.NodeID) bool {
	return board.Connected(state.Board.Topology, state.Board.builders(), from, to)
}

// PlayerNetwork returns every node in a player's network: the endpoints
// of links the player built, plus cities where the player owns a tile.
func PlayerNetwork(state GameState, player string) map[board.NodeID]bool {
	nodes := map[board.NodeID]bool{}

	for i, ls := range state.Board.LinkStates {
		if ls.BuiltBy != player {
			continue
		}
		edge := state.Board.Topology.Edges[i]
		nodes[edge.Nodes[0]] = true
		nodes[edge.Nodes[1]] = true
	}

	for _, tile := range state.Board.Tiles {
		if tile.Owner == player {
			nodes[tile.City] = true
		}
	}

	return nodes
}

// IsLegalLinkBuild reports whether a player may build the a-b link in
// era: the edge must exist, be era-eligible and unbuilt, and touch the
// player's network. A player with no network yet may build any eligible
// edge.
func IsLegalLinkBuild(state GameState, player string, a, b board.NodeID, era board.EraKind) bool {
	if !board.IsLegalEdge(state.Board.Topology, state.Board.builders(), a, b, era) {
		return false
	}

	network := PlayerNetwork(state, player)
	if len(network) == 0 {
		return true
	}
	return network[a] || network[b]
}

// BuildLinkState marks the a-b edge as built by player and returns the
// new snapshot. It is the low-level primitive under the reducer's
// BUILD_LINK path: calling it on a missing or already-built edge means
// the caller bypassed the reducer's legality checks, so it panics.
func BuildLinkState(state GameState, player string, a, b board.NodeID, era board.EraKind) GameState {
	idx := state.Board.Topology.FindEdge(a, b, era)
	if idx == -1 {
		panic(fmt.Sprintf("ironworks: no %s-eligible edge between %s and %s", era, a, b))
	}
	if state.Board.LinkStates[idx].BuiltBy != "" {
		panic(fmt.Sprintf("ironworks: link %s-%s already built by %s", a, b, state.Board.LinkStates[idx].BuiltBy))
	}

	next := state.Clone()
	next.Board.LinkStates[idx] = LinkState{BuiltBy: player}
	return next
}
