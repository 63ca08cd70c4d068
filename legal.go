package ironworks

import "github.com/minaorangina/ironworks/board"

// LegalMoves enumerates the link builds currently open to a player. Only
// the current player has moves; everyone else gets an empty slice. It is
// a read-only view intended for assistive tooling, not a rules oracle:
// resource affordability is only checked when the action is applied.
func LegalMoves(state GameState, player string) []Action {
	moves := []Action{}
	if player != state.CurrentPlayer {
		return moves
	}

	era := state.Phase.Era()
	network := PlayerNetwork(state, player)

	builders := state.Board.builders()
	for _, idx := range board.BuildableEdges(state.Board.Topology, builders, era) {
		edge := state.Board.Topology.Edges[idx]
		if len(network) > 0 && !network[edge.Nodes[0]] && !network[edge.Nodes[1]] {
			continue
		}
		moves = append(moves, BuildLink{
			Player: player,
			From:   edge.Nodes[0],
			To:     edge.Nodes[1],
		})
	}

	return moves
}
