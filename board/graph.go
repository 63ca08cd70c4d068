package board

// builtBy holds one entry per topology edge: the id of the player who
// built it, or "" if the link is unbuilt. The engine owns the slice; this
// package only reads it.

// Buildable reports whether the edge at idx is era-eligible and unbuilt.
func Buildable(topo Topology, builtBy []string, idx int, era EraKind) bool {
	if idx < 0 || idx >= len(topo.Edges) {
		return false
	}
	return topo.Edges[idx].AllowsEra(era) && builtBy[idx] == ""
}

// IsLegalEdge reports whether an unbuilt edge joining a and b exists whose
// kind matches era or is "both".
func IsLegalEdge(topo Topology, builtBy []string, a, b NodeID, era EraKind) bool {
	idx := topo.FindEdge(a, b, era)
	return idx != -1 && builtBy[idx] == ""
}

// Connected reports whether to is reachable from from over built links
// only. A node is trivially connected to itself.
func Connected(topo Topology, builtBy []string, from, to NodeID) bool {
	if from == to {
		return true
	}

	visited := map[NodeID]bool{}
	queue := []NodeID{from}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if visited[node] {
			continue
		}
		visited[node] = true

		for i, e := range topo.Edges {
			if builtBy[i] == "" {
				continue
			}
			var neighbour NodeID
			switch node {
			case e.Nodes[0]:
				neighbour = e.Nodes[1]
			case e.Nodes[1]:
				neighbour = e.Nodes[0]
			default:
				continue
			}
			if neighbour == to {
				return true
			}
			queue = append(queue, neighbour)
		}
	}

	return false
}

// BuildableEdges returns the indices of every unbuilt edge eligible in era.
func BuildableEdges(topo Topology, builtBy []string, era EraKind) []int {
	indices := []int{}
	for i, e := range topo.Edges {
		if e.AllowsEra(era) && builtBy[i] == "" {
			indices = append(indices, i)
		}
	}
	return indices
}
