package board

import (
	"fmt"
)

// NodeID identifies a city or a port on the board.
type NodeID = string

// EraKind is a construction era.
type EraKind string

const (
	EraCanal EraKind = "canal"
	EraRail  EraKind = "rail"
)

// EdgeKind restricts an edge to one era, or permits both.
type EdgeKind string

const (
	EdgeCanal EdgeKind = "canal"
	EdgeRail  EdgeKind = "rail"
	EdgeBoth  EdgeKind = "both"
)

// City is a buildable location with its permitted industry slots.
type City struct {
	ID         NodeID   `json:"id"`
	Industries []string `json:"industries"`
}

// Edge is an undirected, era-typed connection between two nodes.
type Edge struct {
	Nodes [2]NodeID `json:"nodes"`
	Kind  EdgeKind  `json:"kind"`
}

// AllowsEra reports whether a link may be built on this edge in the given era.
func (e Edge) AllowsEra(era EraKind) bool {
	return EdgeKind(era) == e.Kind || e.Kind == EdgeBoth
}

// Matches reports whether the edge joins a and b, in either order.
func (e Edge) Matches(a, b NodeID) bool {
	return (e.Nodes[0] == a && e.Nodes[1] == b) ||
		(e.Nodes[0] == b && e.Nodes[1] == a)
}

// Topology is the static board graph. It is produced by cmd/genrules and
// never mutated after creation.
type Topology struct {
	Cities []City   `json:"cities"`
	Ports  []NodeID `json:"ports"`
	Edges  []Edge   `json:"edges"`
}

// CityByID returns the city definition for id, if it exists.
func (t Topology) CityByID(id NodeID) (City, bool) {
	for _, c := range t.Cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// HasNode reports whether id names a known city or port.
func (t Topology) HasNode(id NodeID) bool {
	if _, ok := t.CityByID(id); ok {
		return true
	}
	for _, p := range t.Ports {
		if p == id {
			return true
		}
	}
	return false
}

// FindEdge returns the index of the edge joining a and b that permits era,
// or -1 if no such edge exists.
func (t Topology) FindEdge(a, b NodeID, era EraKind) int {
	for i, e := range t.Edges {
		if e.AllowsEra(era) && e.Matches(a, b) {
			return i
		}
	}
	return -1
}

// Validate checks the topology data contract: every edge joins two
// distinct, known nodes and no undirected edge appears twice.
func (t Topology) Validate() error {
	seen := map[string]bool{}
	for _, e := range t.Edges {
		a, b := e.Nodes[0], e.Nodes[1]
		if a == b {
			return fmt.Errorf("board: edge %s-%s joins a node to itself", a, b)
		}
		for _, n := range []NodeID{a, b} {
			if !t.HasNode(n) {
				return fmt.Errorf("board: edge %s-%s references unknown node %s", a, b, n)
			}
		}
		switch e.Kind {
		case EdgeCanal, EdgeRail, EdgeBoth:
		default:
			return fmt.Errorf("board: edge %s-%s has unknown kind %q", a, b, e.Kind)
		}
		key := a + "|" + b
		if b < a {
			key = b + "|" + a
		}
		if seen[key] {
			return fmt.Errorf("board: duplicate edge %s-%s", a, b)
		}
		seen[key] = true
	}
	return nil
}
