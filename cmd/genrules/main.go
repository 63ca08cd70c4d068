// Command genrules regenerates the typed rules tables from the YAML
// sources in docs/rules-data. Run it from the repository root after
// editing either file:
//
//	go run ./cmd/genrules
package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/minaorangina/ironworks/board"
)

const (
	topologyInput  = "docs/rules-data/board-topology.yaml"
	topologyOutput = "board/topology_gen.go"
	industryInput  = "docs/rules-data/industry-values.yaml"
	industryOutput = "industry_gen.go"
)

type topologyDoc struct {
	Cities []struct {
		ID         string   `yaml:"id"`
		Industries []string `yaml:"industries"`
	} `yaml:"cities"`
	Ports []string `yaml:"ports"`
	Edges []struct {
		Nodes   []string `yaml:"nodes"`
		Kind    string   `yaml:"kind"`
		Comment string   `yaml:"comment"`
	} `yaml:"edges"`
}

type industryDoc struct {
	Industries map[string]struct {
		Levels map[int]industryLevel `yaml:"levels"`
	} `yaml:"industries"`
}

type industryLevel struct {
	MoneyCost     int    `yaml:"money_cost"`
	CoalRequired  int    `yaml:"coal_required"`
	IronRequired  int    `yaml:"iron_required"`
	CubesProduced int    `yaml:"cubes_produced"`
	IncomeOnFlip  int    `yaml:"income_on_flip"`
	SourceNote    string `yaml:"source_note"`
}

func main() {
	if err := generateTopology(); err != nil {
		log.Fatal(err.Error())
	}
	if err := generateIndustryTable(); err != nil {
		log.Fatal(err.Error())
	}
}

func generateTopology() error {
	raw, err := ioutil.ReadFile(topologyInput)
	if err != nil {
		return err
	}

	var doc topologyDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%s: %v", topologyInput, err)
	}

	topo := board.Topology{Ports: doc.Ports}
	for _, c := range doc.Cities {
		topo.Cities = append(topo.Cities, board.City{ID: c.ID, Industries: c.Industries})
	}
	for _, e := range doc.Edges {
		if len(e.Nodes) != 2 {
			return fmt.Errorf("%s: edge %v must have exactly two nodes", topologyInput, e.Nodes)
		}
		topo.Edges = append(topo.Edges, board.Edge{
			Nodes: [2]board.NodeID{e.Nodes[0], e.Nodes[1]},
			Kind:  board.EdgeKind(e.Kind),
		})
	}
	if err := topo.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cmd/genrules from %s. DO NOT EDIT.\n\n", topologyInput)
	buf.WriteString("package board\n\n")
	buf.WriteString("// Midlands is the standard board.\n")
	buf.WriteString("var Midlands = Topology{\n")

	buf.WriteString("\tCities: []City{\n")
	for _, c := range topo.Cities {
		fmt.Fprintf(&buf, "\t\t{ID: %q, Industries: []string{%s}},\n", c.ID, quoteList(c.Industries))
	}
	buf.WriteString("\t},\n")

	buf.WriteString("\tPorts: []NodeID{\n")
	for _, p := range topo.Ports {
		fmt.Fprintf(&buf, "\t\t%q,\n", p)
	}
	buf.WriteString("\t},\n")

	buf.WriteString("\tEdges: []Edge{\n")
	for _, e := range topo.Edges {
		fmt.Fprintf(&buf, "\t\t{Nodes: [2]NodeID{%q, %q}, Kind: %s},\n",
			e.Nodes[0], e.Nodes[1], kindConst(e.Kind))
	}
	buf.WriteString("\t},\n}\n")

	return write(topologyOutput, buf.Bytes())
}

func generateIndustryTable() error {
	raw, err := ioutil.ReadFile(industryInput)
	if err != nil {
		return err
	}

	var doc industryDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%s: %v", industryInput, err)
	}
	if len(doc.Industries) == 0 {
		return fmt.Errorf("%s: no industries defined", industryInput)
	}

	industries := make([]string, 0, len(doc.Industries))
	for name := range doc.Industries {
		industries = append(industries, name)
	}
	sort.Strings(industries)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cmd/genrules from %s. DO NOT EDIT.\n\n", industryInput)
	buf.WriteString("package ironworks\n\n")
	buf.WriteString("// IndustryLevel is one row of the industry cost table.\n")
	buf.WriteString("type IndustryLevel struct {\n")
	buf.WriteString("\tMoney         int `json:\"money\"`\n")
	buf.WriteString("\tCoalRequired  int `json:\"coalRequired\"`\n")
	buf.WriteString("\tIronRequired  int `json:\"ironRequired\"`\n")
	buf.WriteString("\tCubesProduced int `json:\"cubesProduced\"`\n")
	buf.WriteString("\tIncomeOnFlip  int `json:\"incomeOnFlip\"`\n")
	buf.WriteString("}\n\n")
	buf.WriteString("// IndustryLevels maps industry and level to build costs and output.\n")
	buf.WriteString("// Absence of an entry makes that build illegal.\n")
	buf.WriteString("var IndustryLevels = map[IndustryKind]map[int]IndustryLevel{\n")

	for _, name := range industries {
		block := doc.Industries[name]
		if len(block.Levels) == 0 {
			return fmt.Errorf("%s: industry %s has no levels", industryInput, name)
		}

		levels := make([]int, 0, len(block.Levels))
		for n := range block.Levels {
			levels = append(levels, n)
		}
		sort.Ints(levels)

		fmt.Fprintf(&buf, "\t%s: {\n", industryConst(name))
		for _, n := range levels {
			level := block.Levels[n]
			if err := checkLevel(name, n, level); err != nil {
				return err
			}
			fmt.Fprintf(&buf, "\t\t%d: {Money: %d, CoalRequired: %d, IronRequired: %d, CubesProduced: %d, IncomeOnFlip: %d},\n",
				n, level.MoneyCost, level.CoalRequired, level.IronRequired, level.CubesProduced, level.IncomeOnFlip)
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return write(industryOutput, buf.Bytes())
}

func checkLevel(industry string, n int, level industryLevel) error {
	if n <= 0 {
		return fmt.Errorf("%s level %d: level keys must be positive", industry, n)
	}
	note := strings.TrimSpace(level.SourceNote)
	if note == "" || strings.EqualFold(note, "UNKNOWN") {
		return fmt.Errorf("%s level %d: source_note is required", industry, n)
	}
	for label, v := range map[string]int{
		"money_cost":     level.MoneyCost,
		"coal_required":  level.CoalRequired,
		"iron_required":  level.IronRequired,
		"cubes_produced": level.CubesProduced,
		"income_on_flip": level.IncomeOnFlip,
	} {
		if v < 0 {
			return fmt.Errorf("%s level %d: %s must not be negative", industry, n, label)
		}
	}
	return nil
}

func industryConst(name string) string {
	switch name {
	case "coal":
		return "Coal"
	case "iron":
		return "Iron"
	}
	// New industries need a matching IndustryKind constant first.
	panic(fmt.Sprintf("genrules: no IndustryKind constant for %q", name))
}

func kindConst(kind board.EdgeKind) string {
	switch kind {
	case board.EdgeCanal:
		return "EdgeCanal"
	case board.EdgeRail:
		return "EdgeRail"
	case board.EdgeBoth:
		return "EdgeBoth"
	}
	panic(fmt.Sprintf("genrules: unknown edge kind %q", kind))
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

func write(path string, contents []byte) error {
	if err := ioutil.WriteFile(path, contents, 0644); err != nil {
		return err
	}
	log.Printf("Wrote %s", path)
	return nil
}
