package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

// loadModules reads a small YAML netlist description from path. This is
// a standalone-CLI convenience, not a stand-in for the production
// netlist IR parser spec §1 declares out of scope: a real host embeds
// this engine against its own netlist representation and never needs
// this loader at all. Modeled on cmd/operator-cli/bundle's own
// yaml.Unmarshal of a declarative document into the package's native
// types before handing it to resolver logic.
func loadModules(path string) ([]*netlist.Module, error) {
	if path == "" {
		return nil, fmt.Errorf("no -netlist path given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yamlNetlist
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	modules := make([]*netlist.Module, 0, len(doc.Modules))
	for _, ym := range doc.Modules {
		m := netlist.NewModule(ym.Name)
		for _, ya := range ym.Aliases {
			if len(ya) != 2 {
				return nil, fmt.Errorf("module %s: alias entries must have exactly two signals", ym.Name)
			}
			m.AddAlias(ya[0].toSignal(), ya[1].toSignal())
		}
		for _, yc := range ym.Cells {
			c, err := yc.toCell()
			if err != nil {
				return nil, fmt.Errorf("module %s: %w", ym.Name, err)
			}
			m.AddCell(c)
		}
		modules = append(modules, m)
	}
	return modules, nil
}

type yamlNetlist struct {
	Modules []yamlModule `yaml:"modules"`
}

type yamlModule struct {
	Name    string         `yaml:"name"`
	Aliases [][]yamlSignal `yaml:"aliases"`
	Cells   []yamlCell     `yaml:"cells"`
}

type yamlSignal struct {
	Wire  string `yaml:"wire"`
	Index int    `yaml:"index"`
	Const string `yaml:"const"` // "0", "1", "x", "z"; only meaningful when Wire == ""
}

func (s yamlSignal) toSignal() netlist.Signal {
	if s.Wire != "" {
		return netlist.WireBit(s.Wire, s.Index)
	}
	switch s.Const {
	case "1":
		return netlist.ConstSignal(netlist.One)
	case "x", "X":
		return netlist.ConstSignal(netlist.X)
	case "z", "Z":
		return netlist.ConstSignal(netlist.Z)
	default:
		return netlist.ConstSignal(netlist.Zero)
	}
}

type yamlCell struct {
	Name   string                  `yaml:"name"`
	Type   string                  `yaml:"type"`
	Ports  map[string][]yamlSignal `yaml:"ports"`
	Params yamlParams              `yaml:"params"`
}

type yamlParams struct {
	Width     int    `yaml:"width"`
	Signed    bool   `yaml:"signed"`
	ShiftAmt  int    `yaml:"shiftAmt"`
	ShiftLeft bool   `yaml:"shiftLeft"`
	ReduceOp  string `yaml:"reduceOp"`
	Op        string `yaml:"op"`
}

var cellTypesByName = map[string]netlist.CellType{
	"and":    netlist.AndCell,
	"or":     netlist.OrCell,
	"xor":    netlist.XorCell,
	"not":    netlist.NotCell,
	"mux":    netlist.MuxCell,
	"reduce": netlist.ReduceCell,
	"eq":     netlist.EqCell,
	"add":    netlist.AddCell,
	"sub":    netlist.SubCell,
	"cmp":    netlist.CmpCell,
	"shift":  netlist.ShiftCell,
	"mul":    netlist.MulCell,
	"dff":    netlist.DffCell,
	"latch":  netlist.LatchCell,
	"marker": netlist.MarkerCell,
}

var reduceOpsByName = map[string]netlist.ReduceOp{
	"and": netlist.ReduceAnd,
	"or":  netlist.ReduceOr,
	"xor": netlist.ReduceXor,
}

var cmpOpsByName = map[string]netlist.CmpOp{
	"lt": netlist.Lt,
	"le": netlist.Le,
	"eq": netlist.Eq,
	"ne": netlist.Ne,
	"ge": netlist.Ge,
	"gt": netlist.Gt,
}

func (yc yamlCell) toCell() (*netlist.Cell, error) {
	t, ok := cellTypesByName[yc.Type]
	if !ok {
		t = netlist.Unknown
	}
	ports := make(map[string][]netlist.Signal, len(yc.Ports))
	for name, bits := range yc.Ports {
		sigs := make([]netlist.Signal, len(bits))
		for i, b := range bits {
			sigs[i] = b.toSignal()
		}
		ports[name] = sigs
	}
	params := netlist.CellParams{
		Width:     yc.Params.Width,
		Signed:    yc.Params.Signed,
		ShiftAmt:  yc.Params.ShiftAmt,
		ShiftLeft: yc.Params.ShiftLeft,
	}
	if op, ok := reduceOpsByName[yc.Params.ReduceOp]; ok {
		params.ReduceOp = op
	}
	if op, ok := cmpOpsByName[yc.Params.Op]; ok {
		params.Op = op
	}
	return &netlist.Cell{Name: yc.Name, Type: t, Ports: ports, Params: params}, nil
}
