package netlist

// Module is a named container of cells and the wire aliases connecting
// them. Modules are processed independently by the induction engine.
type Module struct {
	Name    string
	cells   []*Cell
	aliases [][2]Signal
}

// NewModule returns an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// AddCell appends a cell to the module, preserving the order cells were
// added in. Encoder variable allocation is a function of this order (see
// package encode), so callers should add cells in the same order the
// source netlist IR iterates them.
func (m *Module) AddCell(c *Cell) {
	m.cells = append(m.cells, c)
}

// AddAlias records a direct wire-to-wire connection for the signal
// canonicalizer.
func (m *Module) AddAlias(a, b Signal) {
	m.aliases = append(m.aliases, [2]Signal{a, b})
}

// Aliases returns the module's wire-alias relation.
func (m *Module) Aliases() [][2]Signal {
	return m.aliases
}

// SelectedCells returns the cells of the module that sel includes, in
// module-given order.
func (m *Module) SelectedCells(sel Selection) []*Cell {
	if sel == nil {
		sel = SelectAll{}
	}
	out := make([]*Cell, 0, len(m.cells))
	for _, c := range m.cells {
		if sel.Includes(c.Name) {
			out = append(out, c)
		}
	}
	return out
}

// Markers returns the equivalence markers among the module's selected
// cells, in module-given order.
func (m *Module) Markers(sel Selection) []*Marker {
	var out []*Marker
	for _, c := range m.SelectedCells(sel) {
		if mk, ok := AsMarker(c); ok {
			out = append(out, &mk)
		}
	}
	return out
}
