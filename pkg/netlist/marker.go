package netlist

// Marker wraps a Cell of type MarkerCell, giving typed access to its A/B/Y
// ports and the one mutation the induction core ever performs.
type Marker struct {
	Cell *Cell
}

// AsMarker returns a Marker view of c, or ok == false if c is not a
// MarkerCell.
func AsMarker(c *Cell) (Marker, bool) {
	if c.Type != MarkerCell {
		return Marker{}, false
	}
	return Marker{Cell: c}, true
}

// A returns the marker's A port.
func (m Marker) A() []Signal { return m.Cell.Ports["A"] }

// B returns the marker's B port.
func (m Marker) B() []Signal { return m.Cell.Ports["B"] }

// Y returns the marker's Y port.
func (m Marker) Y() []Signal { return m.Cell.Ports["Y"] }

// Proven reports whether every bit of A is canonically identical to the
// corresponding bit of B. A zero-width marker is vacuously proven.
func (m Marker) Proven(canon *Canonicalizer) bool {
	a, b := m.A(), m.B()
	for i := range a {
		if !canon.SameBit(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SyntacticallyProven reports whether every bit of A is the literal same
// Signal as the corresponding bit of B, with no canonicalization. Per
// spec §3's data model, this is the narrower of the two notions of
// "proven": a marker only wire-aliased to its partner (same canonical
// representative, different Signal) is not syntactically proven and so
// still belongs in a workset, even though Worker will find it trivially
// provable without touching the solver. A zero-width marker is
// vacuously proven.
func (m Marker) SyntacticallyProven() bool {
	a, b := m.A(), m.B()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Rewrite aliases B to A, making the marker trivially proven on any
// subsequent run. This is the only mutation the induction core performs on
// netlist structure.
func (m Marker) Rewrite() {
	a := m.Cell.Ports["A"]
	cp := make([]Signal, len(a))
	copy(cp, a)
	m.Cell.Ports["B"] = cp
}
