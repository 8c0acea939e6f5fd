package encode

import (
	"github.com/go-air/gini/z"

	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

func init() {
	register(netlist.MarkerCell, encodeMarker)
}

// encodeMarker models the equivalence marker's local contract: Y equals
// A. The marker's contribution to consistent[step] spans every marker in
// the workset at once, so it is assembled by the worker directly (see
// package induct), not here.
func encodeMarker(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	a := cell.Ports["A"]
	out := make([]z.Lit, len(a))
	for i := range a {
		out[i] = vars.Var(step, a[i])
	}
	bindOutputs(vars, cell, step, "Y", out)
	return out, true
}
