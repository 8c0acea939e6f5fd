package encode

import (
	"github.com/go-air/gini/z"

	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

func init() {
	register(netlist.DffCell, encodeStateHolding)
	register(netlist.LatchCell, encodeStateHolding)
}

// encodeStateHolding models a flip-flop or latch: output at step equals
// the data input at step-1. At step 1 there is no step 0, so the state
// bits are left as fresh free variables — this is what gives the prover
// its "arbitrary starting state" semantics.
func encodeStateHolding(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	d := cell.Ports["D"]
	q := cell.Ports["Q"]
	out := make([]z.Lit, len(q))
	for i := range q {
		var lit z.Lit
		if step == 1 {
			lit = b.Lit()
		} else {
			lit = vars.Var(step-1, d[i])
		}
		out[i] = lit
	}
	bindOutputs(vars, cell, step, "Q", out)
	return out, true
}
