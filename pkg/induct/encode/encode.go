// Package encode turns a single cell's function, at a single time step,
// into solver clauses. Dispatch is by netlist.CellType through a registry
// populated at package init, never through an open-coded string-compare
// chain over a type tag.
package encode

import (
	"github.com/go-air/gini/z"

	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

// Builder is the subset of the solver adapter the encoder needs: fresh
// variable allocation and boolean-connective literal builders. Satisfied
// structurally by *solver.Adapter without either package importing the
// other.
type Builder interface {
	Lit() z.Lit
	And(x, y z.Lit) z.Lit
	Or(x, y z.Lit) z.Lit
	Not(x z.Lit) z.Lit
	Xor(x, y z.Lit) z.Lit
	Iff(x, y z.Lit) z.Lit
	True() z.Lit
	False() z.Lit
}

// StepLookup resolves a (canonical bit, step) pair to the solver literal
// bound to it, allocating one on first use, and lets an encoder bind its
// cell's outputs to specific literals. Implementations canonicalize the
// bit before doing the lookup, so every caller gets this invariant for
// free: two canonically-equal bits always share a variable at a given
// step.
type StepLookup interface {
	Var(step int, bit netlist.Signal) z.Lit
	Bind(step int, bit netlist.Signal, lit z.Lit)
}

// Encoder emits clauses modeling one cell's function at one time step.
// outputs carries the literals bound to the cell's output bits, in the
// same order Encode bound them; ok is false if the cell's type has no
// model, in which case its outputs are left to resolve as free variables
// the next time something looks them up.
type Encoder func(b Builder, vars StepLookup, cell *netlist.Cell, step int) (outputs []z.Lit, ok bool)

var registry = make(map[netlist.CellType]Encoder)

// register is called only from this package's init; the registry is
// never populated by unrelated import-order side effects.
func register(t netlist.CellType, enc Encoder) {
	registry[t] = enc
}

// Encode looks up cell's type in the registry and, if found, runs its
// encoder. Returns ok == false for unrecognized or explicitly unmodelled
// types.
func Encode(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	enc, ok := registry[cell.Type]
	if !ok {
		return nil, false
	}
	return enc(b, vars, cell, step)
}

// varsOf resolves a port's bits to solver literals at step.
func varsOf(vars StepLookup, step int, port []netlist.Signal) []z.Lit {
	lits := make([]z.Lit, len(port))
	for i, s := range port {
		lits[i] = vars.Var(step, s)
	}
	return lits
}

// bindOutputs binds each output literal to the corresponding bit of the
// named port at step.
func bindOutputs(vars StepLookup, cell *netlist.Cell, step int, port string, lits []z.Lit) {
	bits := cell.Ports[port]
	for i, lit := range lits {
		vars.Bind(step, bits[i], lit)
	}
}
