// Package solver is a thin façade over an incremental SAT solver
// (github.com/go-air/gini), exposing exactly the primitives the induction
// engine needs: variable allocation, boolean-connective literal builders,
// permanent clauses/bindings, and scoped-assumption solving. Modeled on
// github.com/operator-framework/operator-lifecycle-manager's
// pkg/controller/registry/resolver/solver package, which wraps the same
// library the same way for a different kind of SAT-backed decision
// (dependency resolution rather than bounded model checking).
package solver

import (
	"context"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Outcomes mirror gini's raw solve-result encoding.
const (
	Satisfiable   = 1
	Unsatisfiable = -1
	Unknown       = 0
)

// Adapter wraps one gini instance and its AIG/CNF builder for the
// duration of a single worker run.
type Adapter struct {
	g          *gini.Gini
	c          *logic.C
	marks      []int8
	assumed    []z.Lit // permanent-for-run assumptions, re-asserted before every Solve
	trueLit    z.Lit
	numClauses int
}

// New returns a fresh Adapter with no variables or clauses.
func New() *Adapter {
	return &Adapter{g: gini.New(), c: logic.NewCCap(1024)}
}

// Lit allocates a fresh solver variable and returns its positive literal.
func (a *Adapter) Lit() z.Lit {
	return a.c.Lit()
}

// And returns a literal whose satisfying assignments are exactly x ∧ y.
func (a *Adapter) And(x, y z.Lit) z.Lit {
	return a.c.And(x, y)
}

// Or returns a literal whose satisfying assignments are exactly x ∨ y.
func (a *Adapter) Or(x, y z.Lit) z.Lit {
	return a.c.Or(x, y)
}

// Not returns the negation of x. Negation is a bit-level operation in
// gini's literal representation, so this costs no solver variables or
// clauses.
func (a *Adapter) Not(x z.Lit) z.Lit {
	return x.Not()
}

// Xor returns a literal whose satisfying assignments are exactly x ⊕ y.
func (a *Adapter) Xor(x, y z.Lit) z.Lit {
	return a.c.Xor(x, y)
}

// Iff returns a literal whose satisfying assignments are exactly x ↔ y.
func (a *Adapter) Iff(x, y z.Lit) z.Lit {
	return a.c.Xor(x, y).Not()
}

// True returns a literal permanently bound true, built once per Adapter
// and cached. Unlike the real Tseitin clauses for the boolean connectives
// above, this exists purely to give constant-0/1 signal bits a solver
// literal without special-casing them throughout the encoder.
func (a *Adapter) True() z.Lit {
	if a.trueLit == z.LitNull {
		l := a.c.Lit()
		a.Bind(l)
		a.trueLit = l
	}
	return a.trueLit
}

// False returns a literal permanently bound false.
func (a *Adapter) False() z.Lit {
	return a.True().Not()
}

// flush teaches the solver any CNF clauses that feed m and haven't been
// taught yet, tracking visited circuit nodes in a.marks so repeated calls
// across time steps never re-teach the same gate. Modeled directly on
// lit_mapping.go's CardinalityConstrainer, which threads a shared marks
// slice through successive CnfSince calls for the same reason.
func (a *Adapter) flush(m z.Lit) {
	if n := a.c.Len(); cap(a.marks) < n {
		grown := make([]int8, n)
		copy(grown, a.marks)
		a.marks = grown
	} else {
		a.marks = a.marks[:n]
	}
	marks, added := a.c.CnfSince(a.g, a.marks, m)
	a.marks = marks
	a.numClauses += added
}

// Bind adds lit as a permanent unit clause: it can never be retracted for
// the remaining lifetime of the Adapter.
func (a *Adapter) Bind(lit z.Lit) {
	a.flush(lit)
	a.g.Add(lit)
	a.g.Add(z.LitNull)
	a.numClauses++
}

// Assume marks lits as permanent for the remainder of this run: every
// subsequent Solve call re-asserts them, so the inductive-hypothesis chain
// never needs to be rebuilt. This is distinct from the extra literals
// passed to Solve itself, which are retracted once that call returns.
func (a *Adapter) Assume(lits ...z.Lit) {
	for _, m := range lits {
		a.flush(m)
	}
	a.assumed = append(a.assumed, lits...)
}

// Solve runs the solver with the permanent assumption set plus the given
// extra literals, which apply to this call only. It returns Satisfiable,
// Unsatisfiable, or Unknown if ctx is done before the solver could decide
// — treated conservatively by callers as a failed proof, never an error.
func (a *Adapter) Solve(ctx context.Context, extra ...z.Lit) int {
	if ctx != nil && ctx.Err() != nil {
		return Unknown
	}
	for _, m := range extra {
		a.flush(m)
	}
	a.g.Assume(a.assumed...)
	a.g.Assume(extra...)
	return a.g.Solve()
}

// NumCnfVariables reports the number of circuit nodes built so far, an
// upper bound on the number of distinct solver variables in play. Used
// only for progress logging.
func (a *Adapter) NumCnfVariables() int {
	return a.c.Len()
}

// NumCnfClauses reports the number of clauses taught to the solver so
// far.
func (a *Adapter) NumCnfClauses() int {
	return a.numClauses
}
