package induct

import (
	"context"
	"fmt"

	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/open-silicon/equiv-induct/pkg/induct/solver"
	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

// Worker runs one module's induction attempt: it owns one solver instance
// and its variable/clause state for the duration of the run; on
// completion (success or give-up) the solver state is discarded, but any
// marker rewrites it committed survive.
type Worker struct {
	module  *netlist.Module
	cells   []*netlist.Cell
	workset []*netlist.Marker
	bound   int
	log     logrus.FieldLogger

	tracer                        Tracer
	fallbackKeepsFinalConsistency bool
}

// NewWorker returns a Worker for module, ready to attempt a proof of
// every marker in workset over cells (the module's selected cells, in
// module-given order) up to bound steps.
func NewWorker(module *netlist.Module, cells []*netlist.Cell, workset []*netlist.Marker, bound int, log logrus.FieldLogger, opts ...Option) *Worker {
	w := &Worker{
		module:  module,
		cells:   cells,
		workset: workset,
		bound:   bound,
		log:     log,
		tracer:  DefaultTracer{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run executes the induction algorithm of spec §4.4: base/step queries
// up to bound, then a per-marker fallback sweep if the bound is
// exhausted without an inductive proof. It never returns a non-nil error
// for an ordinary proof failure — only for an internal consistency
// violation, which indicates a bug in the encoding state machine rather
// than a property of the circuit.
func (w *Worker) Run(ctx context.Context) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if v, ok := r.(internalConsistencyViolation); ok {
				err = fmt.Errorf("internal consistency violation: %w", v)
				res = Result{}
				return
			}
			panic(r)
		}
	}()

	canon := netlist.NewCanonicalizer(w.module.Aliases())

	var trivial, live []*netlist.Marker
	for _, m := range w.workset {
		if m.Proven(canon) {
			trivial = append(trivial, m)
		} else {
			live = append(live, m)
		}
	}
	for _, m := range trivial {
		m.Rewrite()
	}
	if len(live) == 0 {
		return Result{Proven: trivial, State: AllProven}, nil
	}

	b := solver.New()
	enc := newEncoding(canon, b)
	warned := make(map[netlist.CellType]bool)
	dedup := make(map[iffKey]z.Lit)
	consistent := make(map[int]z.Lit)

	enc.encodeStep(w.cells, 1, warned, w.log)
	consistent[1] = enc.consistencyTerm(live, 1, dedup)

	exhausted := false
	for i := 1; i <= w.bound; i++ {
		b.Assume(consistent[i])

		base := b.Solve(ctx)
		if base == solver.Unsatisfiable {
			w.log.WithFields(logrus.Fields{"module": w.module.Name, "step": i}).
				Warn("base case unsatisfiable: circuit inherently diverges under marker constraints")
			return Result{
				Proven:          trivial,
				State:           Diverged,
				NumCnfVariables: b.NumCnfVariables(),
				NumCnfClauses:   b.NumCnfClauses(),
			}, nil
		}

		enc.encodeStep(w.cells, i+1, warned, w.log)
		consistent[i+1] = enc.consistencyTerm(live, i+1, dedup)

		step := b.Solve(ctx, b.Not(consistent[i+1]))
		if step == solver.Unsatisfiable {
			for _, m := range live {
				m.Rewrite()
			}
			proven := append(append([]*netlist.Marker{}, trivial...), live...)
			w.log.WithFields(logrus.Fields{"module": w.module.Name, "step": i}).
				Info("induction succeeded")
			return Result{
				Proven:          proven,
				State:           AllProven,
				NumCnfVariables: b.NumCnfVariables(),
				NumCnfClauses:   b.NumCnfClauses(),
			}, nil
		}
		w.tracer.Trace(tracePosition{module: w.module.Name, step: i})
		if i == w.bound {
			exhausted = true
		}
	}
	if !exhausted {
		// bound < 1 is rejected by the equiv_induct command before the
		// driver runs; this is only reachable by a direct API caller
		// passing bound <= 0.
		return Result{Proven: trivial, State: Partial}, nil
	}

	finalStep := w.bound + 1
	if w.fallbackKeepsFinalConsistency {
		b.Assume(consistent[finalStep])
	}

	var proven []*netlist.Marker
	for _, m := range live {
		aBits, bBits := m.A(), m.B()
		xorTerm := z.LitNull
		for i := range aBits {
			ca, cb := canon.Canon(aBits[i]), canon.Canon(bBits[i])
			if ca == cb {
				continue
			}
			bit := b.Xor(enc.Var(finalStep, aBits[i]), enc.Var(finalStep, bBits[i]))
			if xorTerm == z.LitNull {
				xorTerm = bit
			} else {
				xorTerm = b.Or(xorTerm, bit)
			}
		}
		if xorTerm == z.LitNull {
			m.Rewrite()
			proven = append(proven, m)
			continue
		}
		if b.Solve(ctx, xorTerm) == solver.Unsatisfiable {
			m.Rewrite()
			proven = append(proven, m)
		}
	}

	w.log.WithFields(logrus.Fields{"module": w.module.Name, "proven": len(proven), "total": len(live)}).
		Info("induction bound exhausted; per-marker fallback complete")

	return Result{
		Proven:          append(trivial, proven...),
		State:           Partial,
		NumCnfVariables: b.NumCnfVariables(),
		NumCnfClauses:   b.NumCnfClauses(),
	}, nil
}
