// Package induct implements the induction worker (C4) and driver (C5) of
// the temporal-induction equivalence prover: per module, it builds
// successive time-step CNF encodings, runs base/inductive-step SAT
// queries, falls back to per-marker single-step proofs when the bound is
// exhausted, and commits successful proofs by rewriting markers.
package induct

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

// Driver iterates over modules, builds each one's workset of unproven
// markers, runs a Worker over it, and aggregates statistics. Modeled on
// the teacher's OperatorStepResolver: a thin struct holding a logger that
// constructs a fresh worker type per unit of work, generalized here from
// "resolve one namespace's operators" to "induct one module's markers."
type Driver struct {
	log logrus.FieldLogger
}

// NewDriver returns a Driver that logs through log.
func NewDriver(log logrus.FieldLogger) *Driver {
	return &Driver{log: log}
}

// Run attempts to prove every unproven equivalence marker in modules, up
// to bound steps, restricting to cells and markers sel includes. It
// always returns a Stats value summarizing the run; the returned error is
// reserved for an internal consistency violation; per-module proof
// failure is logged and absorbed, never surfaced as an error, per the
// propagation policy of spec §7.
func (d *Driver) Run(ctx context.Context, modules []*netlist.Module, sel netlist.Selection, bound int, opts ...Option) (Stats, error) {
	var stats Stats
	for _, m := range modules {
		stats.ModulesConsidered++

		// The workset filter is syntactic, not canonical: a marker only
		// wire-aliased to its partner still belongs in W per spec §4.4's
		// edge case ("still belongs to W; it is trivially proven and
		// must be rewritten") — Worker's own trivial/live split (using
		// canonical equality) is what turns that into a rewrite without
		// touching the solver.
		var workset []*netlist.Marker
		for _, mk := range m.Markers(sel) {
			if !mk.SyntacticallyProven() {
				workset = append(workset, mk)
			}
		}
		if len(workset) == 0 {
			stats.ModulesSkipped++
			d.log.WithField("module", m.Name).Info("no unproven equivalence markers found")
			continue
		}

		cells := m.SelectedCells(sel)
		log := d.log.WithField("module", m.Name)
		w := NewWorker(m, cells, workset, bound, log, opts...)
		res, err := w.Run(ctx)
		if err != nil {
			return stats, fmt.Errorf("module %s: %w", m.Name, err)
		}

		stats.TotalProven += len(res.Proven)
		stats.NumCnfVariables += res.NumCnfVariables
		stats.NumCnfClauses += res.NumCnfClauses
		log.WithFields(logrus.Fields{
			"state":  res.State,
			"proven": len(res.Proven),
			"total":  len(workset),
		}).Info("induction run complete")
	}
	return stats, nil
}
