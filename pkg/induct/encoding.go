package induct

import (
	"fmt"

	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/open-silicon/equiv-induct/pkg/induct/encode"
	"github.com/open-silicon/equiv-induct/pkg/induct/solver"
	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

// stepKey is the composite key of the CNF encoding's variable map: a
// canonical bit at a particular time step.
type stepKey struct {
	bit  netlist.Signal
	step int
}

// encoding is the per-worker-run CNF encoding state of spec §3: a mapping
// (canonical bit, step) -> solver variable, plus bookkeeping to catch a
// step being encoded twice. It implements encode.StepLookup.
type encoding struct {
	canon      *netlist.Canonicalizer
	b          *solver.Adapter
	vars       map[stepKey]z.Lit
	encoded    map[int]bool
	consistent map[int]bool
}

func newEncoding(canon *netlist.Canonicalizer, b *solver.Adapter) *encoding {
	return &encoding{
		canon:      canon,
		b:          b,
		vars:       make(map[stepKey]z.Lit),
		encoded:    make(map[int]bool),
		consistent: make(map[int]bool),
	}
}

var _ encode.StepLookup = (*encoding)(nil)

// Var resolves bit's canonical representative at step to a solver
// literal, allocating one on first use. Constant bits resolve to the
// adapter's permanent true/false literals; X/Z bits are treated as
// ordinary free variables, collapsing four-valued logic to boolean for
// the purposes of this two-valued SAT encoding.
func (e *encoding) Var(step int, bit netlist.Signal) z.Lit {
	cb := e.canon.Canon(bit)
	key := stepKey{cb, step}
	if lit, ok := e.vars[key]; ok {
		return lit
	}
	var lit z.Lit
	if cb.IsConst() {
		switch cb.Const {
		case netlist.One:
			lit = e.b.True()
		case netlist.Zero:
			lit = e.b.False()
		default:
			lit = e.b.Lit()
		}
	} else {
		lit = e.b.Lit()
	}
	e.vars[key] = lit
	return lit
}

// Bind records that bit's canonical representative at step is lit,
// computed by an encoder rather than lazily allocated. Binding the same
// (bit, step) to two different literals is an internal consistency
// violation: module-given cell order is supposed to guarantee every
// output is bound before it is first read as an input.
func (e *encoding) Bind(step int, bit netlist.Signal, lit z.Lit) {
	cb := e.canon.Canon(bit)
	key := stepKey{cb, step}
	if existing, ok := e.vars[key]; ok && existing != lit {
		panic(internalConsistencyViolation{
			msg: fmt.Sprintf("bit %s rebound at step %d", cb, step),
		})
	}
	e.vars[key] = lit
}

// encodeStep runs the encoder over every selected cell at step, exactly
// once. Encoding the same step twice is an internal consistency
// violation (spec §8's "encoding then re-encoding step i ... must be
// detected as a bug").
func (e *encoding) encodeStep(cells []*netlist.Cell, step int, warned map[netlist.CellType]bool, log logrus.FieldLogger) {
	if e.encoded[step] {
		panic(internalConsistencyViolation{
			msg: fmt.Sprintf("step %d encoded twice", step),
		})
	}
	e.encoded[step] = true
	for _, cell := range cells {
		if _, ok := encode.Encode(e.b, e, cell, step); !ok {
			if !warned[cell.Type] {
				warned[cell.Type] = true
				log.WithField("cellType", cell.Type).Warn("unmodellable cell type; its outputs are left as free variables")
			}
		}
	}
}

// iffKey identifies one canonical bit pair's equivalence literal at a
// step, so that two markers sharing the same pair never cause the same
// IFF clause to be added twice.
type iffKey struct {
	a, b netlist.Signal
	step int
}

// assertConsistentOnce records that consistent[step] is being defined,
// panicking with an internalConsistencyViolation if it was already
// defined — the §3 invariant that "for each step i present in the
// encoding, consistent[i] is defined exactly once and never redefined",
// mirrored after encodeStep's identical guard for double-encoding a step.
func (e *encoding) assertConsistentOnce(step int) {
	if e.consistent[step] {
		panic(internalConsistencyViolation{
			msg: fmt.Sprintf("consistent[%d] defined twice", step),
		})
	}
	e.consistent[step] = true
}

// consistencyTerm returns the conjunction, over every bit pair of every
// marker in markers where A and B are not already canonically equal, of
// A_bit[step] ↔ B_bit[step] — i.e. consistent[step] from spec §3/§4.2.
// Vacuously true if no marker contributes a term at this step.
func (e *encoding) consistencyTerm(markers []*netlist.Marker, step int, dedup map[iffKey]z.Lit) z.Lit {
	e.assertConsistentOnce(step)
	term := z.LitNull
	for _, m := range markers {
		a, b := m.A(), m.B()
		for i := range a {
			ca, cb := e.canon.Canon(a[i]), e.canon.Canon(b[i])
			if ca == cb {
				continue
			}
			key := iffKey{a: ca, b: cb, step: step}
			if ca.String() > cb.String() {
				key = iffKey{a: cb, b: ca, step: step}
			}
			iff, ok := dedup[key]
			if !ok {
				iff = e.b.Iff(e.Var(step, a[i]), e.Var(step, b[i]))
				dedup[key] = iff
			}
			if term == z.LitNull {
				term = iff
			} else {
				term = e.b.And(term, iff)
			}
		}
	}
	if term == z.LitNull {
		term = e.b.True()
	}
	return term
}
