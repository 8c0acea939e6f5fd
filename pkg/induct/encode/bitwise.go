package encode

import (
	"github.com/go-air/gini/z"

	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

func init() {
	register(netlist.AndCell, encodeBinary(Builder.And))
	register(netlist.OrCell, encodeBinary(Builder.Or))
	register(netlist.XorCell, encodeBinary(Builder.Xor))
	register(netlist.NotCell, encodeNot)
	register(netlist.MuxCell, encodeMux)
	register(netlist.ReduceCell, encodeReduce)
	register(netlist.EqCell, encodeEq)
}

// encodeBinary builds a per-bit binary-gate encoder (AND/OR/XOR) from a
// Builder method, since all three share the same "A op B -> Y" shape.
func encodeBinary(op func(Builder, z.Lit, z.Lit) z.Lit) Encoder {
	return func(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
		as := varsOf(vars, step, cell.Ports["A"])
		bs := varsOf(vars, step, cell.Ports["B"])
		out := make([]z.Lit, len(as))
		for i := range as {
			out[i] = op(b, as[i], bs[i])
		}
		bindOutputs(vars, cell, step, "Y", out)
		return out, true
	}
}

func encodeNot(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	as := varsOf(vars, step, cell.Ports["A"])
	out := make([]z.Lit, len(as))
	for i := range as {
		out[i] = b.Not(as[i])
	}
	bindOutputs(vars, cell, step, "Y", out)
	return out, true
}

// encodeMux computes Y = S ? A : B per bit.
func encodeMux(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	as := varsOf(vars, step, cell.Ports["A"])
	bs := varsOf(vars, step, cell.Ports["B"])
	ss := varsOf(vars, step, cell.Ports["S"])
	s := ss[0]
	out := make([]z.Lit, len(as))
	for i := range as {
		out[i] = b.Or(b.And(s, as[i]), b.And(b.Not(s), bs[i]))
	}
	bindOutputs(vars, cell, step, "Y", out)
	return out, true
}

// encodeReduce folds a single input vector with AND/OR/XOR into one
// output bit, per Params.ReduceOp.
func encodeReduce(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	as := varsOf(vars, step, cell.Ports["A"])
	if len(as) == 0 {
		return nil, false
	}
	var op func(z.Lit, z.Lit) z.Lit
	switch cell.Params.ReduceOp {
	case netlist.ReduceAnd:
		op = b.And
	case netlist.ReduceOr:
		op = b.Or
	case netlist.ReduceXor:
		op = b.Xor
	default:
		return nil, false
	}
	acc := as[0]
	for _, lit := range as[1:] {
		acc = op(acc, lit)
	}
	out := []z.Lit{acc}
	bindOutputs(vars, cell, step, "Y", out)
	return out, true
}

// encodeEq emits a single output bit asserting bitwise equality of A and
// B: an XNOR per bit, AND-reduced.
func encodeEq(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	as := varsOf(vars, step, cell.Ports["A"])
	bs := varsOf(vars, step, cell.Ports["B"])
	if len(as) == 0 {
		return nil, false
	}
	acc := b.Iff(as[0], bs[0])
	for i := 1; i < len(as); i++ {
		acc = b.And(acc, b.Iff(as[i], bs[i]))
	}
	out := []z.Lit{acc}
	bindOutputs(vars, cell, step, "Y", out)
	return out, true
}
