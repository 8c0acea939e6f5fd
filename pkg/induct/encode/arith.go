package encode

import (
	"github.com/go-air/gini/z"

	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

func init() {
	register(netlist.AddCell, encodeAdd)
	register(netlist.SubCell, encodeSub)
	register(netlist.CmpCell, encodeCmp)
	register(netlist.ShiftCell, encodeShift)
	register(netlist.MulCell, encodeMul)
}

// extendTo sign- or zero-extends a port's bits to width, depending on
// Params.Signed.
func extendTo(b Builder, vars StepLookup, step int, port []netlist.Signal, width int, signed bool) []z.Lit {
	lits := varsOf(vars, step, port)
	if len(lits) >= width {
		return lits[:width]
	}
	out := make([]z.Lit, width)
	copy(out, lits)
	fill := b.False()
	if signed && len(lits) > 0 {
		fill = lits[len(lits)-1]
	}
	for i := len(lits); i < width; i++ {
		out[i] = fill
	}
	return out
}

// rippleAdd adds xs and ys (same width) plus an initial carry-in,
// returning the sum bits and final carry-out. Standard full-adder logic
// per bit: sum = a⊕b⊕cin, cout = (a∧b)∨(cin∧(a⊕b)).
func rippleAdd(b Builder, xs, ys []z.Lit, cin z.Lit) (sum []z.Lit, cout z.Lit) {
	n := len(xs)
	sum = make([]z.Lit, n)
	carry := cin
	for i := 0; i < n; i++ {
		x, y := xs[i], ys[i]
		axorb := b.Xor(x, y)
		sum[i] = b.Xor(axorb, carry)
		carry = b.Or(b.And(x, y), b.And(axorb, carry))
	}
	return sum, carry
}

func outputWidth(cell *netlist.Cell) int {
	if w := cell.Params.Width; w > 0 {
		return w
	}
	return len(cell.Ports["Y"])
}

func encodeAdd(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	w := outputWidth(cell)
	xs := extendTo(b, vars, step, cell.Ports["A"], w, cell.Params.Signed)
	ys := extendTo(b, vars, step, cell.Ports["B"], w, cell.Params.Signed)
	sum, _ := rippleAdd(b, xs, ys, b.False())
	bindOutputs(vars, cell, step, "Y", sum)
	return sum, true
}

func encodeSub(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	w := outputWidth(cell)
	diff, _ := subtract(b, vars, step, cell.Ports["A"], cell.Ports["B"], w, cell.Params.Signed)
	bindOutputs(vars, cell, step, "Y", diff)
	return diff, true
}

// subtract computes xs - ys via two's-complement addition (xs + ~ys + 1)
// at width w, returning the difference bits and the adder's final
// carry-out (1 iff no unsigned borrow occurred).
func subtract(b Builder, vars StepLookup, step int, aPort, bPort []netlist.Signal, w int, signed bool) (diff []z.Lit, carryOut z.Lit) {
	xs := extendTo(b, vars, step, aPort, w, signed)
	ys := extendTo(b, vars, step, bPort, w, signed)
	notYs := make([]z.Lit, w)
	for i, y := range ys {
		notYs[i] = b.Not(y)
	}
	return rippleAdd(b, xs, notYs, b.True())
}

// encodeCmp computes the requested relation by deriving equality (an
// XNOR-AND reduction) and a signedness-aware less-than bit from a
// subtractor, then combining them per Params.Op.
func encodeCmp(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	a, bb := cell.Ports["A"], cell.Ports["B"]
	w := len(a)
	if len(bb) > w {
		w = len(bb)
	}
	xs := extendTo(b, vars, step, a, w, cell.Params.Signed)
	ys := extendTo(b, vars, step, bb, w, cell.Params.Signed)

	eq := b.Iff(xs[0], ys[0])
	for i := 1; i < w; i++ {
		eq = b.And(eq, b.Iff(xs[i], ys[i]))
	}

	diff, carryOut := subtract(b, vars, step, a, bb, w, cell.Params.Signed)
	signDiff := diff[w-1]

	var lt z.Lit
	if cell.Params.Signed {
		signA, signB := xs[w-1], ys[w-1]
		overflow := b.And(b.Xor(signA, signB), b.Xor(signA, signDiff))
		lt = b.Xor(signDiff, overflow)
	} else {
		lt = b.Not(carryOut) // unsigned: a < b iff the adder borrowed
	}

	var out z.Lit
	switch cell.Params.Op {
	case netlist.Lt:
		out = lt
	case netlist.Le:
		out = b.Or(lt, eq)
	case netlist.Eq:
		out = eq
	case netlist.Ne:
		out = b.Not(eq)
	case netlist.Ge:
		out = b.Not(lt)
	case netlist.Gt:
		out = b.And(b.Not(lt), b.Not(eq))
	default:
		return nil, false
	}
	lits := []z.Lit{out}
	bindOutputs(vars, cell, step, "Y", lits)
	return lits, true
}

// encodeShift shifts A by the parameter-encoded (not signal-encoded)
// amount Params.ShiftAmt. Right shifts of a signed operand are
// arithmetic (sign-filled); all other shifts are logical (zero-filled).
func encodeShift(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	a := cell.Ports["A"]
	w := outputWidth(cell)
	xs := extendTo(b, vars, step, a, w, cell.Params.Signed)
	k := cell.Params.ShiftAmt
	out := make([]z.Lit, w)
	fill := b.False()
	if cell.Params.Signed && !cell.Params.ShiftLeft && w > 0 {
		fill = xs[w-1]
	}
	for i := 0; i < w; i++ {
		var src int
		if cell.Params.ShiftLeft {
			src = i - k
		} else {
			src = i + k
		}
		if src < 0 || src >= w {
			out[i] = fill
		} else {
			out[i] = xs[src]
		}
	}
	bindOutputs(vars, cell, step, "Y", out)
	return out, true
}

// encodeMul computes A*B by shift-and-add over B's bits: each set bit of
// B contributes A, shifted into position, to a running sum.
func encodeMul(b Builder, vars StepLookup, cell *netlist.Cell, step int) ([]z.Lit, bool) {
	w := outputWidth(cell)
	xs := extendTo(b, vars, step, cell.Ports["A"], w, cell.Params.Signed)
	ys := extendTo(b, vars, step, cell.Ports["B"], w, cell.Params.Signed)

	acc := make([]z.Lit, w)
	for i := range acc {
		acc[i] = b.False()
	}
	for j := 0; j < w; j++ {
		partial := make([]z.Lit, w)
		for i := range partial {
			if i < j {
				partial[i] = b.False()
			} else {
				partial[i] = b.And(xs[i-j], ys[j])
			}
		}
		acc, _ = rippleAdd(b, acc, partial, b.False())
	}
	bindOutputs(vars, cell, step, "Y", acc)
	return acc, true
}
