package induct

import (
	"context"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/open-silicon/equiv-induct/pkg/netlist"
)

func andCell(name string, a, b, y netlist.Signal) *netlist.Cell {
	return &netlist.Cell{
		Name: name,
		Type: netlist.AndCell,
		Ports: map[string][]netlist.Signal{
			"A": {a},
			"B": {b},
			"Y": {y},
		},
	}
}

func markerCell(name string, a, b, y netlist.Signal) *netlist.Cell {
	return &netlist.Cell{
		Name: name,
		Type: netlist.MarkerCell,
		Ports: map[string][]netlist.Signal{
			"A": {a},
			"B": {b},
			"Y": {y},
		},
	}
}

func constCell(name string, v netlist.BitValue, y netlist.Signal) *netlist.Cell {
	return &netlist.Cell{
		Name: name,
		Type: netlist.Unknown, // stands in for a constant-drive cell the encoder has no model for
		Ports: map[string][]netlist.Signal{
			"Y": {y},
		},
	}
}

func TestWorkerCombinationalIdentityProvesImmediately(t *testing.T) {
	m := netlist.NewModule("comb")
	aSig, bSig := netlist.WireBit("a", 0), netlist.WireBit("b", 0)
	y1, y2 := netlist.WireBit("y1", 0), netlist.WireBit("y2", 0)
	// y1 = a AND b, y2 = b AND a: different cells, equal function.
	m.AddCell(andCell("g0", aSig, bSig, y1))
	m.AddCell(andCell("g1", bSig, aSig, y2))
	mc := markerCell("eq_chk0", y1, y2, netlist.WireBit("chk", 0))
	m.AddCell(mc)

	marker, ok := netlist.AsMarker(mc)
	assert.True(t, ok)

	log, _ := logtest.NewNullLogger()
	w := NewWorker(m, m.SelectedCells(netlist.SelectAll{}), []*netlist.Marker{&marker}, 4, log)
	res, err := w.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, AllProven, res.State)
	assert.Len(t, res.Proven, 1)
	assert.True(t, marker.Proven(netlist.NewCanonicalizer(m.Aliases())))
}

func TestWorkerInherentlyDivergentConstants(t *testing.T) {
	m := netlist.NewModule("const_mismatch")
	zero := netlist.ConstSignal(netlist.Zero)
	one := netlist.ConstSignal(netlist.One)
	mc := markerCell("eq_chk0", zero, one, netlist.WireBit("chk", 0))
	m.AddCell(mc)

	marker, ok := netlist.AsMarker(mc)
	assert.True(t, ok)

	log, _ := logtest.NewNullLogger()
	w := NewWorker(m, m.SelectedCells(netlist.SelectAll{}), []*netlist.Marker{&marker}, 4, log)
	res, err := w.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, Diverged, res.State)
	assert.Empty(t, res.Proven)
}

func TestWorkerDivergedStillReportsTrivialMarkersAsProven(t *testing.T) {
	m := netlist.NewModule("const_mismatch_mixed")
	aSig, bSig := netlist.WireBit("a", 0), netlist.WireBit("b", 0)
	m.AddAlias(aSig, bSig)
	trivialMarker := markerCell("eq_chk0", aSig, bSig, netlist.WireBit("chk0", 0))
	m.AddCell(trivialMarker)

	zero := netlist.ConstSignal(netlist.Zero)
	one := netlist.ConstSignal(netlist.One)
	divergentMarker := markerCell("eq_chk1", zero, one, netlist.WireBit("chk1", 0))
	m.AddCell(divergentMarker)

	trivial, ok := netlist.AsMarker(trivialMarker)
	assert.True(t, ok)
	divergent, ok := netlist.AsMarker(divergentMarker)
	assert.True(t, ok)

	log, _ := logtest.NewNullLogger()
	w := NewWorker(m, m.SelectedCells(netlist.SelectAll{}), []*netlist.Marker{&trivial, &divergent}, 4, log)
	res, err := w.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, Diverged, res.State)
	assert.Len(t, res.Proven, 1, "the trivially-aliased marker was already rewritten before the solver ran and must still be counted")
	assert.Equal(t, "eq_chk0", res.Proven[0].Cell.Name)
}

func TestWorkerFallbackProvesSolvableMarkerOnly(t *testing.T) {
	m := netlist.NewModule("mixed")
	aSig, bSig := netlist.WireBit("a", 0), netlist.WireBit("b", 0)
	y1, y2 := netlist.WireBit("y1", 0), netlist.WireBit("y2", 0)
	m.AddCell(andCell("g0", aSig, bSig, y1))
	m.AddCell(andCell("g1", bSig, aSig, y2))
	solvableMarker := markerCell("eq_chk0", y1, y2, netlist.WireBit("chk0", 0))
	m.AddCell(solvableMarker)

	unknownY := netlist.WireBit("u0_y", 0)
	m.AddCell(constCell("u0", netlist.Zero, unknownY))
	unsolvableMarker := markerCell("eq_chk1", unknownY, netlist.ConstSignal(netlist.Zero), netlist.WireBit("chk1", 0))
	m.AddCell(unsolvableMarker)

	solvable, ok := netlist.AsMarker(solvableMarker)
	assert.True(t, ok)
	unsolvable, ok := netlist.AsMarker(unsolvableMarker)
	assert.True(t, ok)

	log, _ := logtest.NewNullLogger()
	w := NewWorker(m, m.SelectedCells(netlist.SelectAll{}), []*netlist.Marker{&solvable, &unsolvable}, 1, log)
	res, err := w.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, Partial, res.State)
	assert.Len(t, res.Proven, 1)
	assert.Equal(t, "eq_chk0", res.Proven[0].Cell.Name)

	canon := netlist.NewCanonicalizer(m.Aliases())
	assert.True(t, solvable.Proven(canon))
	assert.False(t, unsolvable.Proven(canon), "a marker depending on an unmodellable cell's free output must not be rewritten")
}

func TestWorkerAlreadyAliasedMarkerSkipsSolverEntirely(t *testing.T) {
	m := netlist.NewModule("trivial")
	aSig, bSig := netlist.WireBit("a", 0), netlist.WireBit("b", 0)
	m.AddAlias(aSig, bSig)
	mc := markerCell("eq_chk0", aSig, bSig, netlist.WireBit("chk", 0))
	m.AddCell(mc)

	marker, ok := netlist.AsMarker(mc)
	assert.True(t, ok)

	log, _ := logtest.NewNullLogger()
	w := NewWorker(m, m.SelectedCells(netlist.SelectAll{}), []*netlist.Marker{&marker}, 4, log)
	res, err := w.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, AllProven, res.State)
	assert.Len(t, res.Proven, 1)
	assert.Equal(t, 0, res.NumCnfVariables, "an already-proven workset must never touch the solver")
}

func TestWorkerZeroWidthMarkerIsVacuouslyProven(t *testing.T) {
	m := netlist.NewModule("zero_width")
	mc := &netlist.Cell{
		Name:  "eq_chk0",
		Type:  netlist.MarkerCell,
		Ports: map[string][]netlist.Signal{"A": nil, "B": nil, "Y": nil},
	}
	m.AddCell(mc)
	marker, ok := netlist.AsMarker(mc)
	assert.True(t, ok)

	log, _ := logtest.NewNullLogger()
	w := NewWorker(m, m.SelectedCells(netlist.SelectAll{}), []*netlist.Marker{&marker}, 4, log)
	res, err := w.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, AllProven, res.State)
	assert.Len(t, res.Proven, 1)
}

func TestWorkerSequentialStateHoldingEquivalence(t *testing.T) {
	m := netlist.NewModule("seq")
	d := netlist.WireBit("d", 0)
	qA, qB := netlist.WireBit("qa", 0), netlist.WireBit("qb", 0)
	m.AddCell(&netlist.Cell{
		Name:  "dffA",
		Type:  netlist.DffCell,
		Ports: map[string][]netlist.Signal{"D": {d}, "Q": {qA}},
	})
	m.AddCell(&netlist.Cell{
		Name:  "dffB",
		Type:  netlist.DffCell,
		Ports: map[string][]netlist.Signal{"D": {d}, "Q": {qB}},
	})
	mc := markerCell("eq_chk0", qA, qB, netlist.WireBit("chk", 0))
	m.AddCell(mc)
	marker, ok := netlist.AsMarker(mc)
	assert.True(t, ok)

	log, _ := logtest.NewNullLogger()
	w := NewWorker(m, m.SelectedCells(netlist.SelectAll{}), []*netlist.Marker{&marker}, 4, log)
	res, err := w.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, AllProven, res.State, "two flip-flops fed the same D must agree on every future cycle under the inductive hypothesis")
	assert.Len(t, res.Proven, 1)
}

