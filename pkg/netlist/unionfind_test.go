package netlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizerSameBit(t *testing.T) {
	aliases := [][2]Signal{
		{WireBit("a", 0), WireBit("b", 0)},
		{WireBit("b", 0), WireBit("c", 0)},
		{WireBit("x", 0), WireBit("y", 0)},
	}
	canon := NewCanonicalizer(aliases)

	type tc struct {
		Name string
		A, B Signal
		Same bool
	}

	for _, tt := range []tc{
		{Name: "direct alias", A: WireBit("a", 0), B: WireBit("b", 0), Same: true},
		{Name: "transitive alias", A: WireBit("a", 0), B: WireBit("c", 0), Same: true},
		{Name: "unrelated wires", A: WireBit("a", 0), B: WireBit("x", 0), Same: false},
		{Name: "unrelated group", A: WireBit("x", 0), B: WireBit("y", 0), Same: true},
		{Name: "never-seen wire is its own representative", A: WireBit("q", 0), B: WireBit("q", 0), Same: true},
		{Name: "different bit index of same wire", A: WireBit("a", 0), B: WireBit("a", 1), Same: false},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Same, canon.SameBit(tt.A, tt.B))
		})
	}
}

func TestCanonicalizerConstantsNeverMerge(t *testing.T) {
	aliases := [][2]Signal{
		{WireBit("a", 0), ConstSignal(Zero)},
		{ConstSignal(Zero), ConstSignal(One)},
	}
	canon := NewCanonicalizer(aliases)

	assert.False(t, canon.SameBit(WireBit("a", 0), ConstSignal(Zero)),
		"a constant must never absorb a variable's alias group")
	assert.False(t, canon.SameBit(ConstSignal(Zero), ConstSignal(One)),
		"distinct constants must never canonicalize together")
	assert.True(t, canon.SameBit(ConstSignal(Zero), ConstSignal(Zero)))
}

func TestCanonicalizerEmpty(t *testing.T) {
	canon := NewCanonicalizer(nil)
	assert.Equal(t, WireBit("a", 0), canon.Canon(WireBit("a", 0)))
}
