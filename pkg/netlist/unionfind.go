package netlist

// Canonicalizer maps every signal bit to a canonical representative: the
// union-find root of its wire-alias group. Constants are always their own
// representative and never merge with a variable's alias group.
//
// Construction is one linear sweep over a module's alias list; Canon is
// near-constant time thanks to path compression.
type Canonicalizer struct {
	parent map[Signal]Signal
	rank   map[Signal]int
}

// NewCanonicalizer builds a Canonicalizer from a module's direct
// wire-to-wire alias pairs.
func NewCanonicalizer(aliases [][2]Signal) *Canonicalizer {
	c := &Canonicalizer{
		parent: make(map[Signal]Signal, len(aliases)*2),
		rank:   make(map[Signal]int, len(aliases)*2),
	}
	for _, pair := range aliases {
		c.union(pair[0], pair[1])
	}
	return c
}

func (c *Canonicalizer) find(s Signal) Signal {
	if s.IsConst() {
		return s
	}
	p, ok := c.parent[s]
	if !ok {
		c.parent[s] = s
		return s
	}
	if p == s {
		return s
	}
	root := c.find(p)
	c.parent[s] = root // path compression
	return root
}

func (c *Canonicalizer) union(a, b Signal) {
	if a.IsConst() || b.IsConst() {
		// A constant is never merged into a variable's alias group: it
		// is always its own representative, per the data model's
		// invariant.
		return
	}
	ra, rb := c.find(a), c.find(b)
	if ra == rb {
		return
	}
	if c.rank[ra] < c.rank[rb] {
		ra, rb = rb, ra
	}
	c.parent[rb] = ra
	if c.rank[ra] == c.rank[rb] {
		c.rank[ra]++
	}
}

// Canon returns the canonical representative of s.
func (c *Canonicalizer) Canon(s Signal) Signal {
	return c.find(s)
}

// SameBit reports whether a and b canonicalize to the same representative.
func (c *Canonicalizer) SameBit(a, b Signal) bool {
	return c.Canon(a) == c.Canon(b)
}
