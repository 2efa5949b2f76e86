package sop

import (
	"github.com/emirpasic/gods/lists/singlylinkedlist"

	"github.com/rakhimov/scram-sub001/bitset"
)

// Group is a single AND-term (product) within an Expr: a bit set of
// positively asserted basic events, plus — only meaningful once the
// owning Expr is in prime-implicant mode — a bit set of negated basic
// events. In coherent (MCS) mode, Neg always stays zero and every
// comparison that touches it is a no-op.
type Group struct {
	Pos bitset.Set
	Neg bitset.Set
}

// NewGroup returns an empty Group of width n.
func NewGroup(n uint) Group {
	return Group{Pos: bitset.New(n), Neg: bitset.New(n)}
}

// Order is the popcount of g: the number of literals in the AND-term.
func (g Group) Order() uint {
	return g.Pos.PopCount() + g.Neg.PopCount()
}

// union returns a new Group asserting every literal either g or o
// asserts: Pos = g.Pos ∪ o.Pos, Neg = g.Neg ∪ o.Neg. This is the "AND of
// a group and a literal is the bitwise OR of bit arrays" design decision
// of §4.2: combining two AND-terms is itself an OR over their bit arrays.
func (g Group) union(o Group) Group {
	return Group{Pos: g.Pos.Or(o.Pos), Neg: g.Neg.Or(o.Neg)}
}

// contradictory reports whether g asserts some basic event both
// positively and negatively (x AND NOT x), making the term unsatisfiable.
func (g Group) contradictory() bool {
	return g.Pos.And(g.Neg).PopCount() > 0
}

// contains reports whether g is a literal-subset of o: every literal
// (positive or negative) that g asserts, o also asserts. This is the
// dominance test §4.2 specifies in terms of plain bit-set subset for the
// coherent case, generalised to implicant containment for the
// prime-implicant case (Neg participates identically).
func (g Group) contains(o Group) bool {
	return g.Pos.Subset(o.Pos) && g.Neg.Subset(o.Neg)
}

// equal reports bit-identical literal sets.
func (g Group) equal(o Group) bool {
	return g.Pos.Equal(o.Pos) && g.Neg.Equal(o.Neg)
}

// less gives the canonical ordering: increasing order (popcount), ties
// broken by lexical comparison of Pos then Neg.
func (g Group) less(o Group) bool {
	ga, oa := g.Order(), o.Order()
	if ga != oa {
		return ga < oa
	}
	if c := g.Pos.LexCompare(o.Pos); c != 0 {
		return c < 0
	}

	return g.Neg.LexCompare(o.Neg) < 0
}

// Expr is a canonically ordered, absorption-maintained sum-of-products:
// the minimal-cut-set or prime-implicant representation produced by the
// cut-set engines.
//
// Expr is not safe for concurrent mutation; callers that need to share an
// Expr across goroutines must synchronize externally or work on Copy()s.
type Expr struct {
	n     uint
	prime bool
	list  *singlylinkedlist.List
}

// New returns an empty Expr over n basic events. prime selects whether
// groups may carry negated literals (prime-implicant mode) or are
// restricted to positive literals only (minimal-cut-set mode).
func New(n uint, prime bool) *Expr {
	return &Expr{n: n, prime: prime, list: singlylinkedlist.New()}
}

// Width reports the basic-event count n this Expr is defined over.
func (e *Expr) Width() uint { return e.n }

// Prime reports whether e is in prime-implicant mode.
func (e *Expr) Prime() bool { return e.prime }

// Copy returns an independent copy of e; groups are value types so a
// shallow list copy suffices.
func (e *Expr) Copy() *Expr {
	out := New(e.n, e.prime)
	for _, v := range e.list.Values() {
		out.list.Add(v)
	}

	return out
}

// Len returns the number of groups currently in e.
func (e *Expr) Len() int { return e.list.Size() }

// Groups returns a snapshot slice of e's groups in canonical order.
func (e *Expr) Groups() []Group {
	vals := e.list.Values()
	out := make([]Group, len(vals))
	for i, v := range vals {
		out[i] = v.(Group)
	}

	return out
}

// Equal reports whether e and o contain the same groups, ignoring
// ordering — property 3 of the testable-properties list ("same MCS set,
// ignoring ordering").
func (e *Expr) Equal(o *Expr) bool {
	if e.n != o.n || e.Len() != o.Len() {
		return false
	}
	og := o.Groups()
	for _, g := range e.Groups() {
		found := false
		for _, h := range og {
			if g.equal(h) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
