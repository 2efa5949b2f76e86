package sop

// OrGroup inserts g into e, enforcing absorption, and reports whether g
// was added:
//
//  1. Walk e's groups in order. For each existing group p:
//     - if g ⊆ p then remove p (g dominates it);
//     - else if p ⊆ g then leave e unchanged and report "not added".
//  2. Otherwise insert g at its canonical sorted position and report
//     "added".
//
// Complexity: O(len(e)) subset tests, each O(n/64).
func (e *Expr) OrGroup(g Group) (added bool) {
	i := 0
	for i < e.list.Size() {
		pv, _ := e.list.Get(i)
		p := pv.(Group)
		switch {
		case g.contains(p):
			// g dominates the existing group p: remove p, keep scanning
			// from the same index (the list shifted left).
			e.list.Remove(i)

			continue
		case p.contains(g):
			// g is absorbed by an existing, more general group.
			return false
		}
		i++
	}

	// Insert g at its canonical sorted position.
	pos := e.list.Size()
	for idx := 0; idx < e.list.Size(); idx++ {
		pv, _ := e.list.Get(idx)
		if g.less(pv.(Group)) {
			pos = idx

			break
		}
	}
	if pos == e.list.Size() {
		e.list.Add(g)
	} else {
		e.list.Insert(pos, g)
	}

	return true
}

// OrExpr returns a new Expr equal to e ∪ o: a copy of e with every group
// of o folded in via OrGroup.
// Complexity: O(len(o) * len(result)).
func (e *Expr) OrExpr(o *Expr) *Expr {
	if e.n != o.n {
		panic(ErrWidthMismatch)
	}
	out := e.Copy()
	for _, g := range o.Groups() {
		out.OrGroup(g)
	}

	return out
}

// AndExpr returns a new Expr whose groups are g1 ∪ g2 for every pair
// (g1 ∈ e, g2 ∈ o), discarding any combination whose order exceeds limit
// (when limit > 0) or that is self-contradictory (prime-implicant mode
// only), and folding survivors in via OrGroup so the result stays
// canonical and absorption-minimal.
// Complexity: O(len(e) * len(o)) pair formations.
func (e *Expr) AndExpr(o *Expr, limit int) *Expr {
	if e.n != o.n {
		panic(ErrWidthMismatch)
	}
	prime := e.prime || o.prime
	out := New(e.n, prime)
	for _, g1 := range e.Groups() {
		for _, g2 := range o.Groups() {
			g := g1.union(g2)
			if g.contradictory() {
				continue
			}
			if limit > 0 && int(g.Order()) > limit {
				continue
			}
			out.OrGroup(g)
		}
	}

	return out
}

// Count returns the total number of groups in e.
// Complexity: O(1).
func (e *Expr) Count() int { return e.list.Size() }

// CountOrder returns the number of groups in e whose order is ≤ k.
// Complexity: O(len(e)).
func (e *Expr) CountOrder(k int) int {
	n := 0
	for _, g := range e.Groups() {
		if int(g.Order()) <= k {
			n++
		}
	}

	return n
}

// Eval reports whether the OR-of-ANDs expression e is satisfied by the
// given basic-event assignment (bit i of assignment true means basic
// event i occurred). Used by the property tests that check an Expr
// against the top-gate truth table it was derived from.
// Complexity: O(len(e) * n/64).
func (e *Expr) Eval(assignment []bool) bool {
	for _, g := range e.Groups() {
		ok := true
		for i := uint(0); i < e.n; i++ {
			if g.Pos.Get(i) == 1 && !assignment[i] {
				ok = false

				break
			}
			if g.Neg.Get(i) == 1 && assignment[i] {
				ok = false

				break
			}
		}
		if ok {
			return true
		}
	}

	return false
}
