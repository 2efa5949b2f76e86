// Package sop implements the normalised sum-of-products (SOP) Boolean
// expression layer: an ordered list of groups (AND-terms over basic
// events) with absorption, the algebraic primitives the cut-set engines
// fold over (or_group, or_expr, and_expr), counting, probability via
// truncated inclusion-exclusion, per-group probability, and the legacy
// .mcs serialisation format.
//
// What:
//
//   - Group: one AND-term, a positive bit-set of asserted basic events
//     plus (only in prime-implicant mode) a negative bit-set of negated
//     basic events.
//   - Expr: a canonically ordered, absorption-maintained list of Groups —
//     the minimal cut set / prime implicant representation the cut-set
//     engines produce and quant/uncertainty consume.
//
// Why:
//
//   - Absorption (no group is a proper superset/implicant of another) is
//     what keeps a cut-set list minimal; keeping it canonical after every
//     insertion means equality of two SOPs reduces to structural
//     comparison, and and_expr's output is deterministic.
//
// Key Types:
//
//   - Group, Expr
//
// Complexity:
//
//   - OrGroup:  O(len(E)) bit-set comparisons, each O(n/64).
//   - OrExpr:   O(len(E1)*len(E2)) in the worst case.
//   - AndExpr:  O(len(E1)*len(E2)) pair formations, each O(n/64) and
//     O(len(result)) absorption.
//   - Probability: O(2^min(m,n_terms)) over the m order-filtered groups;
//     bounded by n_terms and max_order precisely to keep this tractable.
//
// Errors:
//
//   - ErrWidthMismatch, ErrPrimeUnsupportedSerialise, ErrMalformedLine.
package sop
