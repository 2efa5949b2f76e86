// Package cutset computes minimal cut sets (coherent trees) or, for
// non-coherent trees containing a pushed-down negation, implicants of a
// gate in an Analysable mef.Model, as an sop.Expr. The non-coherent
// result is the absorbed product terms of the normalised formula;
// consensus terms are not generated, so it need not list every prime
// implicant (for (A∧B)∨(¬A∧C) it holds two groups and omits B∧C).
//
// What:
//
//   - Index: the stable basic-event-name <-> bit-position mapping every
//     sop.Group/bitset.Set in an analysis shares; built once per model
//     and reused by package quant and package uncertainty.
//   - Algebraic: the recursive bottom-up method of §4.5 — normalises
//     the gate's formula (De Morgan push-down, XOR/atleast/cardinality
//     expansion, transfer-in/conditional handling) into an AND/OR/
//     literal tree, then folds sop.Expr.AndExpr/OrExpr over it.
//   - Combinatorial: the per-order enumeration method of §4.6 — for
//     each order r up to the limit, evaluates the gate tree under
//     every r-combination of basic events via mef.Model.EvalGate and
//     appends surviving groups to the accumulating SOP.
//   - Both satisfy the Engine interface so property tests can assert
//     they agree (§8 property 3).
//
// Why:
//
//   - Two-phase normalise-then-fold (rather than threading a negation
//     flag through every connective case) keeps De Morgan push-down in
//     one generic tree transform instead of duplicated per-connective
//     logic, matching the design notes' instruction to replace
//     connective-specific special cases with a single tagged-variant
//     dispatch wherever the algebra allows it.
//
// Complexity:
//
//   - Algebraic: exponential in the worst case absent order
//     truncation; in practice bounded by the SOP's own absorption and
//     the caller's MaxOrder, as order-truncation discards any growing
//     group early. No cross-subtree memoisation is attempted — a
//     gate referenced from multiple places is re-normalised at each
//     reference, acceptable for the tree sizes this engine targets
//     (see DESIGN.md for the explicit tradeoff).
//   - Combinatorial: O(C(n,K)) gate evaluations for n basic events and
//     order limit K.
//
// Errors:
//
//   - ErrUnsupportedXorArity, ErrDanglingTransferOut (transfer-out node
//     or missing transfer-in target), mef.ErrUnsupportedNode (TRANSOUT),
//     ErrCancelled (context cancellation mid-computation).
package cutset
