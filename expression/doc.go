// Package expression implements the numeric/Boolean expression tree used
// by Parameter, BasicEvent, and CcfGroup values: constants, parameter
// references (resolved through the caller's Env, cycle-checked by
// TypeCheck itself),
// arithmetic, comparisons, logical operators, reliability functions
// (exponential, Weibull, GLM, periodic-test), and probability
// distributions (uniform, normal, log-normal, gamma, beta, histogram).
//
// What:
//
//   - Expression: a tagged-variant tree node (see Kind) supporting a
//     deterministic Mean(t) evaluation and a repeatable Sample(rng, t)
//     Monte-Carlo draw.
//   - Env: the scope an expression's parameter references resolve
//     against — implemented by package mef.
//
// Why:
//
//   - A single tagged-variant type dispatching on Kind (design note: deep
//     inheritance of Event/Gate/Expression replaced by a tag + functions)
//     keeps Mean and Sample as two structurally identical recursive
//     walks over the same tree, rather than a virtual-dispatch hierarchy.
//
// Key Types:
//
//   - Kind, Expression, Env, HistogramBin
//
// State machine (§4.9): Untyped → TypeChecked → {Evaluated | Sampled}.
// TypeCheck must run (successfully) before Mean or Sample; Sample
// additionally requires a non-nil *rand.Rand, or it panics — "Sampled
// requires a bound PRNG" is a programming-error precondition, not a
// recoverable runtime condition.
//
// Complexity:
//
//   - TypeCheck/Mean/Sample: O(size of the expression tree).
//
// Errors:
//
//   - ErrNotTypeChecked, ErrArity, ErrDomain, ErrParamCycle, ErrUnknownParam.
package expression
