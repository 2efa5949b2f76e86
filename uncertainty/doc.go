// Package uncertainty implements the Monte-Carlo estimator of §4.8: N
// trials, each biased toward sampling at least one failing event so
// that all-healthy trials (overwhelmingly common for rare top events)
// are never wasted.
//
// What:
//
//   - Run(ctx, model, ix, gateName, rng, trials, t): resets the per-basic-
//     event probability vector from each expression's Sample(t), then
//     for each trial bias-samples the "first" failing event from the
//     cumulative distribution, independently samples every event with
//     a higher index, evaluates the gate, and records the failure-mode
//     bit vector in a counting map keyed by bit-identity.
//   - Report: converts the trial counts into an estimated top
//     probability, per-mode frequency with √count uncertainty, and
//     per-event importance (sum of contributions from modes containing
//     the event).
//   - Compress: optionally absorbs superset failure modes into subset
//     modes using the same containment rule sop.Expr's absorption uses,
//     for a smaller, still-correct report.
//
// Why:
//
//   - The "bias-sample the first failing event, then independently
//     sample the rest" trick is preserved verbatim from §9's design
//     note: it is what makes Monte-Carlo tractable for rare top events,
//     since a trial that would otherwise be all-healthy (and
//     contribute nothing) is instead forced to have at least one
//     candidate failure before the remaining events are sampled
//     independently. The "first" event is drawn weighted by
//     p_i * product(1-p_j, j<i), not by p_i alone: that weight is
//     exactly the probability that i is the lowest-index event to fail
//     given every lower-index event survives, which is what keeps the
//     whole scheme an unbiased estimator of the unconditioned
//     probability rather than an approximation valid only for small p.
//   - Mode keys are fixed-width '0'/'1' strings built from each trial's
//     failed-event vector, so bit-identical vectors give equal keys;
//     each Mode also carries the vector as a bitset.Set, the same
//     fixed-width representation the cut-set engines use.
//
// Complexity:
//
//   - O(N*n) for N trials over n basic events, plus one gate evaluation
//     per trial.
//
// Errors:
//
//   - Sampling/evaluation failures from expression.Expression.Sample or
//     mef.Model.EvalGate surface unchanged.
package uncertainty
