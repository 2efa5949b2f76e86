// Package ccf implements the common-cause-failure expansion pass: it
// rewrites each CcfGroup in a validated mef.Model into auxiliary basic
// events plus a Boolean rewriting of every formula argument that
// referenced an original group member, so the cut-set engines and
// quantification packages never need to know CCF groups existed.
//
// What:
//
//   - Expand(model): for every CcfGroup, builds one auxiliary
//     BasicEvent per relevant non-empty subset of members (its
//     probability expression built symbolically from the group's
//     distribution and factor expressions, per the group's model
//     kind), rewrites every Literal referencing an original member into
//     an inlined OR over the auxiliary events containing that member,
//     then drops the group and moves the model to StagePreprocessed.
//
// Why:
//
//   - Keeping the per-subset probability as a constructed Expression
//     tree (rather than evaluating it once to a float) preserves
//     time-dependence: a group distribution like an Exponential(λ, t)
//     still yields a time-varying auxiliary-event probability after
//     expansion, matching how the rest of the engine treats every
//     other BasicEvent.
//
// Key Types:
//
//   - none exported beyond Expand; ccf has no state of its own, it only
//     transforms a mef.Model.
//
// Complexity:
//
//   - O(2^m) per CcfGroup of size m for alpha-factor/MGL/phi-factor
//     (every non-empty subset gets its own auxiliary event); O(m) for
//     beta-factor (singletons plus the single full-group subset).
//
// Errors:
//
//   - ErrNotValidated rejects a model not at StageValidated;
//     ErrGroupTooLarge guards the 2^m subset explosion; every other
//     error surfaces from mef (ErrCcfFactors was already checked by
//     mef.Validate, so Expand assumes it holds).
package ccf
