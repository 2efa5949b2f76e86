// Package mef holds the in-memory Open-PSA Model Exchange Format (MEF)
// model: the typed, validated DAG of Gate/Formula, BasicEvent,
// HouseEvent, Parameter, CcfGroup, and FaultTree/Component containers
// that the rest of the engine analyses. Package mef does not parse XML —
// it is the target data structure a parser (out of scope) would build,
// and the validation pipeline the rest of the engine relies on having
// already run.
//
// What:
//
//   - Model: the arena that owns every element by value/index, plus the
//     two reference graphs (gate formulas, parameter expressions) used
//     for cycle detection.
//   - Container (FaultTree / Component): a public/private namespace of
//     child elements, nestable, with reference resolution that walks
//     outward through public members only.
//   - Validate: the two-pass construct/define pipeline plus the
//     structural checks of the design (acyclic gate graph, acyclic
//     parameter graph, formula arity/type rules, CCF factor-list/kind
//     match). It does not check that every basic event carries a
//     probability expression; quant.Probabilities treats a missing one
//     as probability 0.
//
// Why:
//
//   - A single owning arena with stable string keys (instead of a web of
//     non-owning pointers) replaces the "cyclic pointer graph" design
//     note's anti-pattern; github.com/heimdalr/dag gives cycle detection
//     for free on top of that arena instead of a
//     hand-rolled DFS colouring pass run twice.
//
// Key Types:
//
//   - Model, Container, Gate, Formula, BasicEvent, HouseEvent, Parameter,
//     CcfGroup, Stage, Role, Connective.
//
// State machine (§4.9): Unparsed → Parsed → Validated → Preprocessed →
// Analysable. Every transition is one-way and is driven by a specific
// method: NewModel starts at Unparsed, the first successful Add* call
// moves to Parsed, Validate() moves Parsed→Validated, and
// package ccf's Expand stamps the model Preprocessed.
// analysis.Run requires Analysable (reached via Model.MarkAnalysable,
// called once CCF expansion has run); the cutset, quant and uncertainty
// entry points do not check Stage themselves.
//
// Complexity:
//
//   - Validate: O(V+E) for the two DAG cycle checks, O(total formula
//     arguments) for arity/type rules, O(total CCF factors) for the
//     factor-list checks.
//
// Errors:
//
//   - ErrDuplicateName, ErrUnknownReference, ErrCycle, ErrFormulaArity,
//     ErrCcfFactors, ErrMissingProbability, ErrUnsupportedNode,
//     ErrNotAnalysable, ErrScopeViolation.
package mef
