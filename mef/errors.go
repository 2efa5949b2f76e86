package mef

import "errors"

// Sentinel errors for the mef package. Validate and the Container
// methods wrap them with fmt.Errorf and %w, adding the offending
// element's name; this package does not build *internal/diag.Error
// values.
var (
	// ErrDuplicateName indicates two elements of the same kind share a
	// name within the same scope.
	ErrDuplicateName = errors.New("mef: duplicate name in scope")

	// ErrUnknownReference indicates a formula or expression referenced a
	// name that does not resolve in the current scope.
	ErrUnknownReference = errors.New("mef: unknown reference")

	// ErrCycle indicates a cycle was detected in the gate or parameter
	// reference graph.
	ErrCycle = errors.New("mef: reference cycle")

	// ErrFormulaArity indicates a Formula's argument count violates its
	// connective's arity rule.
	ErrFormulaArity = errors.New("mef: formula arity violation")

	// ErrDuplicateArgument indicates a Formula lists the same literal
	// argument twice.
	ErrDuplicateArgument = errors.New("mef: duplicate formula argument")

	// ErrCcfFactors indicates a CcfGroup's factor list does not match
	// the requirements of its model kind.
	ErrCcfFactors = errors.New("mef: ccf factor list invalid for model kind")

	// ErrMissingProbability indicates a BasicEvent referenced by a
	// probability analysis has no Expression.
	ErrMissingProbability = errors.New("mef: basic event missing probability expression")

	// ErrExpressionInvalid indicates an owned Expression (BasicEvent,
	// Parameter, or CcfGroup distribution/factor) failed
	// expression.TypeCheck.
	ErrExpressionInvalid = errors.New("mef: expression failed type check")

	// ErrUnsupportedNode indicates a formula node type the core does not
	// support was encountered — notably the legacy TRANSOUT node (open
	// question in the design notes), which is treated as fatal rather
	// than silently ignored.
	ErrUnsupportedNode = errors.New("mef: unsupported node type")

	// ErrNotAnalysable indicates an analysis entry point was called on a
	// Model that has not reached the Analysable stage.
	ErrNotAnalysable = errors.New("mef: model is not analysable")

	// ErrScopeViolation indicates a child's role would widen its
	// container's role, or a reference reached into a private member of
	// a non-owning container.
	ErrScopeViolation = errors.New("mef: scope violation")

	// ErrStageOrder indicates a lifecycle method was called out of
	// order (e.g. Validate called twice, or called before any element
	// was added).
	ErrStageOrder = errors.New("mef: invalid lifecycle transition")
)
