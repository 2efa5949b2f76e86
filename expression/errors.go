package expression

import "errors"

// Sentinel errors for the expression package.
var (
	// ErrNotTypeChecked indicates Mean or Sample was called before
	// TypeCheck succeeded.
	ErrNotTypeChecked = errors.New("expression: not type-checked")

	// ErrArity indicates a node has the wrong number of arguments for
	// its Kind.
	ErrArity = errors.New("expression: wrong arity")

	// ErrDomain indicates an argument fell outside its required domain
	// (e.g. a negative rate, a probability outside [0,1]).
	ErrDomain = errors.New("expression: argument out of domain")

	// ErrParamCycle indicates a parameter-reference cycle was detected.
	ErrParamCycle = errors.New("expression: parameter reference cycle")

	// ErrUnknownParam indicates a parameter reference did not resolve in
	// the given Env.
	ErrUnknownParam = errors.New("expression: unknown parameter")

	// ErrEmptyHistogram indicates a histogram node has no bins.
	ErrEmptyHistogram = errors.New("expression: histogram has no bins")
)
