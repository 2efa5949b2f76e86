package expression

import "fmt"

// TypeCheck validates arity and statically-checkable domain constraints
// recursively over e, resolving parameter references against env and
// detecting parameter-reference cycles along the way. On success, e (and
// every node it contains) is marked type-checked and Mean/Sample become
// callable.
// Complexity: O(size of e), plus O(size of each referenced parameter)
// the first time it is reached along this path.
func (e *Expression) TypeCheck(env Env) error {
	return e.typeCheck(env, map[string]bool{})
}

func (e *Expression) typeCheck(env Env, visiting map[string]bool) error {
	switch e.Kind {
	case KindConstant, KindMissionTime:
		// no args
	case KindParamRef:
		if visiting[e.Param] {
			return fmt.Errorf("%w: %s", ErrParamCycle, e.Param)
		}
		target, err := env.Param(e.Param)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownParam, e.Param)
		}
		visiting[e.Param] = true
		if err := target.typeCheck(env, visiting); err != nil {
			return err
		}
		delete(visiting, e.Param)
	case KindAdd, KindSub, KindMul, KindDiv, KindLT, KindLE, KindGT, KindGE, KindEQ, KindNE, KindAnd, KindOr:
		if err := requireArity(e, 2); err != nil {
			return err
		}
	case KindNeg, KindNot:
		if err := requireArity(e, 1); err != nil {
			return err
		}
	case KindExponential:
		if err := requireArity(e, 2); err != nil { // lambda, t
			return err
		}
	case KindWeibull:
		if err := requireArity(e, 3); err != nil { // scale, shape, t
			return err
		}
	case KindGLM:
		if err := requireArity(e, 4); err != nil { // gamma, lambda, mu, t
			return err
		}
	case KindPeriodicTest:
		if len(e.Args) < 3 { // lambda, tau, theta[, ...]
			return fmt.Errorf("%w: periodic-test requires at least 3 arguments, got %d", ErrArity, len(e.Args))
		}
	case KindUniform:
		if err := requireArity(e, 2); err != nil {
			return err
		}
	case KindNormal:
		if err := requireArity(e, 2); err != nil {
			return err
		}
	case KindLogNormal:
		if err := requireArity(e, 2); err != nil {
			return err
		}
	case KindGamma:
		if err := requireArity(e, 2); err != nil {
			return err
		}
	case KindBeta:
		if err := requireArity(e, 2); err != nil {
			return err
		}
	case KindHistogram:
		if len(e.Bins) == 0 {
			return ErrEmptyHistogram
		}
	default:
		return fmt.Errorf("%w: unknown expression kind %d", ErrArity, e.Kind)
	}

	for _, a := range e.Args {
		if err := a.typeCheck(env, visiting); err != nil {
			return err
		}
	}

	e.typeChecked = true

	return nil
}

func requireArity(e *Expression, n int) error {
	if len(e.Args) != n {
		return fmt.Errorf("%w: kind %d requires %d arguments, got %d", ErrArity, e.Kind, n, len(e.Args))
	}

	return nil
}
