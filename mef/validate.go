package mef

import (
	"fmt"

	"github.com/rakhimov/scram-sub001/expression"
)

// Validate runs the structural checks of §4.3/§4.9 and moves the model
// from Parsed to Validated: acyclic gate-reference graph, acyclic
// parameter-reference graph, formula arity/duplicate-argument rules,
// and CCF factor-list/kind match. It does not require every BasicEvent
// to carry a probability Expression — that completeness check is the
// caller's responsibility once it knows which analyses it will run
// (ErrMissingProbability is exported for that purpose).
func (m *Model) Validate() error {
	if m.Stage != StageParsed {
		return fmt.Errorf("%w: Validate requires Parsed, got %s", ErrStageOrder, m.Stage)
	}

	if err := m.buildGateDAG(); err != nil {
		return err
	}
	if err := m.buildParamDAG(); err != nil {
		return err
	}
	for name, g := range m.Gates {
		if err := validateFormula(name, g.F); err != nil {
			return err
		}
	}
	for name, c := range m.CcfGroups {
		if err := validateCcfFactors(name, c); err != nil {
			return err
		}
	}
	if err := m.typeCheckExpressions(); err != nil {
		return err
	}

	m.Stage = StageValidated

	return nil
}

// typeCheckExpressions runs expression.TypeCheck over every Expression
// the model owns (BasicEvent/Parameter Exprs, CcfGroup Distribution and
// Factor values), using m itself as the expression.Env so ParamRef
// nodes resolve against the model's own parameter table.
func (m *Model) typeCheckExpressions() error {
	for name, be := range m.BasicEvents {
		if be.Expr == nil {
			continue
		}
		if err := be.Expr.TypeCheck(m); err != nil {
			return fmt.Errorf("%w: basic event %q: %v", ErrExpressionInvalid, name, err)
		}
	}
	for name, p := range m.Parameters {
		if p.Expr == nil {
			continue
		}
		if err := p.Expr.TypeCheck(m); err != nil {
			return fmt.Errorf("%w: parameter %q: %v", ErrExpressionInvalid, name, err)
		}
	}
	for name, c := range m.CcfGroups {
		if c.Distribution != nil {
			if err := c.Distribution.TypeCheck(m); err != nil {
				return fmt.Errorf("%w: ccf group %q distribution: %v", ErrExpressionInvalid, name, err)
			}
		}
		for _, f := range c.Factors {
			if f.Value == nil {
				continue
			}
			if err := f.Value.TypeCheck(m); err != nil {
				return fmt.Errorf("%w: ccf group %q factor level %d: %v", ErrExpressionInvalid, name, f.Level, err)
			}
		}
	}

	return nil
}

func (m *Model) buildGateDAG() error {
	for name := range m.Gates {
		if err := m.gateDAG.AddVertexByID(name, name); err != nil {
			return fmt.Errorf("%w: gate %q: %v", ErrDuplicateName, name, err)
		}
	}
	for name, g := range m.Gates {
		refs, err := gateRefs(g.F)
		if err != nil {
			return err
		}
		seen := make(map[string]bool, len(refs))
		for _, ref := range refs {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			if _, ok := m.Gates[ref]; !ok {
				return fmt.Errorf("%w: gate %q references unknown gate %q", ErrUnknownReference, name, ref)
			}
			if err := m.gateDAG.AddEdge(name, ref); err != nil {
				return fmt.Errorf("%w: gate %q -> %q: %v", ErrCycle, name, ref, err)
			}
		}
	}

	return nil
}

// gateRefs collects every gate name directly or transitively (through
// inlined Nested formulas) referenced by f, plus any TransferIn target.
func gateRefs(f *Formula) ([]string, error) {
	if f.Connective == ConnTransout {
		return nil, fmt.Errorf("%w: TRANSOUT node", ErrUnsupportedNode)
	}
	var refs []string
	if f.Connective == ConnTransferIn && f.Transfer != "" {
		refs = append(refs, f.Transfer)
	}
	for _, lit := range f.Args {
		if lit.Nested != nil {
			nested, err := gateRefs(lit.Nested)
			if err != nil {
				return nil, err
			}
			refs = append(refs, nested...)

			continue
		}
		if lit.Event != nil && lit.Event.Kind == EventGate {
			refs = append(refs, lit.Event.Name)
		}
	}

	return refs, nil
}

func (m *Model) buildParamDAG() error {
	for name := range m.Parameters {
		if err := m.paramDAG.AddVertexByID(name, name); err != nil {
			return fmt.Errorf("%w: parameter %q: %v", ErrDuplicateName, name, err)
		}
	}
	for name, p := range m.Parameters {
		if p.Expr == nil {
			continue
		}
		refs := paramRefs(p.Expr, nil)
		seen := make(map[string]bool, len(refs))
		for _, ref := range refs {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			if _, ok := m.Parameters[ref]; !ok {
				return fmt.Errorf("%w: parameter %q references unknown parameter %q", ErrUnknownReference, name, ref)
			}
			if err := m.paramDAG.AddEdge(name, ref); err != nil {
				return fmt.Errorf("%w: parameter %q -> %q: %v", ErrCycle, name, ref, err)
			}
		}
	}

	return nil
}

func paramRefs(e *expression.Expression, acc []string) []string {
	if e == nil {
		return acc
	}
	if e.Kind == expression.KindParamRef {
		acc = append(acc, e.Param)
	}
	for _, a := range e.Args {
		acc = paramRefs(a, acc)
	}

	return acc
}

// validateFormula checks arity and duplicate-argument rules for a
// single Formula, recursing into inlined Nested sub-formulas.
func validateFormula(gateName string, f *Formula) error {
	n := len(f.Args)
	switch f.Connective {
	case ConnAnd, ConnOr, ConnXor, ConnNand, ConnNor:
		if n < 2 {
			return fmt.Errorf("%w: gate %q: connective needs >=2 args, got %d", ErrFormulaArity, gateName, n)
		}
	case ConnNot, ConnNull, ConnConditionalAnalyzed, ConnConditionalNotAnalyzed:
		if n != 1 {
			return fmt.Errorf("%w: gate %q: connective needs exactly 1 arg, got %d", ErrFormulaArity, gateName, n)
		}
	case ConnImply, ConnIff:
		if n != 2 {
			return fmt.Errorf("%w: gate %q: connective needs exactly 2 args, got %d", ErrFormulaArity, gateName, n)
		}
	case ConnAtleast:
		if f.K < 1 || f.K > n {
			return fmt.Errorf("%w: gate %q: atleast K=%d out of range for %d args", ErrFormulaArity, gateName, f.K, n)
		}
	case ConnCardinality:
		if f.Min < 0 || f.Min > f.Max || f.Max > n {
			return fmt.Errorf("%w: gate %q: cardinality [%d,%d] out of range for %d args", ErrFormulaArity, gateName, f.Min, f.Max, n)
		}
	case ConnConstant, ConnTransferIn, ConnTransferOut:
		if n != 0 {
			return fmt.Errorf("%w: gate %q: connective takes no args, got %d", ErrFormulaArity, gateName, n)
		}
	case ConnTransout:
		return fmt.Errorf("%w: gate %q: TRANSOUT node", ErrUnsupportedNode, gateName)
	}

	seen := make(map[string]bool, n)
	for _, lit := range f.Args {
		if lit.Nested != nil {
			if err := validateFormula(gateName, lit.Nested); err != nil {
				return err
			}

			continue
		}
		if lit.Event == nil {
			continue
		}
		key := fmt.Sprintf("%d:%s:%t", lit.Event.Kind, lit.Event.Name, lit.Complement)
		if seen[key] {
			return fmt.Errorf("%w: gate %q: literal %q repeated", ErrDuplicateArgument, gateName, lit.Event.Name)
		}
		seen[key] = true
	}

	return nil
}

// validateCcfFactors checks a CcfGroup's factor list matches the shape
// its Kind requires: beta-factor takes exactly one level-2 factor, MGL
// one factor per level from 2 up to len(Members), alpha/phi one factor
// per level from 1 up to len(Members).
func validateCcfFactors(name string, c *CcfGroup) error {
	m := len(c.Members)
	if m < 2 {
		return fmt.Errorf("%w: ccf group %q needs >=2 members, got %d", ErrCcfFactors, name, m)
	}

	switch c.Kind {
	case CcfBetaFactor:
		if len(c.Factors) != 1 || c.Factors[0].Level != 2 {
			return fmt.Errorf("%w: ccf group %q (beta-factor) needs exactly one level-2 factor", ErrCcfFactors, name)
		}
	case CcfMGL:
		if err := checkFactorLevels(name, c.Factors, 2, m); err != nil {
			return err
		}
	case CcfAlphaFactor, CcfPhiFactor:
		if err := checkFactorLevels(name, c.Factors, 1, m); err != nil {
			return err
		}
	}

	return nil
}

// checkFactorLevels verifies c's factor list carries exactly one entry
// per level in [lo,m], with no gaps or duplicates.
func checkFactorLevels(name string, factors []CcfFactor, lo, m int) error {
	want := m - lo + 1
	if len(factors) != want {
		return fmt.Errorf("%w: ccf group %q needs %d factors (levels %d..%d), got %d", ErrCcfFactors, name, want, lo, m, len(factors))
	}
	levels := make(map[int]bool, want)
	for _, f := range factors {
		if f.Level < lo || f.Level > m {
			return fmt.Errorf("%w: ccf group %q: factor level %d out of range [%d,%d]", ErrCcfFactors, name, f.Level, lo, m)
		}
		if levels[f.Level] {
			return fmt.Errorf("%w: ccf group %q: duplicate factor level %d", ErrCcfFactors, name, f.Level)
		}
		levels[f.Level] = true
	}

	return nil
}
