package ccf

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/rakhimov/scram-sub001/expression"
	"github.com/rakhimov/scram-sub001/mef"
)

// maxSubsets bounds the 2^m subset explosion; expandGroup applies it to
// every group kind, beta-factor included. 2^20 is generous for any
// group size a real fault tree would declare.
const maxSubsets = 1 << 20

// Expand runs CCF expansion over every CcfGroup in m, rewriting gate
// formulas in place and removing the expanded groups, then moves m to
// StagePreprocessed. m must be at StageValidated.
func Expand(m *mef.Model) error {
	if m.Stage != mef.StageValidated {
		return fmt.Errorf("%w: got %s", ErrNotValidated, m.Stage)
	}

	names := make([]string, 0, len(m.CcfGroups))
	for name := range m.CcfGroups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := expandGroup(m, m.CcfGroups[name]); err != nil {
			return err
		}
		delete(m.CcfGroups, name)
	}

	m.Stage = mef.StagePreprocessed

	return nil
}

func expandGroup(m *mef.Model, g *mef.CcfGroup) error {
	n := len(g.Members)
	total := 1 << uint(n)
	if n > 20 || total > maxSubsets {
		return fmt.Errorf("%w: %q has %d members", ErrGroupTooLarge, g.Name, n)
	}

	factorByLevel := make(map[int]*expression.Expression, len(g.Factors))
	for _, f := range g.Factors {
		factorByLevel[f.Level] = f.Value
	}

	// memberRefs[i] collects the names of every auxiliary event whose
	// subset includes member i, in generation order.
	memberRefs := make([][]string, n)

	var addErr error
	addSubset := func(mask, k int) {
		if addErr != nil {
			return
		}
		prob := perKindProbability(g, k, n, factorByLevel)
		if err := prob.TypeCheck(m); err != nil {
			addErr = fmt.Errorf("ccf: group %q subset probability: %w", g.Name, err)

			return
		}
		name := subsetName(g.Name, mask, n)
		m.AddSyntheticBasicEvent(name, prob)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				memberRefs[i] = append(memberRefs[i], name)
			}
		}
	}

	if g.Kind == mef.CcfBetaFactor {
		for i := 0; i < n; i++ {
			addSubset(1<<uint(i), 1)
		}
		addSubset(total-1, n)
	} else {
		for mask := 1; mask < total; mask++ {
			addSubset(mask, bits.OnesCount(uint(mask)))
		}
	}
	if addErr != nil {
		return addErr
	}

	memberIndex := make(map[string]int, n)
	for i, name := range g.Members {
		memberIndex[name] = i
	}
	for _, gate := range m.Gates {
		rewriteFormula(gate.F, memberIndex, memberRefs)
	}

	return nil
}

// perKindProbability builds the symbolic per-subset probability
// expression for a subset of size k out of a group of size m, per
// §4.4's per-kind formulas. Keeping the result as an Expression tree
// (rather than a pre-evaluated float) preserves any time-dependence
// in the group's distribution or factor expressions.
func perKindProbability(g *mef.CcfGroup, k, m int, factorByLevel map[int]*expression.Expression) *expression.Expression {
	q := g.Distribution

	switch g.Kind {
	case mef.CcfBetaFactor:
		beta := factorByLevel[2]
		if k == m {
			return expression.Binary(expression.KindMul, beta, q)
		}

		return expression.Binary(expression.KindMul, oneMinus(beta), q)

	case mef.CcfMGL:
		prod := expression.Constant(1)
		for j := 2; j <= k; j++ {
			prod = expression.Binary(expression.KindMul, prod, factorByLevel[j])
		}
		var next *expression.Expression
		if k+1 <= m {
			next = factorByLevel[k+1]
		} else {
			next = expression.Constant(0)
		}
		numerator := mulAll(q, prod, oneMinus(next))
		denom := expression.Constant(float64(nCr(m-1, k-1)))

		return expression.Binary(expression.KindDiv, numerator, denom)

	case mef.CcfAlphaFactor:
		terms := make([]*expression.Expression, 0, m)
		for j := 1; j <= m; j++ {
			terms = append(terms, expression.Binary(expression.KindMul, expression.Constant(float64(j)), factorByLevel[j]))
		}
		numerator := mulAll(expression.Constant(float64(k)), factorByLevel[k], q)
		denom := expression.Binary(expression.KindMul, expression.Constant(float64(nCr(m, k))), addAll(terms...))

		return expression.Binary(expression.KindDiv, numerator, denom)

	case mef.CcfPhiFactor:
		numerator := expression.Binary(expression.KindMul, factorByLevel[k], q)
		denom := expression.Constant(float64(nCr(m-1, k-1)))

		return expression.Binary(expression.KindDiv, numerator, denom)

	default:
		return expression.Constant(0)
	}
}

func oneMinus(e *expression.Expression) *expression.Expression {
	return expression.Binary(expression.KindSub, expression.Constant(1), e)
}

func mulAll(exprs ...*expression.Expression) *expression.Expression {
	acc := exprs[0]
	for _, e := range exprs[1:] {
		acc = expression.Binary(expression.KindMul, acc, e)
	}

	return acc
}

func addAll(exprs ...*expression.Expression) *expression.Expression {
	acc := exprs[0]
	for _, e := range exprs[1:] {
		acc = expression.Binary(expression.KindAdd, acc, e)
	}

	return acc
}

// subsetName builds a deterministic auxiliary event name from a
// group's name and the 1-indexed member positions set in mask.
func subsetName(groupName string, mask, m int) string {
	var sb strings.Builder
	sb.WriteString(groupName)
	sb.WriteString(".S")
	first := true
	for i := 0; i < m; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		if !first {
			sb.WriteString("_")
		}
		fmt.Fprintf(&sb, "%d", i+1)
		first = false
	}

	return sb.String()
}

// rewriteFormula replaces every Literal referencing an original CCF
// member with a reference to the single auxiliary event standing in
// for it, or an inlined OR over every auxiliary event containing it
// when more than one applies, recursing into nested sub-formulas.
func rewriteFormula(f *mef.Formula, memberIndex map[string]int, memberRefs [][]string) {
	for i := range f.Args {
		lit := &f.Args[i]
		if lit.Nested != nil {
			rewriteFormula(lit.Nested, memberIndex, memberRefs)

			continue
		}
		if lit.Event == nil || lit.Event.Kind != mef.EventBasic {
			continue
		}
		idx, ok := memberIndex[lit.Event.Name]
		if !ok {
			continue
		}
		refs := memberRefs[idx]
		if len(refs) == 1 {
			lit.Event = &mef.Ref{Kind: mef.EventBasic, Name: refs[0]}

			continue
		}
		args := make([]mef.Literal, len(refs))
		for j, r := range refs {
			args[j] = mef.Literal{Event: &mef.Ref{Kind: mef.EventBasic, Name: r}}
		}
		lit.Event = nil
		lit.Nested = &mef.Formula{Connective: mef.ConnOr, Args: args}
	}
}

// nCr returns the binomial coefficient C(n,k), 0 if k is out of range.
func nCr(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}

	return result
}
