package quant

import (
	"fmt"

	"github.com/rakhimov/scram-sub001/cutset"
	"github.com/rakhimov/scram-sub001/mef"
	"github.com/rakhimov/scram-sub001/sop"
)

// Probabilities evaluates every basic event in ix's indexing at mission
// time t, resolving parameter references against m. A BasicEvent with
// no declared Expression (undeclared probability) contributes 0: it
// never occurs.
// Complexity: O(n).
func Probabilities(m *mef.Model, ix *cutset.Index, t float64) ([]float64, error) {
	out := make([]float64, ix.Len())
	for i := uint(0); i < ix.Len(); i++ {
		name := ix.Name(i)
		be, ok := m.BasicEvents[name]
		if !ok {
			return nil, fmt.Errorf("quant: index names unknown basic event %q", name)
		}
		if be.Expr == nil {
			out[i] = 0

			continue
		}
		v, err := be.Expr.Mean(m, t)
		if err != nil {
			return nil, fmt.Errorf("quant: basic event %q: %w", name, err)
		}
		out[i] = v
	}

	return out, nil
}

// Exact returns the top-event probability via full inclusion-exclusion,
// restricted to groups of order <= maxOrder (0 means unrestricted).
func Exact(e *sop.Expr, probs []float64, maxOrder int) float64 {
	return e.Probability(probs, maxOrder, 0)
}

// RareEvent sums per-cut-set probabilities without correcting for
// overlap; valid only when every cut-set probability is much smaller
// than 1. loose reports whether that precondition looks violated (any
// single cut set's probability exceeds the threshold), in which case the
// returned value is an upper bound rather than an estimate.
func RareEvent(e *sop.Expr, probs []float64) (value float64, loose bool) {
	const looseThreshold = 0.1
	for _, g := range e.Groups() {
		p := sop.GroupProb(g, probs)
		value += p
		if p > looseThreshold {
			loose = true
		}
	}

	return value, loose
}

// MCUB is the minimal-cut-set-upper-bound: 1 - product(1 - P(cutset)).
// nonCoherent reports whether any surviving group carries a negated
// literal, in which case MCUB's coherence assumption does not hold and
// the value is not meaningful.
func MCUB(e *sop.Expr, probs []float64) (value float64, nonCoherent bool) {
	prod := 1.0
	for _, g := range e.Groups() {
		prod *= 1 - sop.GroupProb(g, probs)
		if g.Neg.PopCount() > 0 {
			nonCoherent = true
		}
	}

	return 1 - prod, nonCoherent
}
