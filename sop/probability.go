package sop

// GroupProb returns the probability of a single group (cut set): the
// product of the probabilities of its positively asserted basic events
// times the product of (1-p) for its negated basic events (prime-
// implicant mode only — Neg is always empty in coherent/MCS mode). A
// group that asserts some basic event both positively and negatively is
// unsatisfiable (probability 0) — this arises in inclusion-exclusion's
// union-of-groups step, where two prime implicants sharing no direct
// contradiction individually can still contradict once merged.
// probs must be indexed by basic-event index, length e's width.
// Complexity: O(n).
func GroupProb(g Group, probs []float64) float64 {
	if g.contradictory() {
		return 0
	}

	prod := 1.0
	n := g.Pos.Width()
	for i := uint(0); i < n; i++ {
		if g.Pos.Get(i) == 1 {
			prod *= probs[i]
		}
		if g.Neg.Get(i) == 1 {
			prod *= 1 - probs[i]
		}
	}

	return prod
}

// CutsetProbs returns the per-group probability for every group in e, in
// the same order as Groups().
// Complexity: O(len(e) * n).
func (e *Expr) CutsetProbs(probs []float64) []float64 {
	groups := e.Groups()
	out := make([]float64, len(groups))
	for i, g := range groups {
		out[i] = GroupProb(g, probs)
	}

	return out
}

// ProbabilityBounds is the per-truncation-level trace the report must be
// able to show: the running inclusion-exclusion sum after each term
// count, tagged with whether that partial sum is a lower or upper bound
// (odd term counts overshoot, even term counts undershoot the exact
// value — this alternation is what makes truncated inclusion-exclusion
// useful as a bracket rather than a single estimate).
type ProbabilityBounds struct {
	// PartialSums[k-1] is the cumulative sum after k terms (k=1..len).
	PartialSums []float64
	// UpperBound is true for PartialSums at odd k, false at even k.
	UpperBound []bool
}

// Probability computes the top-event probability from e via inclusion-
// exclusion truncated to nTerms term levels (nTerms == 0 means "all
// levels"), restricted to groups of order ≤ maxOrder (maxOrder == 0 means
// "no restriction"). Odd term levels contribute +, even contribute -.
//
// Complexity: O(2^m) in the worst case over the m order-filtered groups;
// callers are expected to keep m and nTerms small (this mirrors the
// combinatorial blow-up the spec's truncation is meant to bound).
func (e *Expr) Probability(probs []float64, maxOrder int, nTerms int) float64 {
	bounds := e.probabilityBounds(probs, maxOrder, nTerms)
	if len(bounds.PartialSums) == 0 {
		return 0
	}

	return bounds.PartialSums[len(bounds.PartialSums)-1]
}

// ProbabilityWithBounds is Probability plus the full per-level bracket
// trace, for reporting.
func (e *Expr) ProbabilityWithBounds(probs []float64, maxOrder int, nTerms int) ProbabilityBounds {
	return e.probabilityBounds(probs, maxOrder, nTerms)
}

func (e *Expr) probabilityBounds(probs []float64, maxOrder int, nTerms int) ProbabilityBounds {
	var filtered []Group
	for _, g := range e.Groups() {
		if maxOrder > 0 && int(g.Order()) > maxOrder {
			continue
		}
		filtered = append(filtered, g)
	}
	m := len(filtered)
	levels := m
	if nTerms > 0 && nTerms < levels {
		levels = nTerms
	}

	var out ProbabilityBounds
	running := 0.0
	combo := make([]int, 0, levels)
	for k := 1; k <= levels; k++ {
		sign := 1.0
		if k%2 == 0 {
			sign = -1.0
		}
		sum := sumCombinations(filtered, probs, combo, 0, k)
		running += sign * sum
		out.PartialSums = append(out.PartialSums, running)
		out.UpperBound = append(out.UpperBound, k%2 == 1)
	}

	return out
}

// sumCombinations recursively sums GroupProb over the union of every
// size-k combination of groups, starting the search at index start.
func sumCombinations(groups []Group, probs []float64, combo []int, start, k int) float64 {
	if len(combo) == k {
		merged := groups[combo[0]]
		for _, idx := range combo[1:] {
			merged = merged.union(groups[idx])
		}

		return GroupProb(merged, probs)
	}

	total := 0.0
	for i := start; i <= len(groups)-(k-len(combo)); i++ {
		total += sumCombinations(groups, probs, append(combo, i), i+1, k)
	}

	return total
}
