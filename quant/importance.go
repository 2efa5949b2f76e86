package quant

import (
	"github.com/rakhimov/scram-sub001/cutset"
	"github.com/rakhimov/scram-sub001/sop"
)

// Importances computes the five standard measures of §4.7 for every
// basic event referenced (positively or negatively) by a group of e, at
// the probability vector probs (already evaluated at the mission time
// of interest) and the already-computed exact top probability topProb.
// Complexity: O(n) basic events, each costing one or two
// sop.Expr.Probability recomputations over e.
func Importances(e *sop.Expr, probs []float64, ix *cutset.Index, topProb float64) map[string]Importance {
	referenced := make([]bool, e.Width())
	for _, g := range e.Groups() {
		for i := uint(0); i < e.Width(); i++ {
			if g.Pos.Get(i) == 1 || g.Neg.Get(i) == 1 {
				referenced[i] = true
			}
		}
	}

	out := make(map[string]Importance, len(referenced))
	for i := uint(0); i < e.Width(); i++ {
		if !referenced[i] {
			continue
		}
		out[ix.Name(i)] = eventImportance(e, probs, i, topProb)
	}

	return out
}

func eventImportance(e *sop.Expr, probs []float64, i uint, topProb float64) Importance {
	pi := probs[i]

	pinned := func(v float64) float64 {
		tmp := make([]float64, len(probs))
		copy(tmp, probs)
		tmp[i] = v

		return e.Probability(tmp, 0, 0)
	}

	pTrue := pinned(1)
	pFalse := pinned(0)

	birnbaum := pTrue - pFalse
	criticality := 0.0
	if topProb > 0 {
		criticality = birnbaum * pi / topProb
	}

	raw := 0.0
	if topProb > 0 {
		raw = pTrue / topProb
	}
	rrw := 0.0
	if topProb > 0 {
		rrw = pFalse / topProb
	}

	return Importance{
		FussellVesely: fussellVesely(e, probs, i, topProb),
		Birnbaum:      birnbaum,
		Criticality:   criticality,
		RAW:           raw,
		RRW:           rrw,
	}
}

// fussellVesely is the exact union probability of every group
// positively containing basic event i, divided by topProb: not a naive
// linear sum of cut-set probabilities, which would double-count
// overlapping cut sets.
func fussellVesely(e *sop.Expr, probs []float64, i uint, topProb float64) float64 {
	if topProb == 0 {
		return 0
	}
	sub := sop.New(e.Width(), e.Prime())
	for _, g := range e.Groups() {
		if g.Pos.Get(i) == 1 {
			sub.OrGroup(g)
		}
	}

	return sub.Probability(probs, 0, 0) / topProb
}
