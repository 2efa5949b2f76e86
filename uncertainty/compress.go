package uncertainty

import (
	"math"
	"sort"
)

// Compress absorbs superset failure modes into subset modes, the same
// rule sop.Expr's absorption uses: if mode B's failed-event set is a
// subset of mode A's, A is redundant (whatever caused B to fail already
// causes A to fail too), so A's trial count is folded into B's.
//
// Complexity: O(len(report.Modes)^2).
func Compress(report *Report) *Report {
	modes := append([]Mode(nil), report.Modes...)
	sort.Slice(modes, func(i, j int) bool {
		oi, oj := modes[i].Bits.PopCount(), modes[j].Bits.PopCount()
		if oi != oj {
			return oi < oj
		}

		return modes[i].Bits.LexCompare(modes[j].Bits) < 0
	})

	var kept []Mode
	for _, m := range modes {
		absorbedBy := -1
		for i, k := range kept {
			if k.Bits.Subset(m.Bits) {
				absorbedBy = i

				break
			}
		}
		if absorbedBy >= 0 {
			k := kept[absorbedBy]
			k.Count += m.Count
			k.Probability += m.Probability
			k.StdError = math.Sqrt(k.StdError*k.StdError + m.StdError*m.StdError)
			kept[absorbedBy] = k

			continue
		}
		kept = append(kept, m)
	}

	importance := make(map[string]float64, len(report.Importance))
	for _, m := range kept {
		for _, name := range m.Names {
			importance[name] += m.Probability
		}
	}

	return &Report{
		Trials:            report.Trials,
		PAtLeastOneFailed: report.PAtLeastOneFailed,
		TopProbability:    report.TopProbability,
		Modes:             kept,
		Importance:        importance,
	}
}
