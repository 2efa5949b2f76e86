package quant

import (
	"github.com/rakhimov/scram-sub001/cutset"
	"github.com/rakhimov/scram-sub001/mef"
	"github.com/rakhimov/scram-sub001/sop"
)

// Curve recomputes Exact at each of steps evenly spaced time points
// from 0 to missionTime inclusive (steps+1 points total), rebinding the
// mission-time expression between runs per §4.7/§4.9. e is assumed
// already computed once (cut sets do not change with time, only the
// basic-event probabilities feeding them do).
func Curve(m *mef.Model, ix *cutset.Index, e *sop.Expr, missionTime float64, steps int, maxOrder int) ([]CurvePoint, error) {
	if steps < 1 {
		steps = 1
	}
	out := make([]CurvePoint, 0, steps+1)
	step := missionTime / float64(steps)
	for i := 0; i <= steps; i++ {
		t := step * float64(i)
		probs, err := Probabilities(m, ix, t)
		if err != nil {
			return nil, err
		}
		out = append(out, CurvePoint{Time: t, Probability: Exact(e, probs, maxOrder)})
	}

	return out, nil
}
