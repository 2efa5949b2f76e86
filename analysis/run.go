package analysis

import (
	"github.com/rakhimov/scram-sub001/ccf"
	"github.com/rakhimov/scram-sub001/cutset"
	"github.com/rakhimov/scram-sub001/mef"
	"github.com/rakhimov/scram-sub001/quant"
	"github.com/rakhimov/scram-sub001/uncertainty"
)

// Run executes the full pipeline of §2's data-flow paragraph against
// gateName: CCF expansion (if the model is only Validated so far),
// cut-set computation via engine, quantification, an optional
// probability-over-time curve, and an optional Monte-Carlo uncertainty
// pass, each gated by s.
//
// c.Model must be at mef.StageValidated, mef.StagePreprocessed or
// mef.StageAnalysable already (i.e. mef.Model.Validate must already
// have run); anything earlier is ErrNotAnalysable. Cancellation is
// polled by engine.Compute and uncertainty.Run at their own documented
// checkpoints via c.Done(); quantification itself is not a
// cancellation checkpoint (it is a closed-form pass over an already-
// computed sop.Expr, not an open-ended search).
func Run(c *Context, engine cutset.Engine, s Settings, gateName string) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch c.Model.Stage {
	case mef.StageValidated:
		if err := ccf.Expand(c.Model); err != nil {
			return nil, err
		}

		fallthrough
	case mef.StagePreprocessed:
		if err := c.Model.MarkAnalysable(); err != nil {
			return nil, err
		}
	case mef.StageAnalysable:
		// already analysable, e.g. a second Run against the same model.
	default:
		return nil, ErrNotAnalysable
	}

	ix := cutset.NewIndex(c.Model)

	opts := cutset.Options{
		MaxOrder: s.LimitOrder,
		Prime:    s.PrimeImplicants,
		Progress: c.Progress,
	}
	expr, err := engine.Compute(c.Done(), c.Model, ix, gateName, opts)
	if err != nil {
		return nil, err
	}

	probs, err := quant.Probabilities(c.Model, ix, s.MissionTime)
	if err != nil {
		return nil, err
	}

	quantified := quant.Quantify(expr, probs, ix, s.LimitOrder)
	band := quant.BandOf(s.SILMode, quantified.Exact)

	res := &Result{
		GateName: gateName,
		Quant:    quantified,
		Band:     band,
		Warnings: quantified.Warnings,
	}

	if c.Logger != nil {
		for _, w := range quantified.Warnings {
			c.Logger.Warn().Str("gate", gateName).Msg(w)
		}
	}

	if s.TimeStep > 0 {
		steps := int(s.MissionTime / s.TimeStep)
		if steps < 1 {
			steps = 1
		}
		curve, err := quant.Curve(c.Model, ix, expr, s.MissionTime, steps, s.LimitOrder)
		if err != nil {
			return nil, err
		}
		res.Curve = curve
	}

	if s.NumTrials > 0 {
		report, err := uncertainty.Run(c.Done(), c.Model, ix, gateName, c.RNG, s.NumTrials, s.MissionTime)
		if err != nil {
			return nil, err
		}
		if m := c.Metrics(); m != nil {
			m.MonteCarloTrialsRun.Add(float64(s.NumTrials))
		}
		res.Uncertainty = report
	}

	return res, nil
}
