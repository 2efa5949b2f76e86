package quant

import (
	"fmt"

	"github.com/rakhimov/scram-sub001/cutset"
	"github.com/rakhimov/scram-sub001/sop"
)

// Quantify runs exact, rare-event and MCUB probability plus every
// basic-event importance measure against e and probs in one pass,
// assembling the warnings §7 says belong in the report rather than in
// an error return.
func Quantify(e *sop.Expr, probs []float64, ix *cutset.Index, maxOrder int) Result {
	exact := Exact(e, probs, maxOrder)
	rare, loose := RareEvent(e, probs)
	mcub, nonCoherent := MCUB(e, probs)

	var warnings []string
	if nonCoherent {
		warnings = append(warnings, "MCUB computed over a non-coherent expression: the coherence assumption does not hold")
	}
	if loose {
		warnings = append(warnings, "rare-event approximation used outside its validity range: some cut set's probability is not negligible")
	}

	return Result{
		Exact:          exact,
		RareEvent:      rare,
		MCUB:           mcub,
		NonCoherent:    nonCoherent,
		RareEventLoose: loose,
		Importance:     Importances(e, probs, ix, exact),
		Warnings:       warnings,
	}
}

// String renders the key figures of r for diagnostics/logging.
func (r Result) String() string {
	return fmt.Sprintf("exact=%.6g rare=%.6g mcub=%.6g non-coherent=%t", r.Exact, r.RareEvent, r.MCUB, r.NonCoherent)
}
