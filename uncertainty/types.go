package uncertainty

import "github.com/rakhimov/scram-sub001/bitset"

// Mode is one distinct failure-mode bit vector observed across trials:
// the set of basic events that failed in every trial that produced it.
type Mode struct {
	Bits bitset.Set
	// Names is Bits rendered as basic-event names, in index order.
	Names []string
	// Count is the number of trials that produced exactly this bit
	// vector.
	Count int
	// Probability is (Count/N)*PAtLeastOneFailed, the mode's share of
	// the full (unconditioned) trial population.
	Probability float64
	// StdError is the standard error of Probability, derived from the
	// count's sqrt(Count) sampling uncertainty.
	StdError float64
}

// Report is the Monte-Carlo estimate of §4.8: an estimated top-event
// probability, the observed failure modes, and per-basic-event
// importance.
type Report struct {
	Trials int
	// PAtLeastOneFailed is the exact probability that at least one
	// basic event fails, computed once from the sampled probability
	// vector (1 - product(1-p_i)); every trial is drawn conditioned on
	// this event, per §4.8/§9's "fast path".
	PAtLeastOneFailed float64
	// TopProbability is (#failing trials / Trials) * PAtLeastOneFailed.
	TopProbability float64
	Modes          []Mode
	// Importance maps a basic-event name to the sum of Probability over
	// every mode containing it.
	Importance map[string]float64
}
