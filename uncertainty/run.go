package uncertainty

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/rakhimov/scram-sub001/cutset"
	"github.com/rakhimov/scram-sub001/mef"
)

// Run performs an N-trial Monte-Carlo estimate of gateName's top-event
// probability at mission time t, per §4.8:
//
//  1. Reset per-basic-event probabilities from each expression's
//     Sample(rng, model, t).
//  2. For each trial, bias-sample the "first" failing event from the
//     cumulative-probability vector (so every trial has at least one
//     candidate failure), then independently sample every event with a
//     higher index against its own probability.
//  3. Evaluate the gate; record the failure-mode bit vector in a
//     counting map when it is true.
//  4. Estimate P(top) and per-mode/per-event statistics from the
//     counts.
//
// rng must be caller-owned (§5's "own PRNG per analysis"). ctx is
// polled once per trial.
func Run(ctx context.Context, m *mef.Model, ix *cutset.Index, gateName string, rng *rand.Rand, trials int, t float64) (*Report, error) {
	if trials <= 0 {
		return nil, ErrNoTrials
	}

	n := int(ix.Len())
	probs := make([]float64, n)
	for i := 0; i < n; i++ {
		name := ix.Name(uint(i))
		be, ok := m.BasicEvents[name]
		if !ok {
			continue
		}
		if be.Expr == nil {
			continue
		}
		v, err := be.Expr.Sample(rng, m, t)
		if err != nil {
			return nil, err
		}
		probs[i] = v
	}

	// rel[i] is the probability that basic event i is the lowest-index
	// event to fail: p_i * product(1-p_j) over every j < i. These sum
	// to exactly qAtLeastOne (they partition "at least one event
	// fails" by which event is first in index order), so biasing the
	// "first failing event" draw by rel rather than by probs directly
	// is what makes every trial both unbiased and guaranteed
	// non-trivial.
	rel := make([]float64, n)
	survivedBefore := 1.0
	for i, p := range probs {
		rel[i] = p * survivedBefore
		survivedBefore *= 1 - p
	}
	qAtLeastOne := 0.0
	for _, r := range rel {
		qAtLeastOne += r
	}

	counts := make(map[string]int)
	var failing int

	if qAtLeastOne > 0 {
		cum := make([]float64, n)
		running := 0.0
		for i, r := range rel {
			running += r
			cum[i] = running
		}
		total := running

		assignment := make(mef.Assignment, n)
		for trial := 0; trial < trials; trial++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			for name := range assignment {
				delete(assignment, name)
			}

			u := rng.Float64() * total
			f := sort.Search(n, func(i int) bool { return cum[i] >= u })
			if f >= n {
				f = n - 1
			}
			assignment[ix.Name(uint(f))] = true
			bits := make([]bool, n)
			bits[f] = true
			for i := f + 1; i < n; i++ {
				if rng.Float64() < probs[i] {
					assignment[ix.Name(uint(i))] = true
					bits[i] = true
				}
			}

			top, err := m.EvalGate(gateName, assignment)
			if err != nil {
				return nil, err
			}
			if !top {
				continue
			}

			failing++
			counts[encodeMode(bits)]++
		}
	}

	report := &Report{
		Trials:            trials,
		PAtLeastOneFailed: qAtLeastOne,
		TopProbability:    (float64(failing) / float64(trials)) * qAtLeastOne,
		Importance:        make(map[string]float64),
	}

	for key, count := range counts {
		bits := decodeMode(key)
		var names []string
		for i, b := range bits {
			if b {
				names = append(names, ix.Name(uint(i)))
			}
		}
		probability := (float64(count) / float64(trials)) * qAtLeastOne
		stdErr := (math.Sqrt(float64(count)) / float64(trials)) * qAtLeastOne
		report.Modes = append(report.Modes, Mode{
			Bits:        bitsToSet(bits),
			Names:       names,
			Count:       count,
			Probability: probability,
			StdError:    stdErr,
		})
		for _, name := range names {
			report.Importance[name] += probability
		}
	}

	sort.Slice(report.Modes, func(i, j int) bool {
		return report.Modes[i].Bits.LexCompare(report.Modes[j].Bits) < 0
	})

	return report, nil
}
