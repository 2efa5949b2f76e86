package cutset

import (
	"context"

	"github.com/rakhimov/scram-sub001/mef"
	"github.com/rakhimov/scram-sub001/sop"
)

// Combinatorial is the per-order enumeration cut-set engine of §4.6:
// for each order r from 1 to the limit, it evaluates the gate tree
// under every r-combination of basic-event indices (generated in
// lexical order) and appends surviving groups via the SOP absorption
// rule. Because combinations are enumerated in increasing order, a
// later, larger combination can never need to evict an earlier,
// smaller one — order-monotone accumulation.
type Combinatorial struct{}

// Compute implements Engine. A zero or negative Options.MaxOrder means
// no order limit: every order up to the number of basic events is
// enumerated.
func (Combinatorial) Compute(ctx context.Context, m *mef.Model, ix *Index, gateName string, opts Options) (*sop.Expr, error) {
	if _, ok := m.Gates[gateName]; !ok {
		return nil, mef.ErrUnknownReference
	}
	if opts.Prime {
		return nil, ErrCombinatorialPrimeUnsupported
	}
	limit := opts.MaxOrder
	if limit <= 0 {
		limit = int(ix.Len())
	}

	n := int(ix.Len())
	if limit > n {
		limit = n
	}

	result := sop.New(ix.Len(), false)

	var total uint64
	for r := 1; r <= limit; r++ {
		total += uint64(nCr(n, r))
	}
	var done uint64

	assignment := make(mef.Assignment, n)
	for r := 1; r <= limit; r++ {
		var cancelled error
		combos(n, r, func(idx []int) {
			if cancelled != nil {
				return
			}
			if err := ctx.Err(); err != nil {
				cancelled = ErrCancelled

				return
			}

			for name := range assignment {
				delete(assignment, name)
			}
			g := sop.NewGroup(ix.Len())
			for _, j := range idx {
				assignment[ix.Name(uint(j))] = true
				g.Pos.Set(uint(j), 1)
			}

			v, err := m.EvalGate(gateName, assignment)
			if err != nil {
				cancelled = err

				return
			}
			if v {
				result.OrGroup(g)
			}

			done++
			if opts.Progress != nil {
				opts.Progress(done, total)
			}
		})
		if cancelled != nil {
			return nil, cancelled
		}
	}

	return result, nil
}

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
