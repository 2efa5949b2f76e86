package cutset

import (
	"context"

	"github.com/rakhimov/scram-sub001/mef"
	"github.com/rakhimov/scram-sub001/sop"
)

// Options configures a cut-set computation.
type Options struct {
	// MaxOrder truncates any candidate group whose popcount exceeds
	// it. <= 0 means unlimited.
	MaxOrder int
	// Prime forces prime-implicant semantics even over a coherent
	// formula; it is also forced on automatically whenever the
	// normalised formula contains a pushed-down negation.
	Prime bool
	// Progress is called with (done, total) combinations; only the
	// Combinatorial engine reports non-trivial progress. May be nil.
	Progress func(done, total uint64)
}

// Engine computes the minimal-cut-set (or, in Prime mode / over a
// non-coherent formula, prime-implicant) sop.Expr of the named gate
// under ix's basic-event indexing. Algebraic and Combinatorial both
// implement Engine and, per the same model/gate/K, agree on the
// resulting set of groups (ignoring order).
type Engine interface {
	Compute(ctx context.Context, m *mef.Model, ix *Index, gateName string, opts Options) (*sop.Expr, error)
}
