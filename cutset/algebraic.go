package cutset

import (
	"context"

	"github.com/rakhimov/scram-sub001/mef"
	"github.com/rakhimov/scram-sub001/sop"
)

// Algebraic is the recursive bottom-up cut-set engine of §4.5: it
// normalises the gate's formula into an AND/OR/literal tree (De Morgan
// push-down, XOR/atleast/cardinality expansion, transfer-in and
// conditional handling already resolved by normalize) and folds
// sop.Expr.AndExpr/OrExpr over it, truncating to Options.MaxOrder.
type Algebraic struct{}

// Compute implements Engine.
func (Algebraic) Compute(ctx context.Context, m *mef.Model, ix *Index, gateName string, opts Options) (*sop.Expr, error) {
	g, ok := m.Gates[gateName]
	if !ok {
		return nil, mef.ErrUnknownReference
	}

	tree, err := normalize(m, g.F)
	if err != nil {
		return nil, err
	}
	prime := opts.Prime || containsComplement(tree)

	return foldAlgebraic(ctx, tree, ix, prime, opts.MaxOrder)
}

func containsComplement(n *node) bool {
	switch n.kind {
	case nLit:
		return n.complement
	case nAnd, nOr:
		for _, a := range n.args {
			if containsComplement(a) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

func foldAlgebraic(ctx context.Context, n *node, ix *Index, prime bool, maxOrder int) (*sop.Expr, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	switch n.kind {
	case nConst:
		e := sop.New(ix.Len(), prime)
		if n.complement {
			e.OrGroup(sop.NewGroup(ix.Len()))
		}

		return e, nil
	case nLit:
		i, ok := ix.Index(n.ref)
		if !ok {
			return nil, mef.ErrUnknownReference
		}
		g := sop.NewGroup(ix.Len())
		if n.complement {
			g.Neg.Set(i, 1)
		} else {
			g.Pos.Set(i, 1)
		}
		e := sop.New(ix.Len(), prime)
		e.OrGroup(g)

		return e, nil
	case nAnd:
		acc, err := foldAlgebraic(ctx, n.args[0], ix, prime, maxOrder)
		if err != nil {
			return nil, err
		}
		for _, child := range n.args[1:] {
			if err := ctx.Err(); err != nil {
				return nil, ErrCancelled
			}
			next, err := foldAlgebraic(ctx, child, ix, prime, maxOrder)
			if err != nil {
				return nil, err
			}
			acc = acc.AndExpr(next, maxOrder)
		}

		return acc, nil
	case nOr:
		acc, err := foldAlgebraic(ctx, n.args[0], ix, prime, maxOrder)
		if err != nil {
			return nil, err
		}
		for _, child := range n.args[1:] {
			if err := ctx.Err(); err != nil {
				return nil, ErrCancelled
			}
			next, err := foldAlgebraic(ctx, child, ix, prime, maxOrder)
			if err != nil {
				return nil, err
			}
			acc = acc.OrExpr(next)
		}

		return acc, nil
	default:
		return nil, mef.ErrUnsupportedNode
	}
}
