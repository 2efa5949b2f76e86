package cutset

import "github.com/rakhimov/scram-sub001/mef"

// nkind tags a normalised-tree node. After pushDown runs, a tree
// contains only nAnd/nOr/nLit/nConst — nNot only appears transiently
// between buildRaw and pushDown.
type nkind int

const (
	nAnd nkind = iota
	nOr
	nNot
	nLit
	nConst
)

// node is the intermediate Boolean tree normalise produces: a plain
// AND/OR/NOT/literal/constant tree with every gate and transfer-in
// reference already inlined, ready for De Morgan push-down.
type node struct {
	kind       nkind
	args       []*node
	ref        string // nLit: fully-qualified basic-event name
	complement bool   // nConst: the constant value (reused field)
}

// normalize inlines gate/transfer references starting from f, pushes
// every negation down to literals, and returns the resulting AND/OR/
// literal/constant tree.
func normalize(m *mef.Model, f *mef.Formula) (*node, error) {
	raw, err := buildRaw(m, f)
	if err != nil {
		return nil, err
	}

	return pushDown(raw, false), nil
}

func buildRaw(m *mef.Model, f *mef.Formula) (*node, error) {
	switch f.Connective {
	case mef.ConnTransferIn:
		target, ok := m.Gates[f.Transfer]
		if !ok {
			return nil, ErrDanglingTransferOut
		}

		return buildRaw(m, target.F)
	case mef.ConnTransferOut:
		return nil, ErrDanglingTransferOut
	case mef.ConnTransout:
		return nil, mef.ErrUnsupportedNode
	case mef.ConnConstant:
		return constNode(false), nil
	}

	children := make([]*node, len(f.Args))
	for i, lit := range f.Args {
		child, err := buildLiteral(m, lit)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}

	switch f.Connective {
	case mef.ConnAnd:
		return &node{kind: nAnd, args: children}, nil
	case mef.ConnOr:
		return &node{kind: nOr, args: children}, nil
	case mef.ConnNot:
		return &node{kind: nNot, args: children}, nil
	case mef.ConnNull, mef.ConnConditionalAnalyzed:
		return children[0], nil
	case mef.ConnConditionalNotAnalyzed:
		return constNode(true), nil
	case mef.ConnNand:
		return &node{kind: nNot, args: []*node{{kind: nAnd, args: children}}}, nil
	case mef.ConnNor:
		return &node{kind: nNot, args: []*node{{kind: nOr, args: children}}}, nil
	case mef.ConnXor:
		if len(children) != 2 {
			return nil, ErrUnsupportedXorArity
		}

		return xorNode(children[0], children[1]), nil
	case mef.ConnImply:
		return &node{kind: nOr, args: []*node{notNode(children[0]), children[1]}}, nil
	case mef.ConnIff:
		return &node{kind: nOr, args: []*node{
			{kind: nAnd, args: []*node{children[0], children[1]}},
			{kind: nAnd, args: []*node{notNode(children[0]), notNode(children[1])}},
		}}, nil
	case mef.ConnAtleast:
		return combinationOr(children, f.K), nil
	case mef.ConnCardinality:
		return cardinalityOr(children, f.Min, f.Max), nil
	default:
		return nil, mef.ErrUnsupportedNode
	}
}

func buildLiteral(m *mef.Model, lit mef.Literal) (*node, error) {
	var n *node
	var err error

	switch {
	case lit.Nested != nil:
		n, err = buildRaw(m, lit.Nested)
	case lit.Event != nil:
		n, err = buildRef(m, *lit.Event)
	default:
		return nil, mef.ErrUnsupportedNode
	}
	if err != nil {
		return nil, err
	}
	if lit.Complement {
		n = notNode(n)
	}

	return n, nil
}

func buildRef(m *mef.Model, ref mef.Ref) (*node, error) {
	switch ref.Kind {
	case mef.EventBasic:
		return &node{kind: nLit, ref: ref.Name}, nil
	case mef.EventHouse:
		he, ok := m.HouseEvents[ref.Name]
		if !ok {
			return nil, mef.ErrUnknownReference
		}

		return constNode(he.State), nil
	case mef.EventGate:
		g, ok := m.Gates[ref.Name]
		if !ok {
			return nil, mef.ErrUnknownReference
		}

		return buildRaw(m, g.F)
	default:
		return nil, mef.ErrUnsupportedNode
	}
}

func constNode(v bool) *node        { return &node{kind: nConst, complement: v} }
func notNode(n *node) *node         { return &node{kind: nNot, args: []*node{n}} }
func xorNode(a, b *node) *node {
	return &node{kind: nOr, args: []*node{
		{kind: nAnd, args: []*node{a, notNode(b)}},
		{kind: nAnd, args: []*node{notNode(a), b}},
	}}
}

// pushDown eliminates nNot nodes via De Morgan, threading neg (whether
// the enclosing context negates this subtree) top-down.
func pushDown(n *node, neg bool) *node {
	switch n.kind {
	case nConst:
		v := n.complement
		if neg {
			v = !v
		}

		return constNode(v)
	case nLit:
		return &node{kind: nLit, ref: n.ref, complement: neg}
	case nNot:
		return pushDown(n.args[0], !neg)
	case nAnd:
		kind := nAnd
		if neg {
			kind = nOr
		}
		args := make([]*node, len(n.args))
		for i, a := range n.args {
			args[i] = pushDown(a, neg)
		}

		return &node{kind: kind, args: args}
	case nOr:
		kind := nOr
		if neg {
			kind = nAnd
		}
		args := make([]*node, len(n.args))
		for i, a := range n.args {
			args[i] = pushDown(a, neg)
		}

		return &node{kind: kind, args: args}
	default:
		return n
	}
}

// combinationOr builds OR(AND(combo)) over every k-combination of
// args, the expansion §4.5 specifies for atleast(k, args).
func combinationOr(args []*node, k int) *node {
	var terms []*node
	combos(len(args), k, func(idx []int) {
		picked := make([]*node, len(idx))
		for i, j := range idx {
			picked[i] = args[j]
		}
		if len(picked) == 1 {
			terms = append(terms, picked[0])

			return
		}
		terms = append(terms, &node{kind: nAnd, args: picked})
	})
	if len(terms) == 1 {
		return terms[0]
	}

	return &node{kind: nOr, args: terms}
}

// cardinalityOr is combinationOr unioned over every size in [min,max].
// min==0 additionally contributes the all-false term (every arg
// negated), since count==0 satisfies the cardinality range too.
func cardinalityOr(args []*node, min, max int) *node {
	var terms []*node
	if min == 0 {
		negated := make([]*node, len(args))
		for i, a := range args {
			negated[i] = notNode(a)
		}
		if len(negated) == 1 {
			terms = append(terms, negated[0])
		} else {
			terms = append(terms, &node{kind: nAnd, args: negated})
		}
		min = 1
	}
	for k := min; k <= max; k++ {
		terms = append(terms, combinationOr(args, k))
	}
	if len(terms) == 1 {
		return terms[0]
	}

	return &node{kind: nOr, args: terms}
}

// combos calls fn once per k-combination of {0,...,n-1}, in lexical
// index order.
func combos(n, k int, fn func(idx []int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(append([]int(nil), idx...))

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
