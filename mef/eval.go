package mef

import "fmt"

// Assignment maps fully-qualified BasicEvent/HouseEvent names to a
// Boolean failure state, the input the combinatorial cutset engine
// and property tests evaluate a Gate's Formula under.
type Assignment map[string]bool

// EvalGate evaluates the named Gate's Formula under assignment,
// following TransferIn links and nested Gate references recursively.
// HouseEvents not present in assignment fall back to their declared
// State; BasicEvents not present in assignment are treated as false
// (not failed).
func (m *Model) EvalGate(name string, assignment Assignment) (bool, error) {
	g, ok := m.Gates[name]
	if !ok {
		return false, fmt.Errorf("%w: gate %q", ErrUnknownReference, name)
	}

	return m.evalFormula(g.F, assignment)
}

func (m *Model) evalFormula(f *Formula, a Assignment) (bool, error) {
	switch f.Connective {
	case ConnConstant:
		return false, nil
	case ConnTransferIn:
		return m.EvalGate(f.Transfer, a)
	case ConnTransferOut:
		return false, fmt.Errorf("%w: dangling TRANSFER-OUT", ErrUnsupportedNode)
	case ConnTransout:
		return false, fmt.Errorf("%w: TRANSOUT node", ErrUnsupportedNode)
	}

	vals := make([]bool, len(f.Args))
	for i, lit := range f.Args {
		v, err := m.evalLiteral(lit, a)
		if err != nil {
			return false, err
		}
		vals[i] = v
	}

	switch f.Connective {
	case ConnAnd:
		for _, v := range vals {
			if !v {
				return false, nil
			}
		}

		return true, nil
	case ConnOr:
		for _, v := range vals {
			if v {
				return true, nil
			}
		}

		return false, nil
	case ConnNot:
		return !vals[0], nil
	case ConnNull:
		return vals[0], nil
	case ConnNand:
		for _, v := range vals {
			if !v {
				return true, nil
			}
		}

		return false, nil
	case ConnNor:
		for _, v := range vals {
			if v {
				return false, nil
			}
		}

		return true, nil
	case ConnXor:
		count := 0
		for _, v := range vals {
			if v {
				count++
			}
		}

		return count%2 == 1, nil
	case ConnImply:
		return !vals[0] || vals[1], nil
	case ConnIff:
		return vals[0] == vals[1], nil
	case ConnAtleast:
		count := 0
		for _, v := range vals {
			if v {
				count++
			}
		}

		return count >= f.K, nil
	case ConnCardinality:
		count := 0
		for _, v := range vals {
			if v {
				count++
			}
		}

		return count >= f.Min && count <= f.Max, nil
	case ConnConditionalAnalyzed:
		return vals[0], nil
	case ConnConditionalNotAnalyzed:
		return true, nil
	default:
		return false, fmt.Errorf("%w: connective %v", ErrUnsupportedNode, f.Connective)
	}
}

func (m *Model) evalLiteral(lit Literal, a Assignment) (bool, error) {
	var v bool
	switch {
	case lit.Nested != nil:
		val, err := m.evalFormula(lit.Nested, a)
		if err != nil {
			return false, err
		}
		v = val
	case lit.Event != nil:
		val, err := m.evalRef(*lit.Event, a)
		if err != nil {
			return false, err
		}
		v = val
	default:
		return false, fmt.Errorf("%w: empty literal", ErrUnsupportedNode)
	}
	if lit.Complement {
		v = !v
	}

	return v, nil
}

func (m *Model) evalRef(ref Ref, a Assignment) (bool, error) {
	switch ref.Kind {
	case EventGate:
		return m.EvalGate(ref.Name, a)
	case EventBasic:
		return a[ref.Name], nil
	case EventHouse:
		if v, ok := a[ref.Name]; ok {
			return v, nil
		}
		he, ok := m.HouseEvents[ref.Name]
		if !ok {
			return false, fmt.Errorf("%w: house event %q", ErrUnknownReference, ref.Name)
		}

		return he.State, nil
	default:
		return false, fmt.Errorf("%w: ref kind %v", ErrUnsupportedNode, ref.Kind)
	}
}
