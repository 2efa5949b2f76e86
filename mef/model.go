package mef

import (
	"fmt"

	"github.com/heimdalr/dag"

	"github.com/rakhimov/scram-sub001/expression"
)

// Model is the arena that owns every element of a fault-tree model by
// value, keyed by fully-qualified name, plus the two reference graphs
// (gate formulas, parameter expressions) Validate walks for cycles.
type Model struct {
	Name        string
	MissionTime float64
	Stage       Stage

	Gates       map[string]*Gate
	BasicEvents map[string]*BasicEvent
	HouseEvents map[string]*HouseEvent
	Parameters  map[string]*Parameter
	CcfGroups   map[string]*CcfGroup

	FaultTrees map[string]*Container

	gateDAG  *dag.DAG
	paramDAG *dag.DAG
}

// NewModel returns an empty Model at StageUnparsed.
func NewModel(name string, missionTime float64) *Model {
	return &Model{
		Name:        name,
		MissionTime: missionTime,
		Stage:       StageUnparsed,
		Gates:       make(map[string]*Gate),
		BasicEvents: make(map[string]*BasicEvent),
		HouseEvents: make(map[string]*HouseEvent),
		Parameters:  make(map[string]*Parameter),
		CcfGroups:   make(map[string]*CcfGroup),
		FaultTrees:  make(map[string]*Container),
		gateDAG:     dag.NewDAG(),
		paramDAG:    dag.NewDAG(),
	}
}

// AddFaultTree declares a new top-level Container.
func (m *Model) AddFaultTree(name string, role Role) (*Container, error) {
	if _, exists := m.FaultTrees[name]; exists {
		return nil, fmt.Errorf("%w: fault tree %q", ErrDuplicateName, name)
	}
	ft := newContainer(m, name, role, nil, name)
	m.FaultTrees[name] = ft
	m.touchParsed()

	return ft, nil
}

// AddSyntheticBasicEvent registers a BasicEvent directly in the
// model's arena without going through any Container — package ccf uses
// this to install CCF-expansion auxiliary events, which have no
// natural owning container.
func (m *Model) AddSyntheticBasicEvent(name string, expr *expression.Expression) *BasicEvent {
	be := &BasicEvent{Name: name, Role: RolePublic, Expr: expr}
	m.BasicEvents[name] = be

	return be
}

// touchParsed moves an Unparsed model to Parsed on first element added.
// It is a no-op past StageParsed.
func (m *Model) touchParsed() {
	if m.Stage == StageUnparsed {
		m.Stage = StageParsed
	}
}

// Param implements expression.Env by resolving a Parameter's Expression
// from the model's flat Parameters arena (names arriving here are
// already fully qualified by the container that built the expression
// tree).
func (m *Model) Param(name string) (*expression.Expression, error) {
	p, ok := m.Parameters[name]
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q", expression.ErrUnknownParam, name)
	}
	p.Unused = false

	return p.Expr, nil
}

// MarkAnalysable transitions a Validated (or already Preprocessed)
// model to StageAnalysable. analysis.Run calls it and refuses a model
// it cannot bring to this stage; the cutset, quant and uncertainty
// entry points do not check Stage themselves.
func (m *Model) MarkAnalysable() error {
	if m.Stage != StageValidated && m.Stage != StagePreprocessed {
		return fmt.Errorf("%w: MarkAnalysable requires Validated or Preprocessed, got %s", ErrStageOrder, m.Stage)
	}
	m.Stage = StageAnalysable

	return nil
}
