package mef

import "github.com/rakhimov/scram-sub001/expression"

// Role is the public/private visibility of a container or element.
type Role int

const (
	// RolePublic members are visible to any container that can see their
	// owning container.
	RolePublic Role = iota
	// RolePrivate members are visible only within their owning container.
	RolePrivate
)

// Stage is the one-way Model lifecycle of §4.9.
type Stage int

const (
	StageUnparsed Stage = iota
	StageParsed
	StageValidated
	StagePreprocessed
	StageAnalysable
)

// String renders the Stage the way diagnostics report it.
func (s Stage) String() string {
	switch s {
	case StageUnparsed:
		return "unparsed"
	case StageParsed:
		return "parsed"
	case StageValidated:
		return "validated"
	case StagePreprocessed:
		return "preprocessed"
	case StageAnalysable:
		return "analysable"
	default:
		return "unknown"
	}
}

// Connective is the Boolean connective a Formula combines its arguments
// with.
type Connective int

const (
	ConnAnd Connective = iota
	ConnOr
	ConnXor
	ConnNot
	ConnNand
	ConnNor
	ConnAtleast
	ConnCardinality
	ConnImply
	ConnIff
	ConnNull
	ConnConstant
	// ConnTransferIn/ConnTransferOut are legacy cross-tree links: a
	// TransferIn is followed to its target gate by EvalGate and the
	// cut-set engines; reaching a TransferOut is an error in both.
	ConnTransferIn
	ConnTransferOut
	// ConnConditionalAnalyzed/ConnConditionalNotAnalyzed are legacy
	// conditioning nodes: the former ANDs its value in, the latter drops
	// its child entirely.
	ConnConditionalAnalyzed
	ConnConditionalNotAnalyzed
	// ConnTransout is the legacy node the design notes flag as an open
	// question: treated as ErrUnsupportedNode rather than silently
	// dropped.
	ConnTransout
)

// EventKind tags which arena a Ref points into.
type EventKind int

const (
	EventGate EventKind = iota
	EventBasic
	EventHouse
)

// Ref is a non-owning reference to an element by its fully-qualified
// name (see Container for qualification rules).
type Ref struct {
	Kind EventKind
	Name string // fully-qualified
}

// Literal is one argument of a Formula: either a reference to an Event
// (Ref.Kind != -1 semantics via Nested == nil) or an inline nested
// Formula, owned by (not shared with) the parent Formula, per §3's "no
// shared nested formulas" invariant. Complement negates the literal.
type Literal struct {
	Event      *Ref
	Nested     *Formula
	Complement bool
}

// Formula is the Boolean expression under a Gate.
type Formula struct {
	Connective Connective
	Args       []Literal
	K          int // ConnAtleast
	Min, Max   int // ConnCardinality
	// Transfer is the target fully-qualified gate name for
	// ConnTransferIn/ConnTransferOut.
	Transfer string
}

// Gate is an internal DAG node combining its Formula's arguments.
type Gate struct {
	Name string
	Role Role
	F    *Formula
}

// BasicEvent is a leaf failure event, optionally carrying a probability
// or rate Expression.
type BasicEvent struct {
	Name string
	Role Role
	Expr *expression.Expression // nil if undeclared
}

// HouseEvent is a Boolean constant fixed per analysis.
type HouseEvent struct {
	Name  string
	Role  Role
	State bool
}

// Parameter is a named, reusable Expression.
type Parameter struct {
	Name   string
	Role   Role
	Unit   string
	Expr   *expression.Expression
	Unused bool
}

// CcfKind is the common-cause-failure model kind.
type CcfKind int

const (
	CcfBetaFactor CcfKind = iota
	CcfMGL
	CcfAlphaFactor
	CcfPhiFactor
)

// CcfFactor is one (level, value) pair of a CcfGroup's factor list.
type CcfFactor struct {
	Level int
	Value *expression.Expression
}

// CcfGroup is a named set of basic events whose failures are correlated
// via a named model.
type CcfGroup struct {
	Name         string
	Role         Role
	Kind         CcfKind
	Members      []string // fully-qualified BasicEvent names, same container
	Distribution *expression.Expression
	Factors      []CcfFactor
}
