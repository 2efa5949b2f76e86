package expression

// Kind tags the variant an Expression node is. Polymorphic behaviour
// (arity/domain checking, Mean, Sample) dispatches on Kind rather than
// going through a type hierarchy — see package doc.
type Kind int

const (
	// KindConstant is a literal numeric value.
	KindConstant Kind = iota
	// KindParamRef references a named Parameter, resolved via Env.
	KindParamRef
	// KindMissionTime evaluates to the analysis's current mission time.
	KindMissionTime
	// Arithmetic.
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindNeg
	// Comparisons (evaluate to 0.0/1.0).
	KindLT
	KindLE
	KindGT
	KindGE
	KindEQ
	KindNE
	// Logical (operate on 0.0/1.0 truthiness).
	KindAnd
	KindOr
	KindNot
	// Reliability functions of mission time.
	KindExponential
	KindWeibull
	KindGLM
	KindPeriodicTest
	// Probability distributions (Mean = expected value; Sample = draw).
	KindUniform
	KindNormal
	KindLogNormal
	KindGamma
	KindBeta
	KindHistogram
)

// HistogramBin is one bucket of a KindHistogram node: weight is its
// relative frequency (bins need not be pre-normalised), [Lo,Hi) is its
// value range.
type HistogramBin struct {
	Weight float64
	Lo, Hi float64
}

// Expression is a node in the numeric/Boolean expression tree.
//
// Only the fields relevant to Kind are meaningful:
//   - KindConstant: Const.
//   - KindParamRef: Param.
//   - KindMissionTime: (no fields).
//   - Arithmetic/comparison/logical/reliability: Args, in the fixed
//     positional order documented per Kind in typecheck.go.
//   - KindUniform: Args = [lo, hi].
//   - KindNormal: Args = [mean, sigma].
//   - KindLogNormal: Args = [mu, sigma] (of the underlying normal).
//   - KindGamma: Args = [shape, scale].
//   - KindBeta: Args = [alpha, beta].
//   - KindHistogram: Bins.
type Expression struct {
	Kind  Kind
	Const float64
	Param string
	Args  []*Expression
	Bins  []HistogramBin

	typeChecked bool
}

// Env resolves a named Parameter reference into its Expression. Package
// mef implements Env over a Model's in-scope parameters, having already
// verified the parameter-reference graph is acyclic during validation;
// Env.Param itself is not expected to detect cycles (TypeCheck does, for
// expressions type-checked outside that validation pass).
type Env interface {
	Param(name string) (*Expression, error)
}

// Constant returns a KindConstant leaf.
func Constant(v float64) *Expression { return &Expression{Kind: KindConstant, Const: v} }

// ParamRef returns a KindParamRef leaf.
func ParamRef(name string) *Expression { return &Expression{Kind: KindParamRef, Param: name} }

// MissionTime returns a KindMissionTime leaf.
func MissionTime() *Expression { return &Expression{Kind: KindMissionTime} }

// Binary builds a two-argument node of the given Kind.
func Binary(k Kind, a, b *Expression) *Expression { return &Expression{Kind: k, Args: []*Expression{a, b}} }

// Unary builds a one-argument node of the given Kind.
func Unary(k Kind, a *Expression) *Expression { return &Expression{Kind: k, Args: []*Expression{a}} }

// Nary builds a node of the given Kind with an arbitrary argument count
// (Exponential, Weibull, GLM, PeriodicTest, Uniform, Normal, LogNormal,
// Gamma, Beta).
func Nary(k Kind, args ...*Expression) *Expression { return &Expression{Kind: k, Args: args} }

// Histogram builds a KindHistogram node from the given bins.
func Histogram(bins ...HistogramBin) *Expression { return &Expression{Kind: KindHistogram, Bins: bins} }

// IsTypeChecked reports whether TypeCheck has succeeded on e.
func (e *Expression) IsTypeChecked() bool { return e.typeChecked }
