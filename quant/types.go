package quant

// Importance bundles the five per-basic-event measures of §4.7.
type Importance struct {
	FussellVesely float64
	Birnbaum      float64
	Criticality   float64
	RAW           float64
	RRW           float64
}

// Result is the typed in-memory equivalent of a report's
// probability/importance section: a single top-event quantification at
// one mission time.
type Result struct {
	Exact     float64
	RareEvent float64
	MCUB      float64

	// NonCoherent is set when any surviving group carries a negated
	// literal; MCUB and RareEvent are not meaningful readings in that
	// case (§4.7, §9).
	NonCoherent bool
	// RareEventLoose is set when RareEvent was computed over a cut set
	// whose own probability is not small, so the "valid only when each
	// cut-set probability is << 1" precondition does not hold.
	RareEventLoose bool

	Importance map[string]Importance

	Warnings []string
}

// Band is one of the five standard Safety Integrity Level bands, plus
// the out-of-range band, per §4.7.
type Band int

const (
	SILOutOfRange Band = iota
	SIL1
	SIL2
	SIL3
	SIL4
)

// String renders Band the way a report would.
func (b Band) String() string {
	switch b {
	case SIL4:
		return "SIL4"
	case SIL3:
		return "SIL3"
	case SIL2:
		return "SIL2"
	case SIL1:
		return "SIL1"
	default:
		return "out-of-range"
	}
}

// Mode selects which of the two standard banding tables applies: a
// demand-mode probability of failure on demand, or a continuous-mode
// probability of failure per hour.
type Mode int

const (
	ModeOnDemand Mode = iota
	ModeContinuous
)

// CurvePoint is one mission-time sample of a Curve.
type CurvePoint struct {
	Time        float64
	Probability float64
}
