package analysis

import (
	"fmt"

	"github.com/rakhimov/scram-sub001/quant"
	"github.com/rakhimov/scram-sub001/uncertainty"
)

// Approximation names the top-event probability approximation a report
// headlines alongside the exact value, per §6's `--rare-event | --mcub`
// flag pair. Run's quant.Result carries both approximations whatever
// its value.
type Approximation int

const (
	// ApproxNone headlines only the exact inclusion-exclusion value.
	ApproxNone Approximation = iota
	// ApproxRareEvent headlines the linear-sum approximation.
	ApproxRareEvent
	// ApproxMCUB headlines the min-cut-upper-bound approximation.
	ApproxMCUB
)

// String renders Approximation the way a settings file would.
func (a Approximation) String() string {
	switch a {
	case ApproxRareEvent:
		return "rare-event"
	case ApproxMCUB:
		return "mcub"
	default:
		return "none"
	}
}

// Settings is the in-memory equivalent of §6's core-relevant CLI flags,
// loadable/persistable as YAML via gopkg.in/yaml.v3 so a host can
// populate it without this package owning a flag parser.
type Settings struct {
	// LimitOrder truncates cut-set search at this order (§6 --limit-order).
	LimitOrder int `yaml:"limit_order"`
	// CutOff records the §6 --cut-off probability. Validate checks it
	// lies in [0,1]; Run does not filter cut sets by it.
	CutOff float64 `yaml:"cut_off"`
	// MissionTime rebinds the MissionTime expression node (§6 --mission-time).
	MissionTime float64 `yaml:"mission_time"`
	// TimeStep, if > 0, requests a probability-over-time curve sampled
	// every TimeStep up to MissionTime (§6 --time-step).
	TimeStep float64 `yaml:"time_step"`
	// NumTrials is the Monte-Carlo trial count (§6 --num-trials); 0
	// disables the uncertainty analysis.
	NumTrials int `yaml:"num_trials"`
	// Seed records the §6 --seed value. Run does not read it:
	// Monte-Carlo draws come from Context.RNG.
	Seed int64 `yaml:"seed"`
	// Approximation records which approximate probability a downstream
	// report should headline alongside the exact value (§6 --rare-event
	// | --mcub); quant.Quantify always computes both RareEvent and
	// MCUB regardless (they are cheap and a caller inspecting the full
	// quant.Result benefits from having both), so Approximation is
	// read by Settings.Validate's coherence check and otherwise left
	// for a collaborator building a report to act on.
	Approximation Approximation `yaml:"approximation"`
	// PrimeImplicants switches MCS search to prime-implicant semantics
	// (§6 --prime-implicants); incompatible with Approximation != ApproxNone
	// since both approximations assume coherence.
	PrimeImplicants bool `yaml:"prime_implicants"`
	// SILMode selects which of the two standard SIL banding tables
	// applies when Run computes the result's Band.
	SILMode quant.Mode `yaml:"sil_mode"`
}

// DefaultSettings returns the conservative defaults: unlimited order
// truncation disabled (LimitOrder 0 means "no limit" to Run, which maps
// it to cutset.Options{MaxOrder: 0}), no cut-off, mission time 1, no
// curve, no uncertainty, exact probability only.
func DefaultSettings() Settings {
	return Settings{
		LimitOrder:      0,
		CutOff:          0,
		MissionTime:     1,
		TimeStep:        0,
		NumTrials:       0,
		Seed:            1,
		Approximation:   ApproxNone,
		PrimeImplicants: false,
	}
}

// Validate checks Settings for the out-of-range or incompatible
// combinations §7 calls a "Settings error", returned before any
// analysis begins.
func (s Settings) Validate() error {
	if s.LimitOrder < 0 {
		return fmt.Errorf("%w: limit_order must be >= 0, got %d", ErrInvalidSettings, s.LimitOrder)
	}
	if s.CutOff < 0 || s.CutOff > 1 {
		return fmt.Errorf("%w: cut_off must be within [0,1], got %g", ErrInvalidSettings, s.CutOff)
	}
	if s.MissionTime < 0 {
		return fmt.Errorf("%w: mission_time must be >= 0, got %g", ErrInvalidSettings, s.MissionTime)
	}
	if s.TimeStep < 0 {
		return fmt.Errorf("%w: time_step must be >= 0, got %g", ErrInvalidSettings, s.TimeStep)
	}
	if s.TimeStep > 0 && s.MissionTime <= 0 {
		return fmt.Errorf("%w: time_step requires a positive mission_time", ErrInvalidSettings)
	}
	if s.NumTrials < 0 {
		return fmt.Errorf("%w: num_trials must be >= 0, got %d", ErrInvalidSettings, s.NumTrials)
	}
	if s.PrimeImplicants && s.Approximation != ApproxNone {
		return fmt.Errorf("%w: prime_implicants is incompatible with an approximation that assumes coherence", ErrInvalidSettings)
	}

	return nil
}

// Result bundles every output Run can produce for one top gate: the
// exact/approximate/importance quantification, the optional time curve,
// the optional Monte-Carlo report, and the SIL band of the exact value.
type Result struct {
	GateName string

	Quant quant.Result

	// Curve is nil unless Settings.TimeStep > 0.
	Curve []quant.CurvePoint

	// Uncertainty is nil unless Settings.NumTrials > 0.
	Uncertainty *uncertainty.Report

	Band quant.Band

	Warnings []string
}
