package analysis

import "errors"

// ErrNotAnalysable indicates Run was called on a model not at
// mef.StageAnalysable (and CCF expansion, if needed, did not bring it
// there either).
var ErrNotAnalysable = errors.New("analysis: model is not analysable")

// ErrInvalidSettings indicates a Settings value failed Validate.
var ErrInvalidSettings = errors.New("analysis: invalid settings")

// ErrNoContext indicates a nil *mef.Model or *rand.Rand was passed to
// NewContext.
var ErrNoContext = errors.New("analysis: context requires a model and a PRNG")
