package ccf

import "errors"

// ErrGroupTooLarge guards against the 2^m subset explosion: expansion
// refuses a group of any kind, beta-factor included, whose 2^m member
// subsets would exceed maxSubsets (more than 20 members).
var ErrGroupTooLarge = errors.New("ccf: group too large to expand")

// ErrNotValidated indicates Expand was called on a model that has not
// passed mef.Validate.
var ErrNotValidated = errors.New("ccf: model is not validated")
