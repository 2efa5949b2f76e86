package uncertainty

import "errors"

// ErrNoTrials indicates Run was called with a non-positive trial count.
var ErrNoTrials = errors.New("uncertainty: trials must be positive")
