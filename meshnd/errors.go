package meshnd

import "errors"

// Sentinel errors for mesh construction.
var (
	// ErrNonPositiveDims indicates one of nx, ny, nz was <= 0.
	ErrNonPositiveDims = errors.New("meshnd: grid dimensions must be positive")
	// ErrTooFewRanks indicates numProcesses was <= 0.
	ErrTooFewRanks = errors.New("meshnd: numProcesses must be positive")
)
