package comm

import "errors"

// Sentinel errors for the simulated message-passing runtime.
var (
	// ErrCountMismatch indicates mismatched send/recv counts in a debug all-to-all check.
	ErrCountMismatch = errors.New("comm: send/recv count mismatch")
)
