package dsgraph

import "errors"

// Sentinel errors for the distributed sparse graph/matrix container.
var (
	// ErrNotAssembling indicates insert/update was called outside a
	// startAssembly/stopAssembly window.
	ErrNotAssembling = errors.New("dsgraph: not currently assembling")

	// ErrAlreadyAssembling indicates startAssembly was called twice without
	// an intervening stopAssembly.
	ErrAlreadyAssembling = errors.New("dsgraph: assembly already in progress")

	// ErrRowOutOfRange indicates insert/update referenced a row outside
	// this rank's local row block [firstLocalRow, firstLocalRow+localHeight).
	ErrRowOutOfRange = errors.New("dsgraph: row outside local row range")

	// ErrColOutOfRange indicates a column index outside [0, N).
	ErrColOutOfRange = errors.New("dsgraph: column outside [0,N)")

	// ErrNotFrozen indicates row/col/value/localEntryOffset was called
	// before stopAssembly completed.
	ErrNotFrozen = errors.New("dsgraph: graph is not frozen (call stopAssembly first)")

	// ErrEntryOutOfRange indicates row(e)/col(e)/value(e) was called with e
	// outside [0, NumLocalEntries()).
	ErrEntryOutOfRange = errors.New("dsgraph: entry index out of range")

	// ErrParallelArrayMismatch is a logic error: sources/targets/values
	// diverged in length. It should never surface to a well-behaved caller.
	ErrParallelArrayMismatch = errors.New("dsgraph: parallel array length mismatch")

	// ErrNonPositiveSize indicates N <= 0 was passed to a constructor.
	ErrNonPositiveSize = errors.New("dsgraph: matrix/graph size must be positive")
)
