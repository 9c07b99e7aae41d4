package front

import "errors"

// Sentinel errors for front assembly, factorization, transformation and
// solve.
var (
	// ErrAlreadyFactored indicates LDL was called on an already-factored
	// front tree.
	ErrAlreadyFactored = errors.New("front: tree is already factored")
	// ErrNotFactored indicates Solve (or a transformation) was called on an
	// unfactored front tree.
	ErrNotFactored = errors.New("front: tree is not yet factored")
	// ErrZeroPivot indicates a (near-)zero pivot was produced during local
	// LDL factorization.
	ErrZeroPivot = errors.New("front: zero pivot encountered during factorization")
	// ErrDimensionMismatch indicates a right-hand side vector's length does
	// not match the tree's matrix order.
	ErrDimensionMismatch = errors.New("front: right-hand side dimension mismatch")
	// ErrIllegalFrontTransition indicates an unsupported frontType
	// transition was requested: selectively inverting an already-inverted
	// front, or reverting a front that is not inverted.
	ErrIllegalFrontTransition = errors.New("front: illegal front-type transition")
	// ErrUpperTriangleWrite indicates an assembly or update step attempted
	// to write above a front's diagonal, which the tagged-union layout
	// forbids.
	ErrUpperTriangleWrite = errors.New("front: write above diagonal is forbidden")
)
