package symbolic

import "errors"

// Sentinel errors for symbolic tree construction and traversal.
var (
	// ErrNoNodes indicates an Info was built with zero nodes.
	ErrNoNodes = errors.New("symbolic: info has no nodes")
	// ErrNodeIndexOutOfRange indicates a node index outside [0, len(Nodes)).
	ErrNodeIndexOutOfRange = errors.New("symbolic: node index out of range")
	// ErrMultipleRoots indicates more than one node has Parent == -1.
	ErrMultipleRoots = errors.New("symbolic: more than one root node")
	// ErrNoRoot indicates no node has Parent == -1.
	ErrNoRoot = errors.New("symbolic: no root node")
	// ErrCycle indicates the parent/child links do not form a tree.
	ErrCycle = errors.New("symbolic: parent/child links contain a cycle")
	// ErrRelIndsMismatch indicates a relative-index slice's length does not
	// match the lower structure slice it indexes into.
	ErrRelIndsMismatch = errors.New("symbolic: relative index slice length mismatch")
	// ErrOffsetsNotSequential indicates nodes were not supplied in
	// non-decreasing Offset order aligned with their ID (Offset[i] must
	// equal the running sum of prior sizes).
	ErrOffsetsNotSequential = errors.New("symbolic: node offsets are not sequential by ID")
)
