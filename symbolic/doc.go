// Package symbolic holds the structural facts a nested-dissection ordering
// produces about an elimination (separator) tree: per-node size, offset into
// the reordered matrix, lower structure (within-node and below), the
// parent/child links, and, for nodes owned by more than one rank, the
// process grid that node's front will be distributed over.
//
// Everything in this package is a fact handed in from outside (an ordering
// routine, a structured mesh generator, or a hand-built fixture in tests);
// symbolic itself performs no partitioning. It only stores the tree and
// offers the traversal orders (PostOrder, PreOrder) the numeric and
// communication-setup stages need.
package symbolic
