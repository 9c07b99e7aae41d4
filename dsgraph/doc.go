// Package dsgraph implements a 1-D row-distributed sparse graph/matrix
// container with an assembling lifecycle:
//
//	startAssembly -> reserve -> insert*(row,col[,value]) -> stopAssembly
//
// Each of the P ranks owns a contiguous block of floor(N/P) rows (the last
// rank absorbs the remainder); edges are kept as parallel (source,target)
// slices plus, for DistSparseMatrix, a parallel values slice. After
// stopAssembly the entries are sorted by (source,target), deduplicated (see
// DESIGN.md for the duplicate-insert policy), and a CSR-style row-offset
// table is built so row(e)/col(e)/value(e) and per-row slicing are O(1).
//
// This package follows the same mutex-guarded build-then-freeze
// discipline a thread-safe in-memory graph would use, reworked from an
// adjacency map into a row-distributed CSR structure because a
// multifrontal solver's front assembly (see package front) needs CSR-style
// row slicing, not map lookups.
package dsgraph
