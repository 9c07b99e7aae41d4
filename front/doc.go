// Package front implements the multifrontal machinery built on top of a
// symbolic.Info elimination tree: assembling each node's dense frontal
// matrix from a DistSparseMatrix, factoring fronts bottom-up into an
// LDL^T/LDL^H representation, transforming a factored front's storage
// (selectively inverted or not), and driving the forward/
// diagonal/backward triangular solve sweeps that reuse a factorization
// across right-hand sides.
//
// A node whose symbolic.NodeInfo reports GridRanks is a distributed front:
// every rank named in GridRanks holds a full replica of that front's dense
// data and performs the same local arithmetic on it, kept in sync because
// the comm.AllToAllv exchanges of assembly and of the factorization scatter
// deliver the same entries to every rank of the grid. This trades the genuine 2-D block-cyclic distributed dense
// arithmetic a production solver would use for redundant local computation;
// see DESIGN.md for why (no ScaLAPACK-equivalent dense kernel is available
// to this module). The sparse communication between disjoint process grids
// during assembly and the solve sweeps — the part this package actually
// exercises end to end — is real.
package front
