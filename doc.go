// Package multifront is a distributed-memory multifrontal sparse direct
// solver for symmetric (or Hermitian) linear systems.
//
// 🚀 What is multifront?
//
//	A simulated-SPMD library that brings together:
//
//	  • Structural primitives: DistSparseGraph/DistSparseMatrix, row-distributed
//	    sparse assembly under a start/stop window, exactly like a real
//	    MPI-distributed sparse matrix package
//	  • An elimination-tree layer (symbolic.Info): node sizes, lower
//	    structures, child/parent relative-index maps, and a process-grid
//	    assignment down to single-rank granularity
//	  • A multifrontal kernel (front): assembling dense fronts from the
//	    distributed matrix, factoring them bottom-up into LDL^T/LDL^H form,
//	    transforming a factored front's storage (selective inversion), and
//	    driving forward/diagonal/backward triangular solves that reuse one
//	    factorization across any number of right-hand sides
//
// ✨ Why choose multifront?
//
//   - Familiar MPI-shaped API — Comm.Split, Broadcast, AllReduceSum,
//     AllToAllv — simulated over goroutines so the same SPMD code a real
//     distributed build would run can be exercised and tested in-process
//   - Separation of concerns — structural facts (symbolic), numeric
//     ordering fixtures (meshnd), and dense kernels (front) are independent
//     packages, matching how a production solver's layers compose
//   - Pure Go — no cgo, no BLAS/LAPACK bindings to wrangle
//
// Under the hood, everything is organized under five subpackages:
//
//	comm/     — the simulated communicator: Comm, Split, collectives
//	dsgraph/  — DistSparseGraph/DistSparseMatrix, row-distributed assembly
//	symbolic/ — Info/NodeInfo, the elimination tree's structural facts
//	meshnd/   — structured nested-dissection fixtures over a 3-D grid
//	front/    — dense fronts, LDL factorization, solve, selective inversion
//
// Root-level exports (this package) are thin re-exports of front's
// programmatic surface: DistSymmFrontTree, LDL, ChangeFrontType, Solve, and
// the memory/work diagnostics, so a caller never has to import front
// directly for ordinary use.
//
// Quick ASCII sketch of a multifrontal elimination tree over a small mesh:
//
//	        root (separator, distributed over the full grid)
//	       /    \
//	   left-sep  right-sep     (distributed over half the grid each)
//	   /    \      /    \
//	 leaf  leaf  leaf  leaf    (local, single-rank fronts)
//
// Dive into DESIGN.md for the grounding behind every design decision.
package multifront
