// Package comm simulates a coarse-grained SPMD message-passing runtime
// in-process: a fixed number of ranks, each its own goroutine, exchanging
// data only through collective operations on a Comm.
//
// There is no real network here and no out-of-process transport; the point
// is to give the rest of this module the same collective-communication
// contract a production build would get from MPI (or an equivalent
// messaging runtime) without pulling in cgo or an external broker. Every
// collective blocks the calling rank's goroutine until every other rank
// bound to the same Comm has issued the matching call, exactly mirroring
// the suspension-point semantics a real collective network would impose.
//
// Run spawns one goroutine per rank and hands each one a Comm scoped to
// all P ranks. Sub-communicators (one per distributed front's process
// grid) are created once per front tree via Comm.Split and are
// never resized, matching the "communicators are created once" invariant
// the rest of the design relies on.
package comm
