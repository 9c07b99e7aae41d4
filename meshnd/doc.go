// Package meshnd generates structured nested-dissection fixtures for a
// regular 3-D grid connected by a 7-point stencil (each interior cell
// adjacent to its +/-x, +/-y, +/-z neighbors). It plays the role a real
// ordering library (METIS, Scotch, or a hand-rolled recursive bisector)
// would play upstream of the solver: given grid dimensions, it produces
// both the DistSparseGraph connectivity (dsgraph) and the elimination tree
// (symbolic.Info) nested dissection implies, by recursively bisecting the
// grid box along its longest axis and taking the cutting plane as a
// separator.
//
// The resulting Info is a convenient, reproducible fixture for exercising
// package front end to end; it is not a general-purpose ordering algorithm and
// makes no attempt to minimize fill on non-grid-shaped problems.
package meshnd
