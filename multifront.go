package multifront

import (
	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/dsgraph"
	"github.com/katalvlaran/multifront/front"
	"github.com/katalvlaran/multifront/symbolic"
)

// DistSymmFrontTree is the assembled front tree of a symbolic.Info
// elimination tree: one dense Front per node a given rank participates in.
// It is a thin alias for front.DistSymmFrontTree so callers need not import
// front directly for ordinary use.
type DistSymmFrontTree[F dsgraph.Field] = front.DistSymmFrontTree[F]

// NewDistSymmFrontTree assembles the front tree for mat over info: it
// redistributes mat's local entries to the rank(s) that own each entry's
// destination node via a single sparse all-to-all over world.
func NewDistSymmFrontTree[F dsgraph.Field](world comm.Comm, mat *dsgraph.DistSparseMatrix[F], info *symbolic.Info) (*DistSymmFrontTree[F], error) {
	return front.BuildFrontTree(world, mat, info)
}

// LDL factors every front in tree bottom-up into LDL^T (real F) or LDL^H
// (complex F) form. The selective-inversion transformation is applied
// afterward via ChangeFrontType; LDL itself only
// performs the numeric factorization.
func LDL[F dsgraph.Field](tree *DistSymmFrontTree[F], opts ...front.LDLOption) error {
	return front.LDL(tree, opts...)
}

// LDLOption and WithPivotTolerance re-export front's LDL configuration so
// callers need not import front directly to tune it.
type LDLOption = front.LDLOption

func WithPivotTolerance(tol float64) LDLOption { return front.WithPivotTolerance(tol) }

// ChangeFrontType applies or reverts the selective-inversion
// transformation: selectivelyInvert true replaces each distributed front's
// leading unit-triangular block with its inverse (trading one-time work
// for faster repeated solves); false reverts it.
func ChangeFrontType[F dsgraph.Field](tree *DistSymmFrontTree[F], selectivelyInvert bool) error {
	return front.ChangeFrontType(tree, selectivelyInvert)
}

// Solve applies A x = b against tree's factorization. b and the returned
// vector are addressed in the reordered (symbolic.Info) column numbering;
// a caller building from an Info with a non-identity Perm is responsible
// for permuting its own right-hand side and un-permuting the result.
// Calling Solve repeatedly against the same tree reuses the one
// factorization across any number of right-hand sides.
func Solve[F dsgraph.Field](tree *DistSymmFrontTree[F], b []F) ([]F, error) {
	return front.Solve(tree, b)
}

// MemoryInfo, TopLeftMemoryInfo and BottomLeftMemoryInfo report the scalar
// (element) counts a rank holds across its front tree, and FactorizationWork
// / SolveWork estimate the floating-point operation counts LDL and Solve
// perform.
func MemoryInfo[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	return front.MemoryInfo(tree)
}

func TopLeftMemoryInfo[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	return front.TopLeftMemoryInfo(tree)
}

func BottomLeftMemoryInfo[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	return front.BottomLeftMemoryInfo(tree)
}

func FactorizationWork[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	return front.FactorizationWork(tree)
}

func SolveWork[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	return front.SolveWork(tree)
}
