package front

import "github.com/katalvlaran/multifront/dsgraph"

// MemoryInfo reports the total number of scalar entries (of type F) this
// rank holds across every front it participates in: the leading size x
// size block, the trailing (|lowerStruct|) x size block, diag, and the
// work accumulator.
func MemoryInfo[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	var total int64
	for _, f := range tree.fronts {
		if f == nil {
			continue
		}
		total += int64(len(f.frontL)) + int64(len(f.diag)) + int64(len(f.work))
	}
	return total
}

// TopLeftMemoryInfo reports scalar entries held in fronts' leading (own
// columns) blocks only — the part that becomes the factor L's diagonal
// supernode.
func TopLeftMemoryInfo[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	var total int64
	for _, f := range tree.fronts {
		if f == nil {
			continue
		}
		total += int64(f.size) * int64(f.size)
	}
	return total
}

// BottomLeftMemoryInfo reports scalar entries held in fronts' trailing
// (update-row) blocks only — the off-diagonal rows of the factor L that
// couple each node to its ancestors.
func BottomLeftMemoryInfo[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	var total int64
	for _, f := range tree.fronts {
		if f == nil {
			continue
		}
		total += int64(len(f.lowerStruct)) * int64(f.size)
	}
	return total
}

// FactorizationWork estimates the floating-point operation count LDL
// performs across every front this rank holds: size^3/3 for the
// unblocked leading-block factorization, size^2 * |lowerStruct| for the
// trailing block's solve against it, and |lowerStruct|^2 * size for the
// rank-k Schur complement update each front contributes.
func FactorizationWork[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	var total int64
	for _, f := range tree.fronts {
		if f == nil {
			continue
		}
		n, l := int64(f.size), int64(len(f.lowerStruct))
		total += n * n * n / 3
		total += n * n * l
		total += l * l * n
	}
	return total
}

// SolveWork estimates the per-solve floating-point operation count: one
// forward and one backward triangular pass per front, each O(size * (size
// + |lowerStruct|)).
func SolveWork[F dsgraph.Field](tree *DistSymmFrontTree[F]) int64 {
	var total int64
	for _, f := range tree.fronts {
		if f == nil {
			continue
		}
		n, l := int64(f.size), int64(len(f.lowerStruct))
		total += 2 * n * (n + l)
	}
	return total
}
