package front

import (
	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/dsgraph"
)

// vecEntry is the scatter payload solveForward/solveBackward exchange: idx
// addresses a position in the destination front's y scratch (for the
// forward direction, a position in the parent's extended index space, own
// columns then trailing block; for the backward direction, a position in a
// child's trailing block).
type vecEntry[F dsgraph.Field] struct {
	node int
	idx  int
	val  F
}

// Solve applies Ax = b using tree's LDL factorization: forward substitution
// (post-order), an element-wise diagonal scaling folded into the same
// pass, and backward substitution (pre-order). b and the returned vector
// are addressed in the reordered (symbolic.Info) numbering already —
// callers that built tree from an Info with a non-identity Perm are
// responsible for permuting their own right-hand side and un-permuting
// the result.
func Solve[F dsgraph.Field](tree *DistSymmFrontTree[F], b []F) ([]F, error) {
	if !tree.factored {
		return nil, ErrNotFactored
	}
	if len(b) != tree.info.N {
		return nil, ErrDimensionMismatch
	}

	for _, f := range tree.fronts {
		if f != nil {
			f.y = nil
		}
	}
	if err := solveForward(tree, b); err != nil {
		return nil, err
	}
	solveBackward(tree)

	x := make([]F, tree.info.N)
	for id, f := range tree.fronts {
		if f == nil {
			continue
		}
		node := tree.info.Nodes[id]
		if participantsOf(node)[0] != tree.world.GlobalRank() {
			continue
		}
		copy(x[node.Offset:node.Offset+node.Size], f.y[:f.size])
	}
	// Each node's slice is contributed by exactly one rank (the first of
	// its grid, for a replicated front); reduce so every rank ends up with
	// the full solution vector. comm.AllReduceSum
	// only accepts scalar fields, so the reduction is done one rank's
	// contribution at a time via Broadcast.
	total := make([]F, len(x))
	for src := 0; src < tree.world.Size(); src++ {
		contrib := comm.Broadcast(tree.world, src, x)
		for i, v := range contrib {
			total[i] += v
		}
	}
	return total, nil
}

func solveForward[F dsgraph.Field](tree *DistSymmFrontTree[F], b []F) error {
	info, world := tree.info, tree.world

	for _, id := range info.PostOrder() {
		node := info.Nodes[id]
		f := tree.fronts[id]

		if f != nil {
			m := f.size + len(f.lowerStruct)
			// Children have already added their contributions into f.y.
			if f.y == nil {
				f.y = make([]F, m)
			}
			for i := 0; i < f.size; i++ {
				f.y[i] += b[node.Offset+i]
			}

			if f.ft.selectivelyInverted {
				// frontL's leading block already holds L_TL's inverse: the
				// leading solve is a direct matrix-vector product against
				// the original right-hand side rather than a substitution
				// sweep. The trailing (update) rows were never touched by
				// inversion, so they still hold L_BL and are folded in the
				// same way as the non-inverted path.
				rhs := make([]F, f.size)
				copy(rhs, f.y[:f.size])
				for i := 0; i < f.size; i++ {
					var sum F
					for k := 0; k <= i; k++ {
						sum += f.at(i, k) * rhs[k]
					}
					f.y[i] = sum
				}
				for i := f.size; i < m; i++ {
					for k := 0; k < f.size; k++ {
						f.y[i] -= f.at(i, k) * f.y[k]
					}
				}
			} else {
				for k := 0; k < f.size; k++ {
					for i := k + 1; i < m; i++ {
						f.y[i] -= f.at(i, k) * f.y[k]
					}
				}
			}
			for k := 0; k < f.size; k++ {
				f.y[k] *= invOf(f.diag[k])
			}
		}

		if node.Parent < 0 {
			continue
		}
		parent := info.Nodes[node.Parent]
		send := make([][]vecEntry[F], world.Size())
		if f != nil && participantsOf(node)[0] == world.GlobalRank() {
			rel := relIndsForChild(parent, id)
			dsts := participantsOf(parent)
			for r := 0; r < len(f.lowerStruct); r++ {
				v := f.y[f.size+r]
				entry := vecEntry[F]{node: node.Parent, idx: rel[r], val: v}
				for _, dst := range dsts {
					send[dst] = append(send[dst], entry)
				}
			}
		}

		recv := comm.AllToAllv(world, send)
		for _, peerEntries := range recv {
			for _, e := range peerEntries {
				pf := tree.fronts[e.node]
				if pf == nil {
					continue
				}
				if pf.y == nil {
					pf.y = make([]F, pf.size+len(pf.lowerStruct))
				}
				pf.y[e.idx] += e.val
			}
		}
	}
	return nil
}

func solveBackward[F dsgraph.Field](tree *DistSymmFrontTree[F]) {
	info, world := tree.info, tree.world

	for _, id := range info.PreOrder() {
		node := info.Nodes[id]
		f := tree.fronts[id]

		if f != nil {
			m := f.size + len(f.lowerStruct)
			if f.ft.selectivelyInverted {
				// Fold in the trailing (already-solved, received from the
				// parent) contribution first using the untouched L_BL rows,
				// then apply the leading block's stored inverse transpose
				// as a direct matrix-vector product in place of a
				// substitution sweep.
				rhs := make([]F, f.size)
				for k := 0; k < f.size; k++ {
					v := f.y[k]
					for i := f.size; i < m; i++ {
						v -= conjOf(f.at(i, k)) * f.y[i]
					}
					rhs[k] = v
				}
				for k := 0; k < f.size; k++ {
					var sum F
					for i := k; i < f.size; i++ {
						sum += conjOf(f.at(i, k)) * rhs[i]
					}
					f.y[k] = sum
				}
			} else {
				for k := f.size - 1; k >= 0; k-- {
					var sum F
					for i := k + 1; i < m; i++ {
						sum += conjOf(f.at(i, k)) * f.y[i]
					}
					f.y[k] -= sum
				}
			}
		}

		send := make([][]vecEntry[F], world.Size())
		for _, c := range node.Children {
			child := info.Nodes[c]
			rel := relIndsForChild(node, c)
			dsts := participantsOf(child)
			if f != nil {
				for r, extIdx := range rel {
					entry := vecEntry[F]{node: c, idx: child.Size + r, val: f.y[extIdx]}
					for _, dst := range dsts {
						send[dst] = append(send[dst], entry)
					}
				}
			}
		}

		recv := comm.AllToAllv(world, send)
		for _, peerEntries := range recv {
			for _, e := range peerEntries {
				cf := tree.fronts[e.node]
				if cf == nil {
					continue
				}
				if cf.y == nil {
					cf.y = make([]F, cf.size+len(cf.lowerStruct))
				}
				cf.y[e.idx] = e.val
			}
		}
	}
}
