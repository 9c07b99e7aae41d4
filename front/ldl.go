package front

import (
	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/dsgraph"
	"github.com/katalvlaran/multifront/symbolic"
)

// workEntry is the wire payload a node's scatter-to-parent step sends: r
// and c are already expressed in the parent's own extended index space
// (LeftRelInds/RightRelInds having been applied by the sender), so the
// receiver only needs to check r,c against the parent's own size to know
// whether the entry lands in frontL or in work.
type workEntry[F dsgraph.Field] struct {
	node int
	r, c int
	val  F
}

func relIndsForChild(parent *symbolic.NodeInfo, childID int) []int {
	if len(parent.Children) > 0 && parent.Children[0] == childID {
		return parent.LeftRelInds
	}
	return parent.RightRelInds
}

// LDL factors every front in tree bottom-up (post-order): for each node, it
// factors the node's own leading block (factorLeading), folds the result
// into the trailing update rows (applySchurUpdate), and scatters that
// update into the parent's storage — into frontL if the destination column
// falls within the parent's own columns, otherwise into the parent's work
// accumulator. The scatter between a node and its parent is a single
// world-wide sparse all-to-all per non-root node, so every rank
// (participant or not) must call LDL together.
func LDL[F dsgraph.Field](tree *DistSymmFrontTree[F], opts ...LDLOption) error {
	if tree.factored {
		return ErrAlreadyFactored
	}
	o := applyLDLOptions(opts)
	info, world := tree.info, tree.world

	for _, id := range info.PostOrder() {
		node := info.Nodes[id]
		f := tree.fronts[id]

		if f != nil {
			if err := factorLeading(f, o.pivotTol); err != nil {
				return err
			}
			applySchurUpdate(f)
		}

		if node.Parent < 0 {
			continue
		}
		parent := info.Nodes[node.Parent]

		// Every replica of a distributed front holds the same work, so only
		// the first rank of the node's grid sends it.
		send := make([][]workEntry[F], world.Size())
		if f != nil && participantsOf(node)[0] == world.GlobalRank() {
			rel := relIndsForChild(parent, id)
			n := len(f.lowerStruct)
			dsts := participantsOf(parent)
			for r := 0; r < n; r++ {
				for c := 0; c <= r; c++ {
					entry := workEntry[F]{node: node.Parent, r: rel[r], c: rel[c], val: f.workAt(r, c)}
					for _, dst := range dsts {
						send[dst] = append(send[dst], entry)
					}
				}
			}
		}
		if f != nil {
			f.work = nil // consumed: its entries now travel in send
		}

		recv := comm.AllToAllv(world, send)
		for _, peerEntries := range recv {
			for _, e := range peerEntries {
				pf := tree.fronts[e.node]
				if pf == nil {
					continue
				}
				if err := depositIntoParent(pf, e); err != nil {
					return err
				}
			}
		}
	}

	tree.factored = true
	return nil
}

// depositIntoParent places an update entry addressed in pf's extended index
// space (own columns 0..size-1, then ancestor columns size..): if the
// destination column falls within pf's own columns the entry belongs in
// frontL (whose rows already span the full extended range); otherwise it
// belongs in pf's work accumulator, reindexed relative to size. Like the
// original-matrix assembly path in tree.go, this only ever accumulates
// into the lower triangle; a child scatter that lands above the diagonal
// indicates a malformed LeftRelInds/RightRelInds mapping.
func depositIntoParent[F dsgraph.Field](pf *Front[F], e workEntry[F]) error {
	if e.r < e.c {
		return ErrUpperTriangleWrite
	}
	if e.c < pf.size {
		pf.addAt(e.r, e.c, e.val)
		return nil
	}
	pf.workAddAt(e.r-pf.size, e.c-pf.size, e.val)
	return nil
}
