package symbolic

// Info is the full elimination (separator) tree produced by a nested
// dissection ordering: a flat list of nodes plus the index of the root.
// Nodes are not required to be stored in any particular order; PostOrder
// and PreOrder compute traversal orders on demand from the Parent/Children
// links.
type Info struct {
	N     int // size of the original (and reordered) matrix
	Nodes []*NodeInfo
	Root  int // index into Nodes

	// Perm maps an original-matrix row/column to its column in the
	// reordered numbering Nodes' Offset/Size ranges are expressed in.
	// Perm[i] == -1 means row i was not placed by whoever built this Info;
	// front.BuildFrontTree fails with ErrNodeIndexOutOfRange on a matrix
	// entry in such a row or column. A nil Perm means the original and
	// reordered numberings coincide.
	Perm []int
}

// NewInfo validates and wraps nodes into an Info. It checks that exactly
// one node has Parent == -1, that every Children/Parent reference is in
// range, and that the links form a tree (no cycles, every node reachable
// from the root).
func NewInfo(n int, nodes []*NodeInfo) (*Info, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	root := -1
	nextOffset := 0
	for i, nd := range nodes {
		if nd.ID != i {
			return nil, ErrNodeIndexOutOfRange
		}
		if nd.Offset != nextOffset {
			return nil, ErrOffsetsNotSequential
		}
		nextOffset += nd.Size
		if nd.Parent < -1 || nd.Parent >= len(nodes) {
			return nil, ErrNodeIndexOutOfRange
		}
		for _, c := range nd.Children {
			if c < 0 || c >= len(nodes) {
				return nil, ErrNodeIndexOutOfRange
			}
		}
		if nd.Parent == -1 {
			if root != -1 {
				return nil, ErrMultipleRoots
			}
			root = i
		}
	}
	if root == -1 {
		return nil, ErrNoRoot
	}

	info := &Info{N: n, Nodes: nodes, Root: root}
	if err := info.checkAcyclic(); err != nil {
		return nil, err
	}
	if err := info.checkRelInds(); err != nil {
		return nil, err
	}
	return info, nil
}

// checkRelInds verifies that every node's LeftRelInds/RightRelInds slot, if
// present, has exactly as many entries as the corresponding child's
// LowerStruct — the precondition every scatter in package front relies on
// to address a child's update rows within the parent's extended index
// space without an out-of-range write.
func (info *Info) checkRelInds() error {
	for _, nd := range info.Nodes {
		for slot, c := range nd.Children {
			rel := nd.LeftRelInds
			if slot == 1 {
				rel = nd.RightRelInds
			}
			if len(rel) != len(info.Nodes[c].LowerStruct) {
				return ErrRelIndsMismatch
			}
		}
	}
	return nil
}

// checkAcyclic walks every node to the root, bounding the walk by len(Nodes)
// hops; a tree with that many nodes cannot require more hops to reach the
// root, so exceeding it means a cycle.
func (info *Info) checkAcyclic() error {
	limit := len(info.Nodes)
	for _, nd := range info.Nodes {
		cur := nd.ID
		for hops := 0; cur != -1; hops++ {
			if hops > limit {
				return ErrCycle
			}
			cur = info.Nodes[cur].Parent
		}
	}
	return nil
}

// Node returns the node at index id, or an error if id is out of range.
func (info *Info) Node(id int) (*NodeInfo, error) {
	if id < 0 || id >= len(info.Nodes) {
		return nil, ErrNodeIndexOutOfRange
	}
	return info.Nodes[id], nil
}

// PostOrder returns node IDs such that every node appears after all of its
// children: the order numeric factorization must process nodes in, since a
// node's front cannot be assembled until its children have contributed
// their updates.
func (info *Info) PostOrder() []int {
	order := make([]int, 0, len(info.Nodes))
	var visit func(id int)
	visit = func(id int) {
		nd := info.Nodes[id]
		for _, c := range nd.Children {
			visit(c)
		}
		order = append(order, id)
	}
	visit(info.Root)
	return order
}

// PreOrder returns node IDs such that every node appears before its
// children: the order the backward solve sweep (and front-type broadcast
// down the tree) must process nodes in.
func (info *Info) PreOrder() []int {
	order := make([]int, 0, len(info.Nodes))
	var visit func(id int)
	visit = func(id int) {
		order = append(order, id)
		nd := info.Nodes[id]
		for _, c := range nd.Children {
			visit(c)
		}
	}
	visit(info.Root)
	return order
}

// NodeOfColumn returns the ID of the node owning reordered column col, via
// binary search over Nodes (valid because NewInfo requires nodes to be
// supplied in sequential-offset order by ID).
func (info *Info) NodeOfColumn(col int) (int, error) {
	if col < 0 || col >= info.N {
		return 0, ErrNodeIndexOutOfRange
	}
	lo, hi := 0, len(info.Nodes)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if info.Nodes[mid].Offset <= col {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

// NumLocalNodes returns the count of nodes with an empty GridRanks, i.e.
// nodes a single rank factors without distributed arithmetic.
func (info *Info) NumLocalNodes() int {
	n := 0
	for _, nd := range info.Nodes {
		if !nd.IsDistributed() {
			n++
		}
	}
	return n
}

// NumDistNodes returns the count of nodes whose front spans more than one
// rank.
func (info *Info) NumDistNodes() int {
	return len(info.Nodes) - info.NumLocalNodes()
}
