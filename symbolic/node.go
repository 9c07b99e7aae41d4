package symbolic

// NodeInfo describes one node of the elimination tree: the contiguous block
// of the reordered matrix it owns, its lower (below-diagonal) structure, and
// its place in the tree.
//
// LowerStruct holds the absolute column indices (in the reordered
// numbering) of the rows below this node's diagonal block that carry fill
// from eliminating it — i.e. the node's own contribution to its parent's
// and ancestors' structure.
// OrigLowerStruct and OrigLowerRelInds instead describe the structure
// coming directly from the original (unfactored) sparse matrix, before any
// fill is considered; OrigLowerRelInds maps each original-matrix lower
// entry to its position within LowerStruct. Package front's assembly does
// not read them: it locates each entry's row by searching LowerStruct.
//
// LeftRelInds and RightRelInds belong to a node with children, not to the
// child itself: LeftRelInds[i] gives the position, in this node's own
// extended index space (its size own columns followed by its
// LowerStruct), that index i of Children[0]'s LowerStruct/work lands at;
// RightRelInds is the same for Children[1]. A leaf, or a node with one
// child, leaves the unused slot(s) empty.
type NodeInfo struct {
	ID     int // index into Info.Nodes
	Size   int // number of columns (supernode width) this node owns
	Offset int // first column/row this node owns, in the reordered matrix

	LowerStruct []int

	OrigLowerStruct  []int
	OrigLowerRelInds []int

	Parent   int // -1 for the root
	Children []int

	LeftRelInds  []int
	RightRelInds []int

	// GridRanks lists the (global) ranks that jointly own this node's
	// front. Empty means the node is "local": a single rank (Owner) holds
	// and factors it without distributed arithmetic.
	GridRanks []int
	Owner     int // valid only when GridRanks is empty
}

// IsDistributed reports whether this node's front spans more than one
// rank.
func (n *NodeInfo) IsDistributed() bool { return len(n.GridRanks) > 0 }

// IsLeaf reports whether this node has no children.
func (n *NodeInfo) IsLeaf() bool { return len(n.Children) == 0 }

// IsRoot reports whether this node is the tree root.
func (n *NodeInfo) IsRoot() bool { return n.Parent < 0 }
