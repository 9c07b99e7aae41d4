package meshnd

import (
	"sort"

	"github.com/katalvlaran/multifront/symbolic"
)

// box is one node of the recursive bisection tree before it is flattened
// into symbolic.NodeInfo form. A leaf box holds every cell in its region; a
// split box holds only the cells on the cutting plane (the separator) and
// points at the two sub-boxes either side of it.
type box struct {
	cells       []int // global mesh indices, in a fixed row-major sub-order
	left, right *box
}

func allCellsInBox(m *Mesh, lo, hi [3]int) []int {
	cells := make([]int, 0, (hi[0]-lo[0]+1)*(hi[1]-lo[1]+1)*(hi[2]-lo[2]+1))
	for z := lo[2]; z <= hi[2]; z++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for x := lo[0]; x <= hi[0]; x++ {
				cells = append(cells, m.Index(x, y, z))
			}
		}
	}
	return cells
}

func longestAxis(lo, hi [3]int) int {
	axis, best := 0, hi[0]-lo[0]
	for a := 1; a < 3; a++ {
		if hi[a]-lo[a] > best {
			axis, best = a, hi[a]-lo[a]
		}
	}
	return axis
}

// buildBoxTree recursively bisects [lo,hi] along its longest axis, taking
// the midplane as a separator, until a region's volume is at most leafSize.
func buildBoxTree(m *Mesh, lo, hi [3]int, leafSize int) *box {
	vol := (hi[0] - lo[0] + 1) * (hi[1] - lo[1] + 1) * (hi[2] - lo[2] + 1)
	if vol <= leafSize {
		return &box{cells: allCellsInBox(m, lo, hi)}
	}

	axis := longestAxis(lo, hi)
	mid := (lo[axis] + hi[axis]) / 2

	sepLo, sepHi := lo, hi
	sepLo[axis], sepHi[axis] = mid, mid
	sep := &box{cells: allCellsInBox(m, sepLo, sepHi)}

	if mid-1 >= lo[axis] {
		leftHi := hi
		leftHi[axis] = mid - 1
		sep.left = buildBoxTree(m, lo, leftHi, leafSize)
	}
	if mid+1 <= hi[axis] {
		rightLo := lo
		rightLo[axis] = mid + 1
		sep.right = buildBoxTree(m, rightLo, hi, leafSize)
	}
	return sep
}

// dissector accumulates the flattened node list and the cell geometry used
// to derive each node's lower structure.
type dissector struct {
	m       *Mesh
	nodes   []*symbolic.NodeInfo
	cellsOf map[int][]int // node ID -> cells owned, in front-column order
	owner   map[int]int   // global mesh cell -> owning node ID
	offset  int
}

// NestedDissection builds the elimination tree of a recursive-bisection
// ordering of m, and assigns the top levels of the tree (down to single-rank
// granularity) across a numProcesses-rank process grid. leafSize bounds the
// volume of a region before it becomes an unsplit leaf node; smaller values
// produce deeper, narrower trees.
func (m *Mesh) NestedDissection(leafSize, numProcesses int) (*symbolic.Info, error) {
	if leafSize <= 0 {
		leafSize = 1
	}
	if numProcesses <= 0 {
		return nil, ErrTooFewRanks
	}

	lo := [3]int{0, 0, 0}
	hi := [3]int{m.NX - 1, m.NY - 1, m.NZ - 1}
	root := buildBoxTree(m, lo, hi, leafSize)

	d := &dissector{
		m:       m,
		cellsOf: make(map[int][]int),
		owner:   make(map[int]int),
	}
	rootID := d.flatten(root, -1)
	d.fillLowerStructs(rootID)

	ranks := make([]int, numProcesses)
	for i := range ranks {
		ranks[i] = i
	}
	assignGrids(d.nodes, rootID, ranks)

	info, err := symbolic.NewInfo(m.N(), d.nodes)
	if err != nil {
		return nil, err
	}
	info.Perm = d.permutation()
	return info, nil
}

// permutation returns, for every original mesh cell, the reordered column
// its owning node placed it at.
func (d *dissector) permutation() []int {
	perm := make([]int, d.m.N())
	for id, cells := range d.cellsOf {
		base := d.nodes[id].Offset
		for i, cell := range cells {
			perm[cell] = base + i
		}
	}
	return perm
}

// flatten assigns IDs in post-order (children before parent), so a node's
// Offset always follows both of its children's column ranges.
func (d *dissector) flatten(b *box, parent int) int {
	var leftID, rightID = -1, -1
	if b.left != nil {
		leftID = d.flatten(b.left, -1)
	}
	if b.right != nil {
		rightID = d.flatten(b.right, -1)
	}

	id := len(d.nodes)
	node := &symbolic.NodeInfo{
		ID:     id,
		Size:   len(b.cells),
		Offset: d.offset,
		Parent: parent,
	}
	d.offset += node.Size
	d.cellsOf[id] = b.cells
	for _, c := range b.cells {
		d.owner[c] = id
	}
	if leftID >= 0 {
		node.Children = append(node.Children, leftID)
		d.nodes[leftID].Parent = id
	}
	if rightID >= 0 {
		node.Children = append(node.Children, rightID)
		d.nodes[rightID].Parent = id
	}
	d.nodes = append(d.nodes, node)
	return id
}

// fillLowerStructs computes, root-down, the full ancestor-chain LowerStruct
// of every node (a node's front extends over every ancestor separator, the
// standard nested-dissection fact that a subtree's fill only ever reaches
// the separators above it) plus the OrigLowerStruct subset the original
// 7-point stencil actually connects to. Because each node's LowerStruct is
// exactly "parent's own columns followed by parent's LowerStruct", a
// child's entries map into the parent's extended index space (own columns
// then LowerStruct) 1:1 by position — so a parent's LeftRelInds/
// RightRelInds (one slot per child) are always the identity permutation
// over that child's LowerStruct length.
func (d *dissector) fillLowerStructs(rootID int) {
	var visit func(id int)
	visit = func(id int) {
		node := d.nodes[id]
		if node.Parent >= 0 {
			parent := d.nodes[node.Parent]
			lower := make([]int, 0, parent.Size+len(parent.LowerStruct))
			for c := 0; c < parent.Size; c++ {
				lower = append(lower, parent.Offset+c)
			}
			lower = append(lower, parent.LowerStruct...)
			node.LowerStruct = lower
			node.OrigLowerStruct, node.OrigLowerRelInds = d.origLower(node)
		}
		for slot, c := range node.Children {
			visit(c)
			rel := identity(len(d.nodes[c].LowerStruct))
			if slot == 0 {
				node.LeftRelInds = rel
			} else {
				node.RightRelInds = rel
			}
		}
	}
	visit(rootID)
}

func identity(n int) []int {
	rel := make([]int, n)
	for i := range rel {
		rel[i] = i
	}
	return rel
}

func (d *dissector) origLower(node *symbolic.NodeInfo) ([]int, []int) {
	pos := make(map[int]int, len(node.LowerStruct))
	for i, col := range node.LowerStruct {
		pos[col] = i
	}

	seen := make(map[int]bool)
	var orig, rel []int
	for _, cell := range d.cellsOf[node.ID] {
		x, y, z := d.m.Coord(cell)
		for _, off := range stencilOffsets {
			nx, ny, nz := x+off[0], y+off[1], z+off[2]
			if !d.m.InBounds(nx, ny, nz) {
				continue
			}
			nbr := d.m.Index(nx, ny, nz)
			nbrNode, ok := d.owner[nbr]
			if !ok || nbrNode == node.ID {
				continue
			}
			col := columnOf(d, nbrNode, nbr)
			if idx, isAncestorCol := pos[col]; isAncestorCol && !seen[col] {
				seen[col] = true
				orig = append(orig, col)
				rel = append(rel, idx)
			}
		}
	}
	sort.Sort(byRel{orig, rel})
	return orig, rel
}

func columnOf(d *dissector, nodeID, cell int) int {
	cells := d.cellsOf[nodeID]
	base := d.nodes[nodeID].Offset
	for i, c := range cells {
		if c == cell {
			return base + i
		}
	}
	return -1
}

type byRel struct{ orig, rel []int }

func (b byRel) Len() int      { return len(b.rel) }
func (b byRel) Swap(i, j int) { b.orig[i], b.orig[j] = b.orig[j], b.orig[i]; b.rel[i], b.rel[j] = b.rel[j], b.rel[i] }
func (b byRel) Less(i, j int) bool { return b.rel[i] < b.rel[j] }

// assignGrids walks the tree pre-order from the root, handing each node the
// full set of ranks owned by its subtree; a node keeps GridRanks only while
// that set has more than one rank. Once a node's set narrows to one rank, it
// and everything below it is local, factored entirely by that single rank.
func assignGrids(nodes []*symbolic.NodeInfo, id int, ranks []int) {
	node := nodes[id]
	if len(ranks) <= 1 {
		node.Owner = ranks[0]
		for _, c := range node.Children {
			assignGrids(nodes, c, ranks)
		}
		return
	}

	node.GridRanks = append([]int(nil), ranks...)
	switch len(node.Children) {
	case 1:
		assignGrids(nodes, node.Children[0], ranks)
	case 2:
		half := len(ranks) / 2
		assignGrids(nodes, node.Children[0], ranks[:half])
		assignGrids(nodes, node.Children[1], ranks[half:])
	}
}
