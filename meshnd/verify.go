package meshnd

import "github.com/katalvlaran/multifront/symbolic"

// VerifySeparator checks the defining correctness property of a nested
// dissection node with two children: once node's own columns and every
// ancestor separator above it are removed from the mesh, the two children's
// cells must fall into disjoint connected components. A faulty bisection —
// one that leaves a path between the two children's regions bypassing the
// separator — would let fill leak across the elimination tree in a way
// LowerStruct never accounts for.
//
// Ported from gridgraph's flood-fill connected-components walk: here the
// land/water value threshold is replaced by "was this cell's column
// assigned to an excluded (node-or-ancestor) node", and the 2-D 4/8
// neighbor stencil is replaced by the mesh's 3-D 7-point stencil.
func VerifySeparator(info *symbolic.Info, mesh *Mesh, nodeID int) (bool, error) {
	node, err := info.Node(nodeID)
	if err != nil {
		return false, err
	}
	if len(node.Children) != 2 {
		return true, nil // nothing to separate
	}

	excluded := excludedCells(info, mesh, nodeID)
	leftSeeds := cellsOfSubtree(info, mesh, node.Children[0])
	rightSeeds := cellsOfSubtree(info, mesh, node.Children[1])

	leftComp := floodFill(mesh, leftSeeds, excluded)
	for cell := range rightSeeds {
		if leftComp[cell] {
			return false, nil
		}
	}
	return true, nil
}

// excludedCells returns every original mesh cell whose reordered column
// falls within nodeID's own range or any of its ancestors'.
func excludedCells(info *symbolic.Info, mesh *Mesh, nodeID int) map[int]bool {
	excluded := make(map[int]bool)
	for id := nodeID; id >= 0; {
		node := info.Nodes[id]
		for cell := 0; cell < mesh.N(); cell++ {
			col := cell
			if info.Perm != nil {
				col = info.Perm[cell]
			}
			if col >= node.Offset && col < node.Offset+node.Size {
				excluded[cell] = true
			}
		}
		id = node.Parent
	}
	return excluded
}

// cellsOfSubtree returns every original mesh cell whose reordered column
// falls within any node in id's subtree.
func cellsOfSubtree(info *symbolic.Info, mesh *Mesh, id int) map[int]bool {
	lo, hi := subtreeColumnRange(info, id)
	cells := make(map[int]bool)
	for cell := 0; cell < mesh.N(); cell++ {
		col := cell
		if info.Perm != nil {
			col = info.Perm[cell]
		}
		if col >= lo && col < hi {
			cells[cell] = true
		}
	}
	return cells
}

// subtreeColumnRange returns the contiguous [lo,hi) column range id's
// subtree occupies: nested dissection's post-order flatten numbers a
// subtree's columns contiguously, ending at its own node's range.
func subtreeColumnRange(info *symbolic.Info, id int) (lo, hi int) {
	node := info.Nodes[id]
	lo, hi = node.Offset, node.Offset+node.Size
	for _, c := range node.Children {
		clo, chi := subtreeColumnRange(info, c)
		if clo < lo {
			lo = clo
		}
		if chi > hi {
			hi = chi
		}
	}
	return lo, hi
}

// floodFill runs a BFS over mesh's 7-point stencil starting from every cell
// in seeds, refusing to cross into any cell in excluded, and returns the
// full set of cells reached (seeds included).
func floodFill(mesh *Mesh, seeds map[int]bool, excluded map[int]bool) map[int]bool {
	visited := make(map[int]bool, len(seeds))
	queue := make([]int, 0, len(seeds))
	for cell := range seeds {
		if excluded[cell] {
			continue
		}
		visited[cell] = true
		queue = append(queue, cell)
	}
	for qi := 0; qi < len(queue); qi++ {
		cell := queue[qi]
		x, y, z := mesh.Coord(cell)
		for _, off := range stencilOffsets {
			nx, ny, nz := x+off[0], y+off[1], z+off[2]
			if !mesh.InBounds(nx, ny, nz) {
				continue
			}
			nbr := mesh.Index(nx, ny, nz)
			if excluded[nbr] || visited[nbr] {
				continue
			}
			visited[nbr] = true
			queue = append(queue, nbr)
		}
	}
	return visited
}
