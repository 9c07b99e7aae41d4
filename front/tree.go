package front

import (
	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/dsgraph"
	"github.com/katalvlaran/multifront/symbolic"
)

// DistSymmFrontTree is the assembled front tree of info: one Front per
// node this rank participates in (nil for nodes it does not), plus the
// per-node communicator a distributed node's grid ranks use to stay in
// sync.
type DistSymmFrontTree[F dsgraph.Field] struct {
	info     *symbolic.Info
	world    comm.Comm
	fronts   []*Front[F] // indexed by node ID; nil where this rank has no front
	comms    []comm.Comm // indexed by node ID; zero Comm for local nodes and nodes this rank excludes
	factored bool
}

// IsFactored reports whether LDL has completed successfully on this tree.
func (t *DistSymmFrontTree[F]) IsFactored() bool { return t.factored }

// Info returns the elimination tree this front tree was built over.
func (t *DistSymmFrontTree[F]) Info() *symbolic.Info { return t.info }

// Front returns this rank's Front for node id, or nil if this rank does not
// participate in that node.
func (t *DistSymmFrontTree[F]) Front(id int) *Front[F] { return t.fronts[id] }

type matEntry[F dsgraph.Field] struct {
	node, row, col int
	val            F
}

func participantsOf(node *symbolic.NodeInfo) []int {
	if node.IsDistributed() {
		return node.GridRanks
	}
	return []int{node.Owner}
}

// lowerPositions maps, for node, each absolute ancestor column in
// node.LowerStruct to its row offset within the trailing E block of
// node.frontL.
func lowerPositions(node *symbolic.NodeInfo) map[int]int {
	pos := make(map[int]int, len(node.LowerStruct))
	for i, col := range node.LowerStruct {
		pos[col] = i
	}
	return pos
}

// BuildFrontTree assembles the front tree for info from mat: it
// redistributes mat's local entries, through a single sparse all-to-all
// over world, to the rank(s) that own each entry's destination node,
// placing each into the correct cell of that node's frontL. Distributed
// nodes receive the same entries on every rank in their process grid, per
// the package's replicated-local-compute model.
func BuildFrontTree[F dsgraph.Field](world comm.Comm, mat *dsgraph.DistSparseMatrix[F], info *symbolic.Info) (*DistSymmFrontTree[F], error) {
	if mat.N() != info.N {
		return nil, ErrDimensionMismatch
	}

	comms := make([]comm.Comm, len(info.Nodes))
	for _, id := range info.PostOrder() {
		node := info.Nodes[id]
		if !node.IsDistributed() {
			continue
		}
		color := -1
		for _, r := range node.GridRanks {
			if r == world.GlobalRank() {
				color = 0
				break
			}
		}
		comms[id] = world.Split(color, world.Rank())
	}

	perm := info.Perm
	identity := perm == nil

	send := make([][]matEntry[F], world.Size())
	for e := 0; e < mat.NumLocalEntries(); e++ {
		row, err := mat.Row(e)
		if err != nil {
			return nil, err
		}
		col, err := mat.Col(e)
		if err != nil {
			return nil, err
		}
		val, err := mat.Value(e)
		if err != nil {
			return nil, err
		}

		rr, cc := row, col
		if !identity {
			rr, cc = perm[row], perm[col]
		}
		hi, lo, v := rr, cc, val
		if lo > hi {
			// The permutation flipped this entry out of the lower triangle:
			// the stored value is A[rr,cc], but (hi,lo)=(cc,rr) is the
			// position we keep, which holds A[cc,rr] = conj(A[rr,cc]) for a
			// Hermitian matrix (a no-op conjugate for real fields).
			hi, lo = lo, hi
			v = conjOf(v)
		}

		nodeID, err := info.NodeOfColumn(lo)
		if err != nil {
			return nil, err
		}
		node := info.Nodes[nodeID]
		localCol := lo - node.Offset

		var localRow int
		if hi < node.Offset+node.Size {
			localRow = hi - node.Offset
		} else {
			pos := lowerPositions(node)
			idx, ok := pos[hi]
			if !ok {
				continue // entry falls outside this node's structure (symbolic fixture is incomplete); drop it
			}
			localRow = node.Size + idx
		}

		entry := matEntry[F]{node: nodeID, row: localRow, col: localCol, val: v}
		for _, dst := range participantsOf(node) {
			send[dst] = append(send[dst], entry)
		}
	}

	recv := comm.AllToAllv(world, send)

	fronts := make([]*Front[F], len(info.Nodes))
	for id, node := range info.Nodes {
		if node.IsDistributed() {
			if comms[id].Size() == 0 {
				continue
			}
		} else if node.Owner != world.GlobalRank() {
			continue
		}
		f := newFront[F](id, node.Size, node.LowerStruct)
		if node.IsDistributed() {
			f.storage = Dist2D
			f.grid = comms[id]
		} else {
			f.storage = Local
			f.owner = node.Owner
		}
		f.ft.hermitian = isHermitianField[F]()
		fronts[id] = f
	}

	for _, peerEntries := range recv {
		for _, e := range peerEntries {
			f := fronts[e.node]
			if f == nil {
				continue
			}
			if e.row < e.col {
				return nil, ErrUpperTriangleWrite
			}
			f.set(e.row, e.col, e.val)
		}
	}

	return &DistSymmFrontTree[F]{info: info, world: world, fronts: fronts, comms: comms}, nil
}

// isHermitianField reports whether F is a complex field, in which case
// fronts carry the Hermitian (conjugate-transpose) stance rather than the
// plain-symmetric one.
func isHermitianField[F dsgraph.Field]() bool {
	var zero F
	switch any(zero).(type) {
	case complex128:
		return true
	default:
		return false
	}
}
