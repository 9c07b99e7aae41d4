package front

import (
	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/dsgraph"
)

// FrontStorage tags how a front's dense data is held: a single rank's flat
// buffer, or one replica per rank of a distributed process grid. See the
// package doc for why Dist1D/Dist2D both resolve to a replicated local
// buffer rather than a genuinely block-cyclic distributed one.
type FrontStorage int

const (
	// Local means exactly one rank (Owner) holds this front.
	Local FrontStorage = iota
	// Dist1D means the front is replicated across a 1-D column-cyclic
	// process set.
	Dist1D
	// Dist2D means the front is replicated across an r x c process grid.
	Dist2D
)

// frontType is the coherent tuple of booleans a front's storage state
// carries: only a documented subset of combinations is ever legal,
// enforced by the transitions transform.go allows. Block-panel
// factorization and intra-front pivoting are not modeled — see
// DESIGN.md's Non-goals for why — so this tuple omits the `block` and
// `intraPivoted` flags a full LDL_BLOCK/LDL_INTRAPIV variant set would add.
type frontType struct {
	factored            bool
	twoD                bool
	selectivelyInverted bool
	hermitian           bool
}

// Front is one node's dense frontal matrix. frontL is the logical [L; E]
// stack: the leading size x size block is the node's own (unit-lower
// triangular, once factored) columns; the trailing (len(lowerStruct)) x
// size block is the update rows contributed to ancestors. work holds the
// Schur-complement accumulator during assembly and factorization, sized
// len(lowerStruct) x len(lowerStruct), and is released once consumed by
// the parent.
type Front[F dsgraph.Field] struct {
	id          int
	size        int
	lowerStruct []int

	ft frontType

	frontL []F // row-major, (size+len(lowerStruct)) x size
	diag   []F // length size, D once factored
	work   []F // row-major, len(lowerStruct) x len(lowerStruct)

	y []F // transient forward/backward solve scratch, (size+len(lowerStruct)) long

	storage FrontStorage
	owner   int       // valid when storage == Local
	grid    comm.Comm // valid when storage != Local
}

// Size returns the number of columns this front's node owns.
func (f *Front[F]) Size() int { return f.size }

// LowerStruct returns the absolute column indices of the ancestor rows this
// front updates. The returned slice must not be mutated.
func (f *Front[F]) LowerStruct() []int { return f.lowerStruct }

// IsFactored reports whether LDL has been applied to this front.
func (f *Front[F]) IsFactored() bool { return f.ft.factored }

// IsDistributed reports whether this front is replicated across more than
// one rank.
func (f *Front[F]) IsDistributed() bool { return f.storage != Local }

// at returns frontL[r][c] for the row-major (size+len(lowerStruct)) x size
// layout.
func (f *Front[F]) at(r, c int) F { return f.frontL[r*f.size+c] }

func (f *Front[F]) set(r, c int, v F) { f.frontL[r*f.size+c] = v }

func (f *Front[F]) addAt(r, c int, v F) { f.frontL[r*f.size+c] += v }

func (f *Front[F]) workAt(r, c int) F { return f.work[r*len(f.lowerStruct)+c] }

func (f *Front[F]) workSet(r, c int, v F) { f.work[r*len(f.lowerStruct)+c] = v }

func (f *Front[F]) workAddAt(r, c int, v F) { f.work[r*len(f.lowerStruct)+c] += v }

func newFront[F dsgraph.Field](id, size int, lowerStruct []int) *Front[F] {
	m := size + len(lowerStruct)
	return &Front[F]{
		id:          id,
		size:        size,
		lowerStruct: lowerStruct,
		frontL:      make([]F, m*size),
		diag:        make([]F, size),
		work:        make([]F, len(lowerStruct)*len(lowerStruct)),
	}
}
