package dsgraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/multifront/comm"
)

// Field is the scalar domain a DistSparseMatrix can hold: real or complex
// double precision, covering both the plain-symmetric and Hermitian cases.
type Field interface {
	~float64 | ~complex128
}

// DistSparseMatrix is DistSparseGraph plus a parallel values slice: a 1-D
// row-distributed sparse matrix container. It mirrors DistSparseGraph's
// assembling lifecycle exactly, with Update replacing Insert to also
// record a value.
type DistSparseMatrix[F Field] struct {
	mu   sync.Mutex
	dist RowDistribution
	rank int

	assembling bool
	frozen     bool

	sources []int
	targets []int
	values  []F

	localEntryOffsets []int
}

// NewDistSparseMatrix constructs an empty, unfrozen n x n DistSparseMatrix
// distributed across world's ranks.
func NewDistSparseMatrix[F Field](world comm.Comm, n int) (*DistSparseMatrix[F], error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	return &DistSparseMatrix[F]{
		dist: NewRowDistribution(n, world.Size()),
		rank: world.Rank(),
	}, nil
}

func (m *DistSparseMatrix[F]) N() int                         { return m.dist.N() }
func (m *DistSparseMatrix[F]) FirstLocalRow() int             { return m.dist.FirstLocalRow(m.rank) }
func (m *DistSparseMatrix[F]) LocalHeight() int                { return m.dist.LocalHeight(m.rank) }
func (m *DistSparseMatrix[F]) Distribution() RowDistribution  { return m.dist }

// StartAssembly opens an insertion window.
func (m *DistSparseMatrix[F]) StartAssembly() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.assembling {
		return ErrAlreadyAssembling
	}
	m.assembling = true
	m.frozen = false
	return nil
}

// Reserve pre-allocates capacity for nnz additional local entries.
func (m *DistSparseMatrix[F]) Reserve(nnz int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.assembling {
		return ErrNotAssembling
	}
	if cap(m.sources)-len(m.sources) < nnz {
		n := len(m.sources)
		gs := make([]int, n, n+nnz)
		copy(gs, m.sources)
		m.sources = gs
		gt := make([]int, n, n+nnz)
		copy(gt, m.targets)
		m.targets = gt
		gv := make([]F, n, n+nnz)
		copy(gv, m.values)
		m.values = gv
	}
	return nil
}

// Update records entry A[row,col] = v. row must lie in this rank's local
// row range; col must lie in [0, N()). Each (row,col) is expected to be
// inserted at most once per window (see dsgraph package docs / DESIGN.md).
func (m *DistSparseMatrix[F]) Update(row, col int, v F) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.assembling {
		return ErrNotAssembling
	}
	first, height := m.dist.FirstLocalRow(m.rank), m.dist.LocalHeight(m.rank)
	if row < first || row >= first+height {
		return ErrRowOutOfRange
	}
	if col < 0 || col >= m.dist.N() {
		return ErrColOutOfRange
	}
	m.sources = append(m.sources, row)
	m.targets = append(m.targets, col)
	m.values = append(m.values, v)
	return nil
}

// StopAssembly freezes the matrix: sorts local entries by (source,target),
// collapses adjacent duplicates (keeping the first occurrence; see
// DESIGN.md for the duplicate-insert policy decision), and builds the CSR
// row-offset table.
func (m *DistSparseMatrix[F]) StopAssembly() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.assembling {
		return ErrNotAssembling
	}
	if len(m.sources) != len(m.targets) || len(m.targets) != len(m.values) {
		return ErrParallelArrayMismatch
	}
	m.sortAndDedup()
	m.buildOffsets()
	m.assembling = false
	m.frozen = true
	return nil
}

func (m *DistSparseMatrix[F]) sortAndDedup() {
	n := len(m.sources)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if m.sources[a] != m.sources[b] {
			return m.sources[a] < m.sources[b]
		}
		return m.targets[a] < m.targets[b]
	})
	sources := make([]int, 0, n)
	targets := make([]int, 0, n)
	values := make([]F, 0, n)
	for k, i := range idx {
		if k > 0 {
			prev := idx[k-1]
			if m.sources[i] == m.sources[prev] && m.targets[i] == m.targets[prev] {
				continue // keep the first-sorted occurrence's value
			}
		}
		sources = append(sources, m.sources[i])
		targets = append(targets, m.targets[i])
		values = append(values, m.values[i])
	}
	m.sources, m.targets, m.values = sources, targets, values
}

func (m *DistSparseMatrix[F]) buildOffsets() {
	height := m.dist.LocalHeight(m.rank)
	first := m.dist.FirstLocalRow(m.rank)
	offsets := make([]int, height+1)
	for _, row := range m.sources {
		offsets[row-first+1]++
	}
	for i := 0; i < height; i++ {
		offsets[i+1] += offsets[i]
	}
	m.localEntryOffsets = offsets
}

// NumLocalEntries returns the number of local entries after StopAssembly.
func (m *DistSparseMatrix[F]) NumLocalEntries() int { return len(m.sources) }

func (m *DistSparseMatrix[F]) Row(e int) (int, error) {
	if !m.frozen {
		return 0, ErrNotFrozen
	}
	if e < 0 || e >= len(m.sources) {
		return 0, ErrEntryOutOfRange
	}
	return m.sources[e], nil
}

func (m *DistSparseMatrix[F]) Col(e int) (int, error) {
	if !m.frozen {
		return 0, ErrNotFrozen
	}
	if e < 0 || e >= len(m.targets) {
		return 0, ErrEntryOutOfRange
	}
	return m.targets[e], nil
}

func (m *DistSparseMatrix[F]) Value(e int) (F, error) {
	var zero F
	if !m.frozen {
		return zero, ErrNotFrozen
	}
	if e < 0 || e >= len(m.values) {
		return zero, ErrEntryOutOfRange
	}
	return m.values[e], nil
}

// LocalEntryOffset returns the CSR row pointer for local row r (an index
// into this rank's own row block).
func (m *DistSparseMatrix[F]) LocalEntryOffset(r int) (int, error) {
	if !m.frozen {
		return 0, ErrNotFrozen
	}
	if r < 0 || r > m.dist.LocalHeight(m.rank) {
		return 0, ErrEntryOutOfRange
	}
	return m.localEntryOffsets[r], nil
}

// NumConnections returns the number of local entries owned by local row r.
func (m *DistSparseMatrix[F]) NumConnections(r int) (int, error) {
	a, err := m.LocalEntryOffset(r)
	if err != nil {
		return 0, err
	}
	b, err := m.LocalEntryOffset(r + 1)
	if err != nil {
		return 0, err
	}
	return b - a, nil
}
