package dsgraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/multifront/comm"
)

// DistSparseGraph is a 1-D row-distributed sparse directed graph over N
// vertices: each rank owns a contiguous block of rows (RowDistribution) and
// stores, for its own rows, the target columns referenced by those rows as
// parallel (source,target) slices. It offers an assembling lifecycle:
//
//	StartAssembly -> Reserve -> Insert*(row,col) -> StopAssembly
//
// After StopAssembly the graph is frozen: entries are sorted by
// (source,target), a CSR row-offset table is built, and Source/Target
// become valid. Callers that need to rebuild must construct a new
// DistSparseGraph.
type DistSparseGraph struct {
	mu   sync.Mutex
	dist RowDistribution
	rank int

	assembling bool
	frozen     bool

	sources []int // local row (global index), one per local edge
	targets []int // global column, one per local edge

	localEdgeOffsets []int // CSR row pointers, size LocalHeight()+1, built on freeze
}

// NewDistSparseGraph constructs an empty, unfrozen DistSparseGraph over n
// vertices distributed across world's ranks.
func NewDistSparseGraph(world comm.Comm, n int) (*DistSparseGraph, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	return &DistSparseGraph{
		dist: NewRowDistribution(n, world.Size()),
		rank: world.Rank(),
	}, nil
}

// N returns the global vertex count.
func (g *DistSparseGraph) N() int { return g.dist.N() }

// FirstLocalRow returns the first global row this rank owns.
func (g *DistSparseGraph) FirstLocalRow() int { return g.dist.FirstLocalRow(g.rank) }

// LocalHeight returns the number of rows this rank owns.
func (g *DistSparseGraph) LocalHeight() int { return g.dist.LocalHeight(g.rank) }

// Distribution exposes the underlying row distribution, e.g. so callers can
// compute OwnerOf(row) for rows they do not themselves own.
func (g *DistSparseGraph) Distribution() RowDistribution { return g.dist }

// StartAssembly opens an insertion window. Returns ErrAlreadyAssembling if
// one is already open.
func (g *DistSparseGraph) StartAssembly() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.assembling {
		return ErrAlreadyAssembling
	}
	g.assembling = true
	g.frozen = false
	return nil
}

// Reserve pre-allocates capacity for nnz additional local edges.
func (g *DistSparseGraph) Reserve(nnz int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.assembling {
		return ErrNotAssembling
	}
	if cap(g.sources)-len(g.sources) < nnz {
		grownS := make([]int, len(g.sources), len(g.sources)+nnz)
		copy(grownS, g.sources)
		g.sources = grownS
		grownT := make([]int, len(g.targets), len(g.targets)+nnz)
		copy(grownT, g.targets)
		g.targets = grownT
	}
	return nil
}

// Insert records an edge row->col. row must lie in this rank's local row
// range; col must lie in [0, N()). Callers are expected to insert each
// (row,col) at most once per assembly window (see DESIGN.md for the
// duplicate-insert policy decision).
func (g *DistSparseGraph) Insert(row, col int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.assembling {
		return ErrNotAssembling
	}
	first, height := g.dist.FirstLocalRow(g.rank), g.dist.LocalHeight(g.rank)
	if row < first || row >= first+height {
		return ErrRowOutOfRange
	}
	if col < 0 || col >= g.dist.N() {
		return ErrColOutOfRange
	}
	g.sources = append(g.sources, row)
	g.targets = append(g.targets, col)
	return nil
}

// StopAssembly freezes the graph: sorts local entries by (source,target),
// deduplicates adjacent equal pairs, and builds the CSR row-offset table.
func (g *DistSparseGraph) StopAssembly() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.assembling {
		return ErrNotAssembling
	}
	if len(g.sources) != len(g.targets) {
		return ErrParallelArrayMismatch
	}
	g.sortAndDedup()
	g.buildOffsets()
	g.assembling = false
	g.frozen = true
	return nil
}

// sortAndDedup sorts local entries by (source,target) and collapses
// adjacent duplicates, keeping the first occurrence. Unlike
// DistSparseMatrix's dedup, there is no value to reconcile here, so this
// is deterministic and unambiguous regardless of insertion order.
func (g *DistSparseGraph) sortAndDedup() {
	n := len(g.sources)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		a, b := idx[i], idx[j]
		if g.sources[a] != g.sources[b] {
			return g.sources[a] < g.sources[b]
		}
		return g.targets[a] < g.targets[b]
	})
	sources := make([]int, 0, n)
	targets := make([]int, 0, n)
	for k, i := range idx {
		if k > 0 {
			prev := idx[k-1]
			if g.sources[i] == g.sources[prev] && g.targets[i] == g.targets[prev] {
				continue
			}
		}
		sources = append(sources, g.sources[i])
		targets = append(targets, g.targets[i])
	}
	g.sources, g.targets = sources, targets
}

func (g *DistSparseGraph) buildOffsets() {
	height := g.dist.LocalHeight(g.rank)
	first := g.dist.FirstLocalRow(g.rank)
	offsets := make([]int, height+1)
	for _, row := range g.sources {
		offsets[row-first+1]++
	}
	for i := 0; i < height; i++ {
		offsets[i+1] += offsets[i]
	}
	g.localEdgeOffsets = offsets
}

// NumLocalEntries returns the number of local edges after StopAssembly.
func (g *DistSparseGraph) NumLocalEntries() int { return len(g.sources) }

// Source returns the (global) row of local edge e. Valid only after
// StopAssembly.
func (g *DistSparseGraph) Source(e int) (int, error) {
	if !g.frozen {
		return 0, ErrNotFrozen
	}
	if e < 0 || e >= len(g.sources) {
		return 0, ErrEntryOutOfRange
	}
	return g.sources[e], nil
}

// Target returns the (global) column of local edge e. Valid only after
// StopAssembly.
func (g *DistSparseGraph) Target(e int) (int, error) {
	if !g.frozen {
		return 0, ErrNotFrozen
	}
	if e < 0 || e >= len(g.targets) {
		return 0, ErrEntryOutOfRange
	}
	return g.targets[e], nil
}

// LocalEntryOffset returns the CSR row pointer for local row r, i.e. local
// edges [LocalEntryOffset(r), LocalEntryOffset(r+1)) belong to local row r.
// r is an index into this rank's row block, not a global row.
func (g *DistSparseGraph) LocalEntryOffset(r int) (int, error) {
	if !g.frozen {
		return 0, ErrNotFrozen
	}
	if r < 0 || r > g.dist.LocalHeight(g.rank) {
		return 0, ErrEntryOutOfRange
	}
	return g.localEdgeOffsets[r], nil
}

// NumConnections returns the number of local edges owned by local row r.
func (g *DistSparseGraph) NumConnections(r int) (int, error) {
	a, err := g.LocalEntryOffset(r)
	if err != nil {
		return 0, err
	}
	b, err := g.LocalEntryOffset(r + 1)
	if err != nil {
		return 0, err
	}
	return b - a, nil
}
