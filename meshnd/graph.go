package meshnd

import (
	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/dsgraph"
)

// BuildGraph assembles the DistSparseGraph of m's 7-point stencil: for every
// cell, one entry per lower-triangular neighbor (row >= col) plus the
// diagonal, matching the lower-triangle-only assembly convention
// DistSparseMatrix expects.
func (m *Mesh) BuildGraph(world comm.Comm) (*dsgraph.DistSparseGraph, error) {
	g, err := dsgraph.NewDistSparseGraph(world, m.N())
	if err != nil {
		return nil, err
	}
	if err := g.StartAssembly(); err != nil {
		return nil, err
	}

	first, height := g.FirstLocalRow(), g.LocalHeight()
	for row := first; row < first+height; row++ {
		if err := g.Insert(row, row); err != nil {
			return nil, err
		}
		x, y, z := m.Coord(row)
		for _, d := range stencilOffsets {
			nx, ny, nz := x+d[0], y+d[1], z+d[2]
			if !m.InBounds(nx, ny, nz) {
				continue
			}
			col := m.Index(nx, ny, nz)
			if col >= row {
				continue // keep only the lower triangle
			}
			if err := g.Insert(row, col); err != nil {
				return nil, err
			}
		}
	}

	if err := g.StopAssembly(); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildMatrix is BuildGraph's DistSparseMatrix twin: it assembles the same
// lower-triangular 7-point stencil pattern with a constant diagonal value
// and constant off-diagonal value, producing a diagonally dominant (hence
// symmetric positive definite) test matrix.
func BuildMatrix[F dsgraph.Field](world comm.Comm, m *Mesh, diag, off F) (*dsgraph.DistSparseMatrix[F], error) {
	mat, err := dsgraph.NewDistSparseMatrix[F](world, m.N())
	if err != nil {
		return nil, err
	}
	if err := mat.StartAssembly(); err != nil {
		return nil, err
	}

	first, height := mat.FirstLocalRow(), mat.LocalHeight()
	for row := first; row < first+height; row++ {
		if err := mat.Update(row, row, diag); err != nil {
			return nil, err
		}
		x, y, z := m.Coord(row)
		for _, d := range stencilOffsets {
			nx, ny, nz := x+d[0], y+d[1], z+d[2]
			if !m.InBounds(nx, ny, nz) {
				continue
			}
			col := m.Index(nx, ny, nz)
			if col >= row {
				continue
			}
			if err := mat.Update(row, col, off); err != nil {
				return nil, err
			}
		}
	}

	if err := mat.StopAssembly(); err != nil {
		return nil, err
	}
	return mat, nil
}
