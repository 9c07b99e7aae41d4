package front_test

import (
	"testing"

	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/front"
	"github.com/katalvlaran/multifront/meshnd"
	"github.com/stretchr/testify/require"
)

// denseStencilMultiply computes A*x for the full symmetric 7-point stencil
// matrix meshnd.BuildMatrix assembles the lower triangle of, in the mesh's
// ORIGINAL (unpermuted) cell numbering.
func denseStencilMultiply(mesh *meshnd.Mesh, diag, off float64, x []float64) []float64 {
	n := mesh.N()
	b := make([]float64, n)
	offsets := [6][3]int{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for row := 0; row < n; row++ {
		sum := diag * x[row]
		rx, ry, rz := mesh.Coord(row)
		for _, d := range offsets {
			nx, ny, nz := rx+d[0], ry+d[1], rz+d[2]
			if !mesh.InBounds(nx, ny, nz) {
				continue
			}
			sum += off * x[mesh.Index(nx, ny, nz)]
		}
		b[row] = sum
	}
	return b
}

// solveEndToEnd runs BuildMatrix -> NestedDissection -> BuildFrontTree -> LDL
// -> Solve over nProcs simulated ranks and checks the result against a
// known true solution, for every rank.
func solveEndToEnd(t *testing.T, nx, ny, nz, leafSize, nProcs int) {
	t.Helper()
	mesh, err := meshnd.NewMesh(nx, ny, nz)
	require.NoError(t, err)
	n := mesh.N()

	const diag, off = 6.5, -1.0

	xTrue := make([]float64, n)
	for i := range xTrue {
		xTrue[i] = float64(i%7) + 1
	}
	bOrig := denseStencilMultiply(mesh, diag, off, xTrue)

	errs := comm.Run(nProcs, func(world comm.Comm) error {
		mat, err := meshnd.BuildMatrix[float64](world, mesh, diag, off)
		require.NoError(t, err)
		info, err := mesh.NestedDissection(leafSize, world.Size())
		require.NoError(t, err)

		bReordered := make([]float64, n)
		xTrueReordered := make([]float64, n)
		for i := 0; i < n; i++ {
			bReordered[info.Perm[i]] = bOrig[i]
			xTrueReordered[info.Perm[i]] = xTrue[i]
		}

		tree, err := front.BuildFrontTree(world, mat, info)
		require.NoError(t, err)

		require.NoError(t, front.LDL(tree))
		require.True(t, tree.IsFactored())
		require.ErrorIs(t, front.LDL(tree), front.ErrAlreadyFactored)

		got, err := front.Solve(tree, bReordered)
		require.NoError(t, err)
		require.Len(t, got, n)
		for i := range got {
			require.InDelta(t, xTrueReordered[i], got[i], 1e-6)
		}
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestLDLSolveSingleProcess4Cubed(t *testing.T) {
	solveEndToEnd(t, 4, 4, 4, 4, 1)
}

func TestLDLAcceptsLooserPivotTolerance(t *testing.T) {
	mesh, err := meshnd.NewMesh(4, 4, 4)
	require.NoError(t, err)
	const diag, off = 6.5, -1.0

	errs := comm.Run(1, func(world comm.Comm) error {
		mat, err := meshnd.BuildMatrix[float64](world, mesh, diag, off)
		require.NoError(t, err)
		info, err := mesh.NestedDissection(4, world.Size())
		require.NoError(t, err)
		tree, err := front.BuildFrontTree(world, mat, info)
		require.NoError(t, err)
		require.NoError(t, front.LDL(tree, front.WithPivotTolerance(1e-14)))
		require.True(t, tree.IsFactored())
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestLDLSolveFourProcesses8Cubed(t *testing.T) {
	solveEndToEnd(t, 8, 8, 8, 4, 4)
}

func TestLDLSolveEightProcesses16Cubed(t *testing.T) {
	solveEndToEnd(t, 16, 16, 16, 8, 8)
}

func TestLDLSolveFourProcesses8CubedMultipleRHS(t *testing.T) {
	mesh, err := meshnd.NewMesh(8, 8, 8)
	require.NoError(t, err)
	n := mesh.N()
	const diag, off = 6.5, -1.0
	const numRHS = 5

	xTrues := make([][]float64, numRHS)
	bOrigs := make([][]float64, numRHS)
	for r := 0; r < numRHS; r++ {
		x := make([]float64, n)
		for i := range x {
			x[i] = float64((i+r)%5) + 1
		}
		xTrues[r] = x
		bOrigs[r] = denseStencilMultiply(mesh, diag, off, x)
	}

	errs := comm.Run(4, func(world comm.Comm) error {
		mat, err := meshnd.BuildMatrix[float64](world, mesh, diag, off)
		require.NoError(t, err)
		info, err := mesh.NestedDissection(4, world.Size())
		require.NoError(t, err)
		tree, err := front.BuildFrontTree(world, mat, info)
		require.NoError(t, err)
		require.NoError(t, front.LDL(tree))

		for r := 0; r < numRHS; r++ {
			bReordered := make([]float64, n)
			xTrueReordered := make([]float64, n)
			for i := 0; i < n; i++ {
				bReordered[info.Perm[i]] = bOrigs[r][i]
				xTrueReordered[info.Perm[i]] = xTrues[r][i]
			}
			got, err := front.Solve(tree, bReordered)
			require.NoError(t, err)
			for i := range got {
				require.InDelta(t, xTrueReordered[i], got[i], 1e-6)
			}
		}
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestSolveRejectsUnfactoredTree(t *testing.T) {
	mesh, err := meshnd.NewMesh(2, 2, 2)
	require.NoError(t, err)

	errs := comm.Run(1, func(world comm.Comm) error {
		mat, err := meshnd.BuildMatrix[float64](world, mesh, 6.0, -1.0)
		require.NoError(t, err)
		info, err := mesh.NestedDissection(1, world.Size())
		require.NoError(t, err)
		tree, err := front.BuildFrontTree(world, mat, info)
		require.NoError(t, err)

		_, err = front.Solve(tree, make([]float64, mesh.N()))
		require.ErrorIs(t, err, front.ErrNotFactored)
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestSolveRejectsDimensionMismatch(t *testing.T) {
	mesh, err := meshnd.NewMesh(2, 2, 2)
	require.NoError(t, err)

	errs := comm.Run(1, func(world comm.Comm) error {
		mat, err := meshnd.BuildMatrix[float64](world, mesh, 6.0, -1.0)
		require.NoError(t, err)
		info, err := mesh.NestedDissection(1, world.Size())
		require.NoError(t, err)
		tree, err := front.BuildFrontTree(world, mat, info)
		require.NoError(t, err)
		require.NoError(t, front.LDL(tree))

		_, err = front.Solve(tree, make([]float64, mesh.N()+1))
		require.ErrorIs(t, err, front.ErrDimensionMismatch)
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}
