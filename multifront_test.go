package multifront_test

import (
	"testing"

	multifront "github.com/katalvlaran/multifront"
	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/meshnd"
	"github.com/stretchr/testify/require"
)

func TestPublicAPIEndToEnd(t *testing.T) {
	mesh, err := meshnd.NewMesh(4, 4, 4)
	require.NoError(t, err)
	n := mesh.N()
	const diag, off = 6.5, -1.0

	errs := comm.Run(2, func(world comm.Comm) error {
		mat, err := meshnd.BuildMatrix[float64](world, mesh, diag, off)
		require.NoError(t, err)
		info, err := mesh.NestedDissection(2, world.Size())
		require.NoError(t, err)

		tree, err := multifront.NewDistSymmFrontTree(world, mat, info)
		require.NoError(t, err)

		require.NoError(t, multifront.LDL(tree))
		require.Greater(t, multifront.MemoryInfo(tree), int64(0))
		require.Greater(t, multifront.FactorizationWork(tree), int64(0))

		b := make([]float64, n)
		for i := range b {
			b[i] = 1
		}
		x, err := multifront.Solve(tree, b)
		require.NoError(t, err)
		require.Len(t, x, n)
		require.Greater(t, multifront.SolveWork(tree), int64(0))

		require.NoError(t, multifront.ChangeFrontType(tree, true))
		x2, err := multifront.Solve(tree, b)
		require.NoError(t, err)
		for i := range x {
			require.InDelta(t, x[i], x2[i], 1e-6)
		}
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}
