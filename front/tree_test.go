package front_test

import (
	"testing"

	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/front"
	"github.com/katalvlaran/multifront/meshnd"
	"github.com/stretchr/testify/require"
)

func TestBuildFrontTreeSingleProcessCoversEveryNode(t *testing.T) {
	mesh, err := meshnd.NewMesh(2, 2, 2)
	require.NoError(t, err)

	errs := comm.Run(1, func(world comm.Comm) error {
		mat, err := meshnd.BuildMatrix[float64](world, mesh, 6.0, -1.0)
		require.NoError(t, err)
		info, err := mesh.NestedDissection(1, world.Size())
		require.NoError(t, err)

		tree, err := front.BuildFrontTree(world, mat, info)
		require.NoError(t, err)
		require.Same(t, info, tree.Info())
		require.False(t, tree.IsFactored())

		for _, id := range info.PostOrder() {
			f := tree.Front(id)
			require.NotNil(t, f, "single rank must hold every node's front")
			require.Equal(t, info.Nodes[id].Size, f.Size())
			require.False(t, f.IsDistributed())
		}
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestBuildFrontTreeDistributesAcrossRanks(t *testing.T) {
	mesh, err := meshnd.NewMesh(2, 2, 2)
	require.NoError(t, err)

	errs := comm.Run(2, func(world comm.Comm) error {
		mat, err := meshnd.BuildMatrix[float64](world, mesh, 6.0, -1.0)
		require.NoError(t, err)
		info, err := mesh.NestedDissection(1, world.Size())
		require.NoError(t, err)

		tree, err := front.BuildFrontTree(world, mat, info)
		require.NoError(t, err)

		root := info.Nodes[info.Root]
		require.True(t, root.IsDistributed())
		rf := tree.Front(info.Root)
		require.NotNil(t, rf, "every rank in the root's grid must hold a replica")
		require.True(t, rf.IsDistributed())
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestBuildFrontTreeRejectsDimensionMismatch(t *testing.T) {
	mesh, err := meshnd.NewMesh(2, 2, 2)
	require.NoError(t, err)
	other, err := meshnd.NewMesh(3, 3, 3)
	require.NoError(t, err)

	errs := comm.Run(1, func(world comm.Comm) error {
		mat, err := meshnd.BuildMatrix[float64](world, mesh, 6.0, -1.0)
		require.NoError(t, err)
		info, err := other.NestedDissection(1, world.Size())
		require.NoError(t, err)

		_, err = front.BuildFrontTree(world, mat, info)
		require.ErrorIs(t, err, front.ErrDimensionMismatch)
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}
