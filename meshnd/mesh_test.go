package meshnd_test

import (
	"testing"

	"github.com/katalvlaran/multifront/comm"
	"github.com/katalvlaran/multifront/meshnd"
	"github.com/stretchr/testify/require"
)

func TestMeshIndexAndCoordRoundTrip(t *testing.T) {
	m, err := meshnd.NewMesh(4, 4, 4)
	require.NoError(t, err)
	for z := 0; z < 4; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				id := m.Index(x, y, z)
				gx, gy, gz := m.Coord(id)
				require.Equal(t, [3]int{x, y, z}, [3]int{gx, gy, gz})
			}
		}
	}
	require.Equal(t, 64, m.N())
}

func TestNewMeshRejectsNonPositiveDims(t *testing.T) {
	_, err := meshnd.NewMesh(0, 4, 4)
	require.ErrorIs(t, err, meshnd.ErrNonPositiveDims)
}

func TestBuildGraphOnlyLowerTriangle(t *testing.T) {
	m, err := meshnd.NewMesh(4, 4, 4)
	require.NoError(t, err)
	errs := comm.Run(1, func(world comm.Comm) error {
		g, err := m.BuildGraph(world)
		require.NoError(t, err)
		for e := 0; e < g.NumLocalEntries(); e++ {
			r, _ := g.Source(e)
			c, _ := g.Target(e)
			require.GreaterOrEqual(t, r, c)
		}
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestNestedDissectionCoversAllCellsExactlyOnce(t *testing.T) {
	m, err := meshnd.NewMesh(4, 4, 4)
	require.NoError(t, err)
	info, err := m.NestedDissection(1, 1)
	require.NoError(t, err)

	total := 0
	for _, nd := range info.Nodes {
		total += nd.Size
	}
	require.Equal(t, m.N(), total)
	require.Equal(t, m.N(), info.N)
}

func TestNestedDissectionRootSpansAllRanks(t *testing.T) {
	m, err := meshnd.NewMesh(8, 8, 8)
	require.NoError(t, err)
	info, err := m.NestedDissection(8, 4)
	require.NoError(t, err)

	root := info.Nodes[info.Root]
	require.True(t, root.IsDistributed())
	require.ElementsMatch(t, []int{0, 1, 2, 3}, root.GridRanks)
}

func TestNestedDissectionLeavesAreLocal(t *testing.T) {
	m, err := meshnd.NewMesh(8, 8, 8)
	require.NoError(t, err)
	info, err := m.NestedDissection(8, 4)
	require.NoError(t, err)

	for _, nd := range info.Nodes {
		if nd.IsLeaf() {
			require.False(t, nd.IsDistributed())
		}
	}
}

func TestNestedDissectionPermIsBijection(t *testing.T) {
	m, err := meshnd.NewMesh(4, 4, 4)
	require.NoError(t, err)
	info, err := m.NestedDissection(2, 1)
	require.NoError(t, err)

	require.Len(t, info.Perm, m.N())
	seen := make(map[int]bool, m.N())
	for _, col := range info.Perm {
		require.False(t, seen[col])
		seen[col] = true
		require.GreaterOrEqual(t, col, 0)
		require.Less(t, col, m.N())
	}
}

func TestVerifySeparatorHoldsForEveryInternalNode(t *testing.T) {
	m, err := meshnd.NewMesh(6, 6, 6)
	require.NoError(t, err)
	info, err := m.NestedDissection(3, 1)
	require.NoError(t, err)

	for _, nd := range info.Nodes {
		if len(nd.Children) != 2 {
			continue
		}
		ok, err := meshnd.VerifySeparator(info, m, nd.ID)
		require.NoError(t, err)
		require.True(t, ok, "node %d's separator must disconnect its two children", nd.ID)
	}
}

func TestLowerStructIsAncestorChain(t *testing.T) {
	m, err := meshnd.NewMesh(4, 4, 4)
	require.NoError(t, err)
	info, err := m.NestedDissection(2, 1)
	require.NoError(t, err)

	root := info.Nodes[info.Root]
	require.Empty(t, root.LowerStruct)

	for _, nd := range info.Nodes {
		if nd.Parent < 0 {
			continue
		}
		parent := info.Nodes[nd.Parent]
		require.Len(t, nd.LowerStruct, parent.Size+len(parent.LowerStruct))
	}

	for _, nd := range info.Nodes {
		for slot, c := range nd.Children {
			rel := nd.LeftRelInds
			if slot == 1 {
				rel = nd.RightRelInds
			}
			require.Len(t, rel, len(info.Nodes[c].LowerStruct))
			for i, r := range rel {
				require.Equal(t, i, r)
			}
		}
	}
}
