package comm_test

import (
	"testing"

	"github.com/katalvlaran/multifront/comm"
	"github.com/stretchr/testify/require"
)

func TestAllReduceSum(t *testing.T) {
	const n = 6
	errs := comm.Run(n, func(world comm.Comm) error {
		total := comm.AllReduceSum(world, int64(world.GlobalRank()+1))
		require.EqualValues(t, n*(n+1)/2, total)
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestBroadcast(t *testing.T) {
	const n = 4
	errs := comm.Run(n, func(world comm.Comm) error {
		v := comm.Broadcast(world, 2, world.GlobalRank())
		require.Equal(t, 2, v)
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestSplitIntoRowsAndColumns(t *testing.T) {
	// 2x3 grid over ranks 0..5: color = row, key = col.
	const rows, cols = 2, 3
	errs := comm.Run(rows*cols, func(world comm.Comm) error {
		r := world.GlobalRank() / cols
		c := world.GlobalRank() % cols
		rowComm := world.Split(r, c)
		colComm := world.Split(c, r)
		require.Equal(t, cols, rowComm.Size())
		require.Equal(t, rows, colComm.Size())
		require.Equal(t, c, rowComm.Rank())
		require.Equal(t, r, colComm.Rank())
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestAllToAllv(t *testing.T) {
	const n = 4
	errs := comm.Run(n, func(world comm.Comm) error {
		send := make([][]int, n)
		for q := 0; q < n; q++ {
			send[q] = []int{world.GlobalRank()*10 + q}
		}
		recv := comm.AllToAllv(world, send)
		require.Len(t, recv, n)
		for src := 0; src < n; src++ {
			require.Equal(t, []int{src*10 + world.GlobalRank()}, recv[src])
		}
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestAllToAllvCheckedHappyPath(t *testing.T) {
	const n = 2
	errs := comm.Run(n, func(world comm.Comm) error {
		send := make([][]int, n)
		send[1-world.GlobalRank()] = []int{7, 8}
		expect := []int{2, 2}
		expect[world.GlobalRank()] = 0 // nothing sent to self
		recv, err := comm.AllToAllvChecked(world, send, expect)
		require.NoError(t, err)
		require.Equal(t, []int{7, 8}, recv[1-world.GlobalRank()])
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}

func TestAllToAllvCheckedDetectsMismatch(t *testing.T) {
	const n = 2
	errs := comm.Run(n, func(world comm.Comm) error {
		send := make([][]int, n)
		send[1-world.GlobalRank()] = []int{7, 8}
		// Deliberately wrong expectation on every rank.
		expect := []int{99, 99}
		_, err := comm.AllToAllvChecked(world, send, expect)
		require.ErrorIs(t, err, comm.ErrCountMismatch)
		return nil
	})
	require.NoError(t, comm.FirstError(errs))
}
