package front

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTestFront constructs a Front directly from a dense symmetric matrix
// laid out as [A_TL; A_BL] (size rows of A_TL stacked over len(lowerStruct)
// rows of A_BL, both size columns wide), bypassing BuildFrontTree.
func buildTestFront(size int, lowerStruct []int, rows [][]float64) *Front[float64] {
	f := newFront[float64](0, size, lowerStruct)
	for r, row := range rows {
		for c := 0; c < size; c++ {
			f.set(r, c, row[c])
		}
	}
	f.work = make([]float64, len(lowerStruct)*len(lowerStruct))
	return f
}

func TestFactorLeadingReconstructsMatrix(t *testing.T) {
	// A 3x3 SPD leading block, diagonally dominant.
	rows := [][]float64{
		{4, 1, 0},
		{1, 5, 2},
		{0, 2, 6},
	}
	f := buildTestFront(3, nil, rows)

	require.NoError(t, factorLeading(f, pivotTol))
	require.True(t, f.IsFactored())

	// Reconstruct L*D*L^T and compare against the original lower triangle.
	got := make([][]float64, 3)
	for i := range got {
		got[i] = make([]float64, 3)
		for j := 0; j <= i; j++ {
			var sum float64
			for k := 0; k <= j; k++ {
				lik := 1.0
				if k != i {
					lik = f.at(i, k)
				}
				ljk := 1.0
				if k != j {
					ljk = f.at(j, k)
				}
				sum += lik * f.diag[k] * ljk
			}
			got[i][j] = sum
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			require.InDelta(t, rows[i][j], got[i][j], 1e-9)
		}
	}
}

func TestFactorLeadingRejectsZeroPivot(t *testing.T) {
	rows := [][]float64{
		{0, 0},
		{0, 1},
	}
	f := buildTestFront(2, nil, rows)
	require.ErrorIs(t, factorLeading(f, pivotTol), ErrZeroPivot)
	require.False(t, f.IsFactored())
}

func TestFactorLeadingHonorsStricterTolerance(t *testing.T) {
	// A pivot of 1e-10 is accepted at the package default (1e-12) but
	// rejected by a caller-supplied stricter tolerance (1e-8).
	rows := [][]float64{
		{1e-10, 0},
		{0, 1},
	}
	f := buildTestFront(2, nil, rows)
	require.NoError(t, factorLeading(f, pivotTol))

	f2 := buildTestFront(2, nil, rows)
	require.ErrorIs(t, factorLeading(f2, 1e-8), ErrZeroPivot)
}

func TestDepositIntoParentRejectsUpperTriangleWrite(t *testing.T) {
	pf := newFront[float64](0, 2, []int{5})
	err := depositIntoParent(pf, workEntry[float64]{node: 0, r: 0, c: 1, val: 1})
	require.ErrorIs(t, err, ErrUpperTriangleWrite)
}

func TestDepositIntoParentRoutesToFrontLAndWork(t *testing.T) {
	pf := newFront[float64](0, 2, []int{5})
	pf.work = make([]float64, 1)

	require.NoError(t, depositIntoParent(pf, workEntry[float64]{node: 0, r: 1, c: 0, val: 3}))
	require.Equal(t, 3.0, pf.at(1, 0))

	require.NoError(t, depositIntoParent(pf, workEntry[float64]{node: 0, r: 2, c: 2, val: 7}))
	require.Equal(t, 7.0, pf.workAt(0, 0))
}

func TestApplySchurUpdateAccumulatesIntoWork(t *testing.T) {
	// size=1 leading block, one ancestor row: A_TL=[2], A_BL=[3].
	// After factoring, diag=2, L_BL = 3/2 = 1.5.
	// Schur contribution to work[0][0] is -(1.5 * 2 * 1.5) = -4.5.
	rows := [][]float64{
		{2},
		{3},
	}
	f := buildTestFront(1, []int{7}, rows)
	require.NoError(t, factorLeading(f, pivotTol))
	applySchurUpdate(f)
	require.InDelta(t, -4.5, f.workAt(0, 0), 1e-9)
}
