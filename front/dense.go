package front

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/multifront/dsgraph"
)

// pivotTol is the minimum acceptable pivot magnitude; anything smaller is
// treated as numerically singular.
const pivotTol = 1e-12

func conjOf[F dsgraph.Field](x F) F {
	if z, ok := any(x).(complex128); ok {
		return any(cmplx.Conj(z)).(F)
	}
	return x
}

func absOf[F dsgraph.Field](x F) float64 {
	if z, ok := any(x).(complex128); ok {
		return cmplx.Abs(z)
	}
	return math.Abs(float64(any(x).(float64)))
}

func invOf[F dsgraph.Field](x F) F {
	if z, ok := any(x).(complex128); ok {
		return any(1 / z).(F)
	}
	return any(1 / any(x).(float64)).(F)
}

// factorLeading performs the unblocked, unpivoted LDL^{T/H} factorization of
// f's leading size x size block, propagating the same elimination down into
// the trailing E block: A_TL = L_TL D L_TL^{T/H} is factored in place, and
// A_BL is simultaneously solved against L_TL and scaled by D^{-1} — a
// single column-by-column right-looking sweep over the full
// (size+|lowerStruct|) rows, size columns panel.
//
// Panel-width blocking to amortize inter-rank communication has no
// analogue here: this is the single-rank/replicated-local-compute kernel,
// so the whole panel is always processed in one unblocked sweep.
func factorLeading[F dsgraph.Field](f *Front[F], tol float64) error {
	m := f.size + len(f.lowerStruct)
	for k := 0; k < f.size; k++ {
		d := f.at(k, k)
		if absOf(d) < tol {
			return ErrZeroPivot
		}
		f.diag[k] = d
		f.set(k, k, one[F]())
		invD := invOf(d)

		for i := k + 1; i < m; i++ {
			f.set(i, k, f.at(i, k)*invD)
		}
		jMax := f.size
		for i := k + 1; i < m; i++ {
			lik := f.at(i, k)
			top := i
			if top >= jMax {
				top = jMax - 1
			}
			for j := k + 1; j <= top; j++ {
				f.addAt(i, j, -lik*d*conjOf(f.at(j, k)))
			}
		}
	}
	f.ft.factored = true
	return nil
}

// applySchurUpdate subtracts this front's contribution A_BL D A_BL^{T/H}
// from f.work (which must already hold the union of the two children's
// scattered contributions, deposited by LDL via depositIntoParent). Only the lower
// triangle of work is maintained, matching frontL's own storage
// convention.
func applySchurUpdate[F dsgraph.Field](f *Front[F]) {
	n := len(f.lowerStruct)
	for r := 0; r < n; r++ {
		for c := 0; c <= r; c++ {
			var sum F
			for k := 0; k < f.size; k++ {
				sum += f.at(f.size+r, k) * f.diag[k] * conjOf(f.at(f.size+c, k))
			}
			f.workAddAt(r, c, -sum)
		}
	}
}
