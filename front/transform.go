package front

import "github.com/katalvlaran/multifront/dsgraph"

// ChangeFrontType applies one of two front-type transformations to a
// factored tree: selective inversion of every distributed front's leading
// unit-lower-triangular block (for faster repeated solves), or reverting
// it back to triangular-solve form.
// Local fronts and fronts this rank does not hold are left untouched.
// An unfactored tree returns ErrNotFactored. Illegal transitions —
// inverting an already-inverted tree, or reverting a tree that is not
// inverted — return ErrIllegalFrontTransition.
func ChangeFrontType[F dsgraph.Field](tree *DistSymmFrontTree[F], selectivelyInvert bool) error {
	if !tree.factored {
		return ErrNotFactored
	}
	for _, f := range tree.fronts {
		if f == nil || !f.IsDistributed() {
			continue
		}
		if f.ft.selectivelyInverted == selectivelyInvert {
			return ErrIllegalFrontTransition
		}
		if selectivelyInvert {
			if err := invertUnitLower(f); err != nil {
				return err
			}
		} else {
			if err := revertUnitLower(f); err != nil {
				return err
			}
		}
		f.ft.selectivelyInverted = selectivelyInvert
	}
	return nil
}

// invertUnitLower replaces f's leading size x size unit-lower-triangular
// block with its inverse (also unit lower triangular), computed column by
// column via forward substitution: column j of the inverse solves
// L x = e_j.
func invertUnitLower[F dsgraph.Field](f *Front[F]) error {
	n := f.size
	inv := make([]F, n*n)
	at := func(buf []F, r, c int) F { return buf[r*n+c] }
	set := func(buf []F, r, c int, v F) { buf[r*n+c] = v }

	for j := 0; j < n; j++ {
		set(inv, j, j, one[F]())
		for i := j + 1; i < n; i++ {
			var sum F
			for k := j; k < i; k++ {
				sum += f.at(i, k) * at(inv, k, j)
			}
			set(inv, i, j, -sum)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			f.set(i, j, at(inv, i, j))
		}
	}
	return nil
}

// revertUnitLower is invertUnitLower's own inverse: a unit lower triangular
// matrix's inverse is again unit lower triangular and shares the same
// inversion formula, so reverting is just inverting a second time.
func revertUnitLower[F dsgraph.Field](f *Front[F]) error {
	return invertUnitLower(f)
}

func one[F dsgraph.Field]() F {
	var z F
	if _, ok := any(z).(complex128); ok {
		return any(complex(1, 0)).(F)
	}
	return any(1.0).(F)
}
