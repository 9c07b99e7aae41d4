package front

// LDLOption configures a single LDL call, following the same
// functional-option shape used throughout this project's ambient
// conventions: a private Options struct, zero-value-safe defaults, and
// exported WithXxx constructors that close over a mutation.
type LDLOption func(*ldlOptions)

type ldlOptions struct {
	pivotTol float64
}

func defaultLDLOptions() ldlOptions {
	return ldlOptions{pivotTol: pivotTol}
}

// WithPivotTolerance overrides the minimum acceptable pivot magnitude: a
// diagonal entry smaller than tol is treated as numerically singular and
// factorLeading returns ErrZeroPivot. Most callers never need this; it
// exists for systems scaled far enough from unity that the package default
// (1e-12) is either too strict or too loose.
func WithPivotTolerance(tol float64) LDLOption {
	return func(o *ldlOptions) { o.pivotTol = tol }
}

func applyLDLOptions(opts []LDLOption) ldlOptions {
	o := defaultLDLOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
