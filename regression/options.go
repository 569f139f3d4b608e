package regression

// Solver selects the decomposition used to solve the least squares system.
type Solver int

const (
	// SolverSVD solves via singular value decomposition and returns the
	// minimum-norm solution for rank-deficient (collinear) systems.
	// This is the default.
	SolverSVD Solver = iota

	// SolverQR solves via QR decomposition. Faster on well-conditioned
	// systems, but fails with a SingularSystemError when the design matrix
	// is rank deficient.
	SolverQR
)

func (s Solver) String() string {
	switch s {
	case SolverQR:
		return "qr"
	default:
		return "svd"
	}
}

// Option is a function that configures OLSRegression
type Option func(*OLSRegression)

// WithFitIntercept sets whether to estimate the intercept term.
// When false, the model is forced through the origin.
func WithFitIntercept(fit bool) Option {
	return func(o *OLSRegression) {
		o.fitIntercept = fit
	}
}

// WithSolver selects the least squares solver. SolverSVD treats singular
// values below condTol times the largest singular value as zero and returns
// the minimum-norm coefficient vector; SolverQR errors on rank deficiency.
func WithSolver(s Solver) Option {
	return func(o *OLSRegression) {
		o.solver = s
	}
}

// WithCondTol sets the relative singular value cutoff used by SolverSVD to
// decide the effective rank of the design matrix.
func WithCondTol(tol float64) Option {
	return func(o *OLSRegression) {
		o.condTol = tol
	}
}

// WithCopyX sets whether Fit works on a copy of X. Disabling the copy saves
// an allocation when the caller does not reuse X.
func WithCopyX(copy bool) Option {
	return func(o *OLSRegression) {
		o.copyX = copy
	}
}
