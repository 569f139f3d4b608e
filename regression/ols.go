// Package regression implements ordinary least squares linear regression
// with a scikit-learn compatible Fit/Predict/Score surface.
//
// The estimator solves Y ≈ X·β + β₀ through a numerically stable
// decomposition of the design matrix. The normal equations are never formed
// explicitly: inverting XᵀX is unstable when descriptor columns are
// correlated, which is the usual situation with molecular descriptor sets.
package regression

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/esol/core/model"
	"github.com/YuminosukeSato/esol/core/parallel"
	"github.com/YuminosukeSato/esol/metrics"
	"github.com/YuminosukeSato/esol/pkg/errors"
	"github.com/YuminosukeSato/esol/pkg/log"
)

// Row count above which the intercept-column augmentation is parallelized.
const parallelThreshold = 1000

// defaultCondTol is the relative singular value cutoff for SolverSVD.
const defaultCondTol = 1e-12

// OLSRegression is an ordinary least squares linear model.
//
// A zero fit runs once and freezes the model: the coefficient vector and
// intercept are immutable afterwards, so a fitted model may be shared across
// goroutines without synchronization.
type OLSRegression struct {
	model.BaseEstimator

	// Configuration
	fitIntercept bool
	copyX        bool
	solver       Solver
	condTol      float64

	// Learned parameters
	coef      []float64
	intercept float64

	// Fit diagnostics
	nFeatures int
	rank      int
	singular  []float64
}

// NewOLSRegression creates an unfitted OLS model. By default the intercept
// is estimated and the SVD solver is used.
func NewOLSRegression(opts ...Option) *OLSRegression {
	o := &OLSRegression{
		fitIntercept: true,
		copyX:        true,
		solver:       SolverSVD,
		condTol:      defaultCondTol,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Fit computes the least squares solution for the given training data.
//
// X is an n×k feature matrix and y an n×1 target column. Fit requires
// n ≥ k+1 when the intercept is estimated (n ≥ k otherwise); an
// underdetermined system fails with a SingularSystemError. With the default
// SVD solver a rank-deficient but sufficiently tall system yields the
// minimum-norm solution; the QR solver fails instead.
func (o *OLSRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "OLSRegression.Fit")

	rows, cols := X.Dims()
	yRows, yCols := y.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("OLSRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != rows {
		return errors.NewDimensionError("OLSRegression.Fit", rows, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("OLSRegression.Fit", "y must be a column vector")
	}

	nParams := cols
	if o.fitIntercept {
		nParams++
	}
	if rows < nParams {
		return errors.NewSingularSystemError("OLSRegression.Fit", rows, nParams,
			"fewer observations than parameters")
	}

	var XWork mat.Matrix = X
	if o.copyX {
		XWork = mat.DenseCopyOf(X)
	}

	// Augment with a constant column of ones for the intercept term.
	var XFit mat.Matrix = XWork
	if o.fitIntercept {
		augmented := mat.NewDense(rows, cols+1, nil)
		parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				augmented.Set(i, 0, 1.0)
				for j := 0; j < cols; j++ {
					augmented.Set(i, j+1, XWork.At(i, j))
				}
			}
		})
		XFit = augmented
	}

	yVec := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var beta []float64
	var rank int
	var singular []float64

	switch o.solver {
	case SolverQR:
		beta, err = solveQR("OLSRegression.Fit", XFit, yVec)
		rank = nParams
	default:
		beta, rank, singular, err = solveSVD("OLSRegression.Fit", XFit, yVec, o.condTol)
	}
	if err != nil {
		return err
	}

	if o.fitIntercept {
		o.intercept = beta[0]
		o.coef = beta[1:]
	} else {
		o.intercept = 0
		o.coef = beta
	}
	o.nFeatures = cols
	o.rank = rank
	o.singular = singular
	o.SetFitted()

	slog.Debug("fit complete",
		log.ModelNameKey, "OLSRegression",
		log.OperationKey, "fit",
		log.SolverKey, o.solver.String(),
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		log.RankKey, rank,
	)
	return nil
}

// Predict applies the fitted model to X and returns an n×1 prediction
// matrix. X must have the same number of columns the model was fitted with.
func (o *OLSRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !o.IsFitted() {
		return nil, errors.NewNotFittedError("OLSRegression", "Predict")
	}

	rows, cols := X.Dims()
	if cols != o.nFeatures {
		return nil, errors.NewDimensionError("OLSRegression.Predict", o.nFeatures, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred := o.intercept
		for j := 0; j < cols; j++ {
			pred += X.At(i, j) * o.coef[j]
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

// Score returns the coefficient of determination R² of the prediction on X
// against y. A target with zero variance fails with an UndefinedMetricError.
func (o *OLSRegression) Score(X, y mat.Matrix) (float64, error) {
	if !o.IsFitted() {
		return 0, errors.NewNotFittedError("OLSRegression", "Score")
	}

	yPred, err := o.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2ScoreMatrix(y, yPred)
}

// Coef returns a copy of the fitted coefficients, ordered as the columns of
// the training matrix. Nil before Fit.
func (o *OLSRegression) Coef() []float64 {
	if o.coef == nil {
		return nil
	}
	c := make([]float64, len(o.coef))
	copy(c, o.coef)
	return c
}

// Intercept returns the fitted intercept, or 0 when the model was configured
// without one.
func (o *OLSRegression) Intercept() float64 {
	if !o.IsFitted() {
		return 0
	}
	return o.intercept
}

// NFeatures returns the number of features the model was fitted with.
func (o *OLSRegression) NFeatures() int {
	return o.nFeatures
}

// Rank returns the effective rank of the design matrix determined during
// Fit. With the QR solver this is the full column count.
func (o *OLSRegression) Rank() int {
	return o.rank
}

// SingularValues returns the singular values of the design matrix when the
// SVD solver was used, nil otherwise.
func (o *OLSRegression) SingularValues() []float64 {
	if o.singular == nil {
		return nil
	}
	s := make([]float64, len(o.singular))
	copy(s, o.singular)
	return s
}
