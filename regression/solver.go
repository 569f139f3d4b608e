package regression

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/esol/pkg/errors"
)

// solveSVD computes the minimum-norm least squares solution of X·β ≈ y via a
// thin singular value decomposition, β = V·S⁺·Uᵀ·y. Singular values below
// condTol times the largest are treated as zero, which makes collinear
// descriptor columns well-defined instead of blowing up the solution.
func solveSVD(op string, X mat.Matrix, y *mat.VecDense, condTol float64) (beta []float64, rank int, singular []float64, err error) {
	rows, cols := X.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return nil, 0, nil, errors.NewModelError(op, "SVD factorization failed", nil)
	}

	singular = svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Effective rank: singular values above the relative cutoff.
	cutoff := 0.0
	if len(singular) > 0 {
		cutoff = condTol * singular[0]
	}
	for _, s := range singular {
		if s > cutoff {
			rank++
		}
	}
	if rank == 0 {
		return nil, 0, singular, errors.NewSingularSystemError(op, 0, cols,
			"design matrix has no significant singular values")
	}

	// d = S⁺·Uᵀ·y, zeroing components in the null space.
	d := make([]float64, len(singular))
	for j := 0; j < rank; j++ {
		var dot float64
		for i := 0; i < rows; i++ {
			dot += u.At(i, j) * y.AtVec(i)
		}
		d[j] = dot / singular[j]
	}

	// β = V·d
	beta = make([]float64, cols)
	for i := 0; i < cols; i++ {
		var sum float64
		for j := 0; j < rank; j++ {
			sum += v.At(i, j) * d[j]
		}
		beta[i] = sum
	}

	return beta, rank, singular, nil
}

// solveQR solves X·β ≈ y through a QR decomposition. The factorization
// requires a tall system (rows ≥ cols, guaranteed by Fit) and fails with a
// SingularSystemError when X is rank deficient or severely ill-conditioned.
func solveQR(op string, X mat.Matrix, y *mat.VecDense) ([]float64, error) {
	_, cols := X.Dims()

	var qr mat.QR
	qr.Factorize(X)

	solution := mat.NewDense(cols, 1, nil)
	if err := qr.SolveTo(solution, false, y); err != nil {
		return nil, errors.NewSingularSystemError(op, 0, cols, err.Error())
	}

	beta := make([]float64, cols)
	for i := 0; i < cols; i++ {
		beta[i] = solution.At(i, 0)
	}
	return beta, nil
}
