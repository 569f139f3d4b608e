package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/esol/pkg/errors"
)

// TrainTestSplit shuffles rows with the given seed and splits X and y into
// train and test partitions. testSize is the fraction of rows held out,
// strictly between 0 and 1; both partitions always receive at least one row.
// The same seed reproduces the same split.
func TrainTestSplit(X, y mat.Matrix, testSize float64, seed int64) (XTrain, XTest *mat.Dense, yTrain, yTest *mat.VecDense, err error) {
	rows, cols := X.Dims()
	yRows, yCols := y.Dims()

	if rows == 0 || cols == 0 {
		return nil, nil, nil, nil, errors.NewModelError("dataset.TrainTestSplit", "empty data", errors.ErrEmptyData)
	}
	if yRows != rows {
		return nil, nil, nil, nil, errors.NewDimensionError("dataset.TrainTestSplit", rows, yRows, 0)
	}
	if yCols != 1 {
		return nil, nil, nil, nil, errors.NewValueError("dataset.TrainTestSplit", "y must be a column vector")
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, errors.NewValueError("dataset.TrainTestSplit", "testSize must be in (0, 1)")
	}
	if rows < 2 {
		return nil, nil, nil, nil, errors.NewValueError("dataset.TrainTestSplit", "need at least 2 rows to split")
	}

	nTest := int(math.Round(float64(rows) * testSize))
	if nTest < 1 {
		nTest = 1
	}
	if nTest >= rows {
		nTest = rows - 1
	}
	nTrain := rows - nTest

	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	perm := r.Perm(rows)

	XTrain = mat.NewDense(nTrain, cols, nil)
	XTest = mat.NewDense(nTest, cols, nil)
	yTrain = mat.NewVecDense(nTrain, nil)
	yTest = mat.NewVecDense(nTest, nil)

	for i, src := range perm[:nTrain] {
		for j := 0; j < cols; j++ {
			XTrain.Set(i, j, X.At(src, j))
		}
		yTrain.SetVec(i, y.At(src, 0))
	}
	for i, src := range perm[nTrain:] {
		for j := 0; j < cols; j++ {
			XTest.Set(i, j, X.At(src, j))
		}
		yTest.SetVec(i, y.At(src, 0))
	}

	return XTrain, XTest, yTrain, yTest, nil
}
