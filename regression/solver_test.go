package regression

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/esol/pkg/errors"
)

func TestSolveSVD_WellConditioned(t *testing.T) {
	// Solve [1 x]·β = 3 + 2x exactly
	X := mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
	})
	y := mat.NewVecDense(4, []float64{5, 7, 9, 11})

	beta, rank, singular, err := solveSVD("test", X, y, defaultCondTol)
	if err != nil {
		t.Fatalf("solveSVD failed: %v", err)
	}

	if rank != 2 {
		t.Errorf("Expected rank 2, got %d", rank)
	}
	if len(singular) != 2 {
		t.Errorf("Expected 2 singular values, got %d", len(singular))
	}
	if math.Abs(beta[0]-3.0) > 1e-8 || math.Abs(beta[1]-2.0) > 1e-8 {
		t.Errorf("Expected beta [3, 2], got %v", beta)
	}
}

func TestSolveSVD_RankDeficient(t *testing.T) {
	// Second column is twice the first: rank 1.
	X := mat.NewDense(4, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
		4, 8,
	})
	y := mat.NewVecDense(4, []float64{5, 10, 15, 20})

	beta, rank, _, err := solveSVD("test", X, y, defaultCondTol)
	if err != nil {
		t.Fatalf("solveSVD failed: %v", err)
	}

	if rank != 1 {
		t.Errorf("Expected rank 1, got %d", rank)
	}

	// Any solution satisfies c1 + 2c2 = 5; minimum norm gives c = (1, 2).
	if math.Abs(beta[0]-1.0) > 1e-8 || math.Abs(beta[1]-2.0) > 1e-8 {
		t.Errorf("Expected minimum-norm beta [1, 2], got %v", beta)
	}
}

func TestSolveQR_WellConditioned(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
	})
	y := mat.NewVecDense(4, []float64{5, 7, 9, 11})

	beta, err := solveQR("test", X, y)
	if err != nil {
		t.Fatalf("solveQR failed: %v", err)
	}
	if math.Abs(beta[0]-3.0) > 1e-8 || math.Abs(beta[1]-2.0) > 1e-8 {
		t.Errorf("Expected beta [3, 2], got %v", beta)
	}
}

func TestSolveQR_SingularSystem(t *testing.T) {
	// Identical columns: QR must refuse rather than return garbage.
	X := mat.NewDense(4, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
		4, 4,
	})
	y := mat.NewVecDense(4, []float64{2, 4, 6, 8})

	_, err := solveQR("test", X, y)
	if err == nil {
		t.Fatal("Expected error for singular system, got nil")
	}

	var singErr *errors.SingularSystemError
	if !errors.As(err, &singErr) {
		t.Errorf("Expected SingularSystemError, got %T: %v", err, err)
	}
}

func TestQRSolverOnCollinearFit(t *testing.T) {
	X := mat.NewDense(5, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
		4, 4,
		5, 5,
	})
	y := mat.NewDense(5, 1, []float64{4, 8, 12, 16, 20})

	lr := NewOLSRegression(WithSolver(SolverQR))
	err := lr.Fit(X, y)
	if err == nil {
		t.Fatal("Expected QR solver to fail on collinear columns, got nil")
	}

	var singErr *errors.SingularSystemError
	if !errors.As(err, &singErr) {
		t.Errorf("Expected SingularSystemError, got %T: %v", err, err)
	}
}
