package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/esol/pkg/errors"
)

func TestParity(t *testing.T) {
	measured := []float64{-3.6, -1.6, 1.1, 0.0}
	predicted := []float64{-3.4, -1.8, 0.9, 0.2}

	p, err := Parity(measured, predicted)
	if err != nil {
		t.Fatalf("Parity() error = %v", err)
	}
	if p == nil {
		t.Fatal("Parity() returned nil plot")
	}
	if p.X.Label.Text != "Measured" || p.Y.Label.Text != "Predicted" {
		t.Errorf("unexpected axis labels: %q / %q", p.X.Label.Text, p.Y.Label.Text)
	}
}

func TestParityValidation(t *testing.T) {
	if _, err := Parity(nil, nil); err == nil {
		t.Error("Expected error for empty input")
	}

	_, err := Parity([]float64{1, 2, 3}, []float64{1, 2})
	if err == nil {
		t.Fatal("Expected error for mismatched lengths")
	}
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("Expected DimensionError, got %T: %v", err, err)
	}
}

func TestSaveParity(t *testing.T) {
	measured := []float64{-3.6, -1.6, 1.1, 0.0, -2.2}
	predicted := []float64{-3.4, -1.8, 0.9, 0.2, -2.5}

	path := filepath.Join(t.TempDir(), "parity.png")
	if err := SaveParity(measured, predicted, path); err != nil {
		t.Fatalf("SaveParity() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected plot file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}
