package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "esol: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "esol: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 3, 4, 1)

	want := "esol: Predict: dimension mismatch on axis 1 (features). Expected 3, got 4"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatal("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 3 || dimErr.Got != 4 || dimErr.Axis != 1 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}
}

func TestNewDimensionErrorRowAxis(t *testing.T) {
	err := NewDimensionError("Fit", 5, 4, 0)

	want := "esol: Fit: dimension mismatch on axis 0 (rows). Expected 5, got 4"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("OLSRegression", "Predict")

	msg := err.Error()
	if !strings.Contains(msg, "OLSRegression") || !strings.Contains(msg, "Predict") {
		t.Errorf("Error() = %v, want model and method names", msg)
	}

	var nfErr *NotFittedError
	if !As(err, &nfErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewSingularSystemError(t *testing.T) {
	err := NewSingularSystemError("OLSRegression.Fit", 2, 3, "duplicated columns")

	msg := err.Error()
	if !strings.Contains(msg, "singular system") {
		t.Errorf("Error() = %v, want singular system message", msg)
	}
	if !strings.Contains(msg, "duplicated columns") {
		t.Errorf("Error() = %v, want reason included", msg)
	}

	var singErr *SingularSystemError
	if !As(err, &singErr) {
		t.Fatal("Error should be castable to *SingularSystemError")
	}
	if singErr.Rank != 2 || singErr.Columns != 3 {
		t.Errorf("unexpected fields: %+v", singErr)
	}
}

func TestNewUndefinedMetricError(t *testing.T) {
	err := NewUndefinedMetricError("R2Score", "total sum of squares is zero")

	if !strings.Contains(err.Error(), "R2Score is undefined") {
		t.Errorf("Error() = %v", err.Error())
	}

	var umErr *UndefinedMetricError
	if !As(err, &umErr) {
		t.Error("Error should be castable to *UndefinedMetricError")
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	inner := New("inner failure")
	err := NewModelError("Fit", "decomposition", inner)

	if !Is(err, inner) {
		t.Error("Is() should find the wrapped error")
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewUndefinedMetricWarning("StandardScaler.Scale", "zero variance column", 1.0)
	Warn(warning)

	if captured == nil {
		t.Fatal("Warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "ill-defined") {
		t.Errorf("unexpected warning message: %v", captured)
	}
}

func TestZerologWarnFuncTakesPriority(t *testing.T) {
	var viaHandler, viaZerolog bool
	SetWarningHandler(func(w error) { viaHandler = true })
	SetZerologWarnFunc(func(w error) { viaZerolog = true })
	defer func() {
		SetWarningHandler(nil)
		SetZerologWarnFunc(nil)
	}()

	Warn(New("test warning"))

	if !viaZerolog {
		t.Error("zerolog warn func should be used when configured")
	}
	if viaHandler {
		t.Error("fallback handler should not run when zerolog func is set")
	}
}
