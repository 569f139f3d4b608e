package errors

import (
	"strings"
	"testing"
)

func TestRecoverConvertsPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "TestOperation")
		panic("matrix dimensions do not agree")
	}

	err := fn()
	if err == nil {
		t.Fatal("Expected error from recovered panic")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T: %v", err, err)
	}
	if panicErr.Operation != "TestOperation" {
		t.Errorf("Operation = %q, want TestOperation", panicErr.Operation)
	}
	if !strings.Contains(panicErr.StackTrace, "recovery_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}
}

func TestRecoverNoPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "TestOperation")
		return nil
	}

	if err := fn(); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

func TestSafeExecute(t *testing.T) {
	err := SafeExecute("dangerous op", func() error {
		panic(42)
	})
	if err == nil {
		t.Fatal("Expected error from panicking function")
	}
	if !strings.Contains(err.Error(), "dangerous op") {
		t.Errorf("Error() = %v, want operation name", err)
	}

	err = SafeExecute("safe op", func() error { return nil })
	if err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}
