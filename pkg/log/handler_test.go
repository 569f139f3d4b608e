package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := errors.New("decomposition failed")
	logger.Error("fit failed", ErrAttr(err))

	var record map[string]any
	if jsonErr := json.Unmarshal(buf.Bytes(), &record); jsonErr != nil {
		t.Fatalf("output is not JSON: %v", jsonErr)
	}

	if _, ok := record[ErrAttrKey]; !ok {
		t.Error("expected error attribute in log record")
	}
	if st, ok := record[StacktraceAttrKey].(string); !ok || st == "" {
		t.Error("expected non-empty stacktrace attribute for cockroachdb error")
	}
}

func TestErrFmtHandlerPlainError(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	// Errors without safe details must not produce a stacktrace attribute.
	logger.Error("fit failed", ErrAttr(errEmpty{}))

	var record map[string]any
	if jsonErr := json.Unmarshal(buf.Bytes(), &record); jsonErr != nil {
		t.Fatalf("output is not JSON: %v", jsonErr)
	}
	if _, ok := record[StacktraceAttrKey]; ok {
		t.Error("did not expect stacktrace attribute for plain error")
	}
}

type errEmpty struct{}

func (errEmpty) Error() string { return "plain" }

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ToLogLevel(tt.in); got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
