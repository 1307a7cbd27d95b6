package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/YuminosukeSato/logreg/pkg/errors"
)

// TestLoggerInterface tests the TestLogger implementation of Logger
func TestLoggerInterface(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", "operation", "test")
	testLogger.Warn("warning message", "warning_code", "TEST_WARNING")
	testLogger.Error("error message", "error", fmt.Errorf("test error"))

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}

	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}

	if !testLogger.ContainsField("key1", "value1") {
		t.Error("Expected field key1=value1 not found")
	}
	if !testLogger.ContainsField("number", 42.0) { // JSON numbers decode as float64
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField("error", "test error") {
		t.Error("Expected error to be rendered with its message")
	}
}

// TestLoggerWith tests context-aware logging
func TestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ModelNameKey, "LogisticRegression",
		ComponentKey, "linear.logistic",
		EstimatorIDKey, "lr-001",
	)
	contextLogger.Info("contextual message", OperationKey, OperationFit)

	if !testLogger.ContainsField(ModelNameKey, "LogisticRegression") {
		t.Error("Model name context not found")
	}
	if !testLogger.ContainsField(EstimatorIDKey, "lr-001") {
		t.Error("Estimator id context not found")
	}
	if !testLogger.ContainsField(OperationKey, OperationFit) {
		t.Error("Operation field not found")
	}
}

// TestLoggerEnabled tests level filtering
func TestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
	}
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}
	if !testLogger.ContainsMessage("this should appear") {
		t.Error("Info message should appear when level is Info")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"info", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"error", LevelError, true},
		{"verbose", LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// TestTestLoggerProvider tests the LoggerProvider used in tests
func TestTestLoggerProvider(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelDebug)

	provider.GetLogger().Info("provider test message")
	provider.GetLoggerWithName("linear.logistic").Info("named logger message")

	lines := buffer.String()
	if !strings.Contains(lines, "provider test message") {
		t.Error("Provider test message not found")
	}
	if !provider.TestLogger().ContainsField(ComponentKey, "linear.logistic") {
		t.Error("Component name not found in named logger output")
	}

	provider.SetLevel(LevelError)
	provider.GetLoggerWithName("linear.logistic").Info("suppressed")
	if strings.Contains(buffer.String(), "suppressed") {
		t.Error("SetLevel should apply to named loggers")
	}
}

func TestZerologProvider(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelInfo)

	logger := provider.GetLoggerWithName("linear.logistic").With(ModelNameKey, "LogisticRegression")
	logger.Debug("hidden", IterationKey, 1)
	logger.Info("Training completed", LossKey, 0.25, IterationKey, 150)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 record, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", lines[0], err)
	}

	want := map[string]interface{}{
		"level":      "info",
		"message":    "Training completed",
		ComponentKey: "linear.logistic",
		ModelNameKey: "LogisticRegression",
		LossKey:      0.25,
		IterationKey: 150.0,
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("field %s = %v, want %v", k, entry[k], v)
		}
	}

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.Enabled(context.Background(), LevelWarn) {
		t.Error("warn should be enabled at info level")
	}
}

func TestZerologWarningHook(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf, LevelDebug)
	provider.InstallWarningHook()
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewConvergenceWarning("GradientDescent", 150, "cost increased"))

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
	if entry["type"] != "ConvergenceWarning" {
		t.Errorf("type = %v, want ConvergenceWarning", entry["type"])
	}
	if entry["iterations"] != 150.0 {
		t.Errorf("iterations = %v, want 150", entry["iterations"])
	}
}

func TestGlobalProvider(t *testing.T) {
	provider, _ := NewTestLoggerProvider(LevelDebug)
	SetProvider(provider)
	defer SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelInfo))

	GetLoggerWithName("metrics").Info("from global")
	if !provider.TestLogger().ContainsField(ComponentKey, "metrics") {
		t.Error("global GetLoggerWithName should use the installed provider")
	}
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil)))

	err := errors.NewDimensionError("Fit", 4, 3, 0)
	logger.Error("fit failed", ErrAttr(err))

	var entry map[string]interface{}
	if jerr := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); jerr != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), jerr)
	}
	stack, _ := entry[StacktraceAttrKey].(string)
	if stack == "" {
		t.Fatalf("expected %s attribute, got %v", StacktraceAttrKey, entry)
	}
}

// TestConcurrentLogging tests that a TestLogger can be shared by goroutines
func TestConcurrentLogging(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	const numGoroutines, messagesPerGoroutine = 4, 5
	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				testLogger.Info(fmt.Sprintf("goroutine %d message %d", id, j))
			}
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != numGoroutines*messagesPerGoroutine {
		t.Errorf("Expected %d log entries, got %d", numGoroutines*messagesPerGoroutine, len(entries))
	}
}

// BenchmarkLogging benchmarks logging through the zerolog backend
func BenchmarkLogging(b *testing.B) {
	logger := NewZerologProvider(&bytes.Buffer{}, LevelInfo).GetLogger()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message",
			IterationKey, i,
			OperationKey, OperationPredict,
			SamplesKey, 1000,
		)
	}
}
