package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("algorithm", "iterative"), "algorithm", "iterative"},
		{"Int64", Int64("n", -5), "n", int64(-5)},
		{"Float64", Float64("seconds", 0.25), "seconds", 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}
}

func TestNewLeveledLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, "fibiter-test") {
		t.Errorf("logger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("logger should include message, got: %s", output)
	}
}

func TestNewLeveledLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLeveledLogger(&buf, "fibiter", zerolog.WarnLevel)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	if buf.Len() != 0 {
		t.Fatalf("entries below warn should be dropped, got: %s", buf.String())
	}

	logger.Error("shown", errors.New("boom"))
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("error entry should pass the level filter, got: %s", buf.String())
	}
}

func TestZerologAdapter_Info(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		fields   []Field
		contains []string
	}{
		{"no fields", "computed", nil, []string{"computed", "info"}},
		{"with string field", "computed", []Field{String("algorithm", "iterative")}, []string{"iterative"}},
		{"with multiple fields", "computed", []Field{Int64("n", 40), String("outcome", "value")}, []string{"40", "value"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf).Info(tt.msg, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fields   []Field
		contains []string
	}{
		{"with error", errors.New("rejected"), nil, []string{"rejected", "error"}},
		{"with nil error", nil, nil, []string{"error"}},
		{"with error and fields", errors.New("rejected"), []Field{Int64("n", -5)}, []string{"rejected", "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf).Error("compute failed", tt.err, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("debug message", String("key", "value"))

	output := buf.String()
	if !strings.Contains(output, "debug message") || !strings.Contains(output, `"level":"debug"`) {
		t.Errorf("Debug output should contain message and level, got: %s", output)
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf).Info("test", tt.field)

			if output := buf.String(); !strings.Contains(output, tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, output)
			}
		})
	}
}

func newTestLogger(buf *bytes.Buffer) *ZerologAdapter {
	return NewLeveledLogger(buf, "fibiter-test", zerolog.DebugLevel)
}
