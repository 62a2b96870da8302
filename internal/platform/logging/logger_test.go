package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_ContextAddsTraceFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "dataset loaded", "rows", 42)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got := entries[0].ContextMap()
	if got["trace_id"] != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", got["trace_id"])
	}
	if got["rows"] != int64(42) {
		t.Fatalf("unexpected rows field: %#v", got["rows"])
	}
}

func TestLogger_ErrorFieldAndDanglingKey(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core)).With("component", "history")

	logger.Warn("row skipped", "error", errors.New("bad score"), "team")

	entry := logs.All()[0]
	fields := entry.ContextMap()
	if fields["error"] != "bad score" {
		t.Fatalf("unexpected error field: %#v", fields["error"])
	}
	if _, ok := fields["team"]; !ok {
		t.Fatalf("expected dangling key to be logged")
	}
	if fields["component"] != "history" {
		t.Fatalf("expected With field to be kept")
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelWarn, Format: FormatJSON, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown", "team", "Arsenal")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry should be filtered: %s", out)
	}
	if !strings.Contains(out, `"team":"Arsenal"`) {
		t.Fatalf("expected warn entry, got %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": LevelDebug, "WARNING": LevelWarn, "error": LevelError, "": LevelInfo, "nope": LevelInfo}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("With on nil logger must return a usable logger")
	}
}
