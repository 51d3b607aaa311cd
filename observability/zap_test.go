package observability_test

import (
	"context"
	"testing"

	"github.com/tailored-agentic-units/assistant/observability"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevel_ZapLevel(t *testing.T) {
	tests := []struct {
		name  string
		level observability.Level
		want  zapcore.Level
	}{
		{name: "verbose maps to Debug", level: observability.LevelVerbose, want: zapcore.DebugLevel},
		{name: "info maps to Info", level: observability.LevelInfo, want: zapcore.InfoLevel},
		{name: "warning maps to Warn", level: observability.LevelWarning, want: zapcore.WarnLevel},
		{name: "error maps to Error", level: observability.LevelError, want: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ZapLevel(); got != tt.want {
				t.Errorf("Level(%d).ZapLevel() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestZapObserver_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := observability.NewZapObserver(zap.New(core))

	obs.OnEvent(context.Background(), observability.NewEvent(
		"assistant.reply",
		observability.LevelInfo,
		"assistant.Submit",
		map[string]any{"route": "explain"},
	))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}

	entry := entries[0]
	if entry.Message != "assistant.reply" {
		t.Errorf("got message %q, want %q", entry.Message, "assistant.reply")
	}
	if entry.Level != zapcore.InfoLevel {
		t.Errorf("got level %v, want %v", entry.Level, zapcore.InfoLevel)
	}

	fields := entry.ContextMap()
	if fields["source"] != "assistant.Submit" {
		t.Errorf("got source %v, want %q", fields["source"], "assistant.Submit")
	}
	if fields["route"] != "explain" {
		t.Errorf("got route %v, want %q", fields["route"], "explain")
	}
}

func TestZapObserver_LevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := observability.NewZapObserver(zap.New(core))

	obs.OnEvent(context.Background(), observability.NewEvent("debug.only", observability.LevelVerbose, "test", nil))
	obs.OnEvent(context.Background(), observability.NewEvent("kept", observability.LevelWarning, "test", nil))

	if logs.Len() != 1 {
		t.Fatalf("got %d log entries, want 1", logs.Len())
	}
	if logs.All()[0].Message != "kept" {
		t.Errorf("got message %q, want %q", logs.All()[0].Message, "kept")
	}
}

func TestZapObserver_NilLogger(t *testing.T) {
	obs := observability.NewZapObserver(nil)
	obs.OnEvent(context.Background(), observability.NewEvent("test.event", observability.LevelError, "test", nil))
}
