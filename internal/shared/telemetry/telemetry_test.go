package telemetry

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	t.Cleanup(Replace(zap.New(core)))
	return logs
}

func TestLevelsAndFields(t *testing.T) {
	logs := withObserver(t)

	Info("catalog loaded", map[string]any{"plans": 15, "source": "seed"})
	Warn("provider table missing", nil)
	Error("import failed", map[string]any{"err": errors.New("boom")})

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[1].Level != zapcore.WarnLevel || entries[2].Level != zapcore.ErrorLevel {
		t.Fatalf("unexpected levels: %v %v %v", entries[0].Level, entries[1].Level, entries[2].Level)
	}
	ctx := entries[0].ContextMap()
	if ctx["plans"] != int64(15) || ctx["source"] != "seed" {
		t.Fatalf("unexpected fields %v", ctx)
	}
	if entries[2].ContextMap()["err"] != "boom" {
		t.Fatalf("expected error field, got %v", entries[2].ContextMap())
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	prev := current.Load()
	t.Cleanup(func() { current.Store(prev) })

	for _, env := range []string{"production", "dev", ""} {
		Init(env)
		if Logger() == nil {
			t.Fatalf("expected logger for env %q", env)
		}
	}
}
