package logger

import (
	"testing"

	"audit-activity-service/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	log, err := New(config.LoggerConfig{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error should be enabled at warn level")
	}
}

func TestNew_Console(t *testing.T) {
	log, err := New(config.LoggerConfig{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be enabled")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(config.LoggerConfig{Level: "loud"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}
