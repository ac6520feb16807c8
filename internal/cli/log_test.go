package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Info("test message")
	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}

	buf.Reset()
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message written at info level: %q", buf.String())
	}
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		configured string
		want       log.Level
	}{
		{"verbose wins", true, "error", log.DebugLevel},
		{"configured level", false, "warn", log.WarnLevel},
		{"empty falls back to info", false, "", log.InfoLevel},
		{"unknown falls back to info", false, "loud", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveLevel(tt.verbose, tt.configured); got != tt.want {
				t.Errorf("resolveLevel(%v, %q) = %v, want %v", tt.verbose, tt.configured, got, tt.want)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}
