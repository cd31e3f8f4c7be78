package logging

import (
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	logger.Info("startup probe")
	_ = logger.Sync()
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud", ""); err == nil {
		t.Fatalf("expected error for unknown level name")
	}
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		configured string
		want       zapcore.Level
		wantErr    bool
	}{
		{"neither set", "", "", zapcore.InfoLevel, false},
		{"configured only", "", "debug", zapcore.DebugLevel, false},
		{"override beats configured", "error", "debug", zapcore.ErrorLevel, false},
		{"upper case accepted", "", "WARN", zapcore.WarnLevel, false},
		{"unknown configured", "", "loud", 0, true},
		{"unknown override", "loud", "debug", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveLevel(tt.override, tt.configured)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected level %v, got %v", tt.want, got)
			}
		})
	}
}

func TestShortHostname(t *testing.T) {
	host := shortHostname()
	if host == "" {
		t.Fatalf("expected non-empty hostname")
	}
	if strings.Contains(host, ".") {
		t.Fatalf("expected hostname truncated at first dot, got %q", host)
	}
}
