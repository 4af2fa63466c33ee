package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jpatterson933/bunx-ray/pkg/observability"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	// Test that it can log
	logger.Info("test message")

	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug output missing after SetLogLevel: %q", buf.String())
	}
}

func TestRegisterHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	c.RegisterHooks()

	ctx := context.Background()
	observability.Pipeline().OnLoadComplete(ctx, "meta.json", "esbuild", 4, 1500*time.Microsecond, nil)
	observability.Pipeline().OnLayoutComplete(ctx, 4, time.Millisecond, nil)
	observability.Snapshot().OnSnapshotSave(ctx, ".bunxray-history.json", 4, nil)

	out := buf.String()
	for _, want := range []string{"loaded stats", "path=meta.json", "modules=4", "layout done", "snapshot save"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksReportFailures(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}

	h.OnLoadComplete(context.Background(), "stats.json", "auto", 0, 0, stderrors.New("boom"))
	if !strings.Contains(buf.String(), "load failed") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("failure not logged: %q", buf.String())
	}
}
