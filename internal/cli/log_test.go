package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vnalla55/farebrand/pkg/brand"
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

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	if prog == nil {
		t.Fatal("newProgress() returned nil")
	}

	// Small delay to ensure measurable duration
	time.Sleep(10 * time.Millisecond)

	prog.done("test completed")

	output := buf.String()
	if output == "" {
		t.Error("progress.done() should produce output")
	}

	// Should contain the message
	if !bytes.Contains(buf.Bytes(), []byte("test completed")) {
		t.Error("progress.done() output should contain message")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	hooks := newLogHooks(newLogger(&buf, log.InfoLevel))

	hooks.OnSpacesGenerated("itin", 0, nil)
	if buf.Len() != 0 {
		t.Errorf("debug events should be filtered at info level: %q", buf.String())
	}

	hooks.OnPrecedenceCycle([]brand.Code{"A", "B"})
	if buf.Len() != 0 {
		t.Errorf("cycle is warned by the orderer, hook should stay at debug: %q", buf.String())
	}

	hooks.OnNoApplicableBrands("itin")
	if !strings.Contains(buf.String(), "no applicable brands") {
		t.Errorf("missing brands should be logged: %q", buf.String())
	}

	buf.Reset()
	debug := newLogHooks(newLogger(&buf, log.DebugLevel))
	debug.OnPrecedenceCycle([]brand.Code{"A", "B"})
	if !strings.Contains(buf.String(), "brand precedence cycle") {
		t.Errorf("cycle should be logged at debug level: %q", buf.String())
	}
}
