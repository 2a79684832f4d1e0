package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFileLogging(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "test.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	Sugar.Infow("slice complete", "kept", 42, "dropped", 7)
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "slice complete") {
		t.Error("log file missing expected entry")
	}
}

func TestFatalLogsBeforeExit(t *testing.T) {
	// Swap the exit behavior for a panic so the helper can be exercised.
	var buf bytes.Buffer
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{MessageKey: "msg"})
	core := zapcore.NewCore(enc, zapcore.AddSync(&buf), zapcore.DebugLevel)

	prev := Log
	Log = zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic))
	defer func() {
		Log = prev
		if recover() == nil {
			t.Error("Fatal should not return")
		}
		if !strings.Contains(buf.String(), "shutting down") {
			t.Error("fatal entry missing from log output")
		}
	}()
	Fatal("shutting down")
}

func TestParseLevel(t *testing.T) {
	if parseLevel("nonsense").String() != "info" {
		t.Errorf("parseLevel fallback = %v, want info", parseLevel("nonsense"))
	}
	if parseLevel("debug").String() != "debug" {
		t.Errorf("parseLevel(debug) = %v, want debug", parseLevel("debug"))
	}
}
