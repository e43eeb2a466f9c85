package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ogurasousui/codex-employee-roster/internal/platform/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roster.log")
	logger, err := New(config.LoggingConfig{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("employee added", zap.Int64("id", 7))
	_ = logger.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	line := string(b)
	if !strings.Contains(line, `"msg":"employee added"`) || !strings.Contains(line, `"id":7`) {
		t.Fatalf("unexpected log output: %s", line)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()

	logger, err := New(config.LoggingConfig{Level: "warn", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("error should be enabled at warn level")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	if _, err := New(config.LoggingConfig{Level: "verbose"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_EmptyLevelDefaultsToWarn(t *testing.T) {
	t.Parallel()

	logger, err := New(config.LoggingConfig{Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled by default")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn should be enabled by default")
	}
}
