package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "wirefuzz", configBaseName)
	assert.Equal(t, "wirefuzz.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "fuzz.max_size", maxSizeConfigKey)
	assert.Equal(t, "fuzz.threads", threadsConfigKey)
	assert.Equal(t, "target.address", targetAddressKey)
	assert.Equal(t, "crash.dir", crashDirConfigKey)
	assert.Equal(t, 4096, defaultMaxSize)
	assert.Equal(t, "WIREFUZZ", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestSecondsKey(t *testing.T) {
	assert.Equal(t, defaultTargetTimeout, secondsKey(targetTimeoutKey))

	t.Setenv("WIREFUZZ_TARGET_TIMEOUT", "7")
	assert.Equal(t, 7*time.Second, secondsKey(targetTimeoutKey))
}

func TestConfigureLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	ctx := context.Background()

	t.Run("verbose", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "debug.log")
		configureLogger(logPath, true)

		assert.True(t, slog.Default().Enabled(ctx, slog.LevelDebug))

		slog.Debug("Logger configured", "path", logPath)

		contents, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(contents), "Logger configured")
	})

	t.Run("configured level", func(t *testing.T) {
		t.Setenv("WIREFUZZ_LOG_LEVEL", "error")
		configureLogger(filepath.Join(t.TempDir(), "error.log"), false)

		assert.False(t, slog.Default().Enabled(ctx, slog.LevelWarn))
		assert.True(t, slog.Default().Enabled(ctx, slog.LevelError))
	})
}
