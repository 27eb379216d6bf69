//go:build unit
// +build unit

package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forgekit/internal/pkg/config"
)

func TestFileLogger_WritesJSONRecords(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, logger)

	logger.Info("hello from file logger")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "hello from file logger", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestFileLogger_RespectsLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	logger := NewFileLogger(config.LogLevelError, logPath, 10, 3, 28)
	logger.Info("suppressed")
	logger.Error("recorded")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "suppressed")
	assert.Contains(t, string(data), "recorded")
}
