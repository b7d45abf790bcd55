package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromString("debug"))
	assert.Equal(t, slog.LevelInfo, LevelFromString("INFO"))
	assert.Equal(t, slog.LevelWarn, LevelFromString("warning"))
	assert.Equal(t, slog.LevelWarn, LevelFromString(" WARN "))
	assert.Equal(t, slog.LevelError, LevelFromString("Error"))
	assert.Equal(t, slog.LevelInfo, LevelFromString(""))
	assert.Equal(t, slog.LevelInfo, LevelFromString("verbose"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("catalog ready")
	assert.Empty(t, buf.String())

	logger.Warn("lookup miss", slog.String("context", "awattar"))
	assert.Contains(t, buf.String(), "lookup miss")
	assert.Contains(t, buf.String(), "awattar")
}
