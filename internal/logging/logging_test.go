package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockroom-dev/stockroom/internal/logging"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", "test").WithOutput(&buf)

	logger.Debug("hidden %s", "message")
	assert.Empty(t, buf.String())

	logger.Info("visible %s", "message")
	out := buf.String()
	assert.Contains(t, out, "visible message")
	assert.Contains(t, out, "component=test")
}

func TestLoggerUnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("nonsense", "test").WithOutput(&buf)

	logger.Info("still works")
	assert.Contains(t, buf.String(), "still works")
}

func TestLoggerNamed(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("debug", "root").WithOutput(&buf)

	logger.Named("child").Error("boom: %v", "reason")
	out := buf.String()
	assert.Contains(t, out, "component=child")
	assert.Contains(t, out, "boom: reason")
}
