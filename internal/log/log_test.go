package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", "json", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("converted", zap.String("method", "getbalance"))
	require.NoError(t, logger.Sync())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "converted", line["msg"])
	assert.Equal(t, "getbalance", line["method"])
	assert.Equal(t, "info", line["level"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("debug", "console", &buf)
	require.NoError(t, err)
	logger.Debug("checking fixtures")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "checking fixtures")
}

func TestNewErrors(t *testing.T) {
	tt := []struct {
		description string
		level       string
		format      string
	}{
		{description: "bad level", level: "loud", format: "json"},
		{description: "bad format", level: "info", format: "xml"},
	}
	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			_, err := NewWithWriter(tc.level, tc.format, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}
