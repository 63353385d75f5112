package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", &buf)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("request_id", "1").Info("Request accepted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Request accepted", entry["msg"])
	assert.Equal(t, "1", entry["request_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewWithOutput_InvalidLevel(t *testing.T) {
	log := NewWithOutput("loud", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
