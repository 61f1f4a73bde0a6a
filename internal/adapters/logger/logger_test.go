package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Info("hello")

	assert.Equal(t, "hello\n", buf.String())
}

func TestLogger_Error_Chain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Error(zerr.Wrap(zerr.New("root"), "outer"))

	got := buf.String()
	assert.Contains(t, got, "Error: outer")
	assert.Contains(t, got, "Caused by:")
	assert.Contains(t, got, "→ root")
}

func TestLogger_Error_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetJSON(true)

	l.Info("structured")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "structured", record["msg"])
}

func TestLogger_Debug_Filtered(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.SetDebug(true)
	l.Debug("visible", "key", "value")
	assert.Equal(t, "visible key=value\n", buf.String())
}
