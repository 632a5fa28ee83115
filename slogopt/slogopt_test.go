package slogopt

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isobit/argtab"
)

func TestOptionsBind(t *testing.T) {
	opts := Options{}
	b, err := argtab.Bind("test", &opts)
	require.NoError(t, err)

	require.NoError(t, b.Parse([]string{"--log-level", "WARN", "--log-json"}))
	assert.Equal(t, slog.LevelWarn, opts.LogLevel)
	assert.True(t, opts.LogJSON)
}

func TestConfigure(t *testing.T) {
	buf := bytes.Buffer{}
	opts := Options{LogLevel: slog.LevelWarn, LogJSON: true}
	opts.ConfigureWithHandlerOptions(&buf, nil)

	slog.Info("dropped")
	slog.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
}
