// © 2026 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package hub

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_DecodesYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
root:
  level: warn
loggers:
  db:
    level: debug
    propagate: false
  api:
    level: error
    disabled: true
`))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Root.Level)
	require.Contains(t, cfg.Loggers, "db")
	require.NotNil(t, cfg.Loggers["db"].Propagate)
	assert.False(t, *cfg.Loggers["db"].Propagate)
	assert.True(t, cfg.Loggers["api"].Disabled)
}

func TestApply_ConfiguresLoggers(t *testing.T) {
	h := New()
	cfg, err := ParseConfig([]byte(`
root:
  level: warn
loggers:
  db:
    level: debug
    propagate: false
  audit:
    level: none
`))
	require.NoError(t, err)

	require.NoError(t, h.Apply(cfg))

	assert.Equal(t, slog.LevelWarn, h.Root().Level())
	assert.Equal(t, slog.LevelDebug, h.Logger("db").Level())
	assert.False(t, h.Logger("db").Propagate())
	assert.Equal(t, LevelNone, h.Logger("audit").Level())
}

func TestApply_LevelOffsetsAndAll(t *testing.T) {
	h := New()

	require.NoError(t, h.Apply(&Config{Loggers: map[string]LoggerConfig{
		"verbose": {Level: "all"},
		"custom":  {Level: "info+2"},
	}}))

	assert.Equal(t, LevelAll, h.Logger("verbose").Level())
	assert.Equal(t, slog.LevelInfo+2, h.Logger("custom").Level())
}

func TestApply_InvalidLevelErrors(t *testing.T) {
	h := New()

	err := h.Apply(&Config{Loggers: map[string]LoggerConfig{
		"db": {Level: "verbose-ish"},
	}})

	require.Error(t, err)
	var cfgErr ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "db", cfgErr.Logger)
}

func TestApply_AttachesFileHandler(t *testing.T) {
	h := New()
	path := filepath.Join(t.TempDir(), "db.log")

	require.NoError(t, h.Apply(&Config{Loggers: map[string]LoggerConfig{
		"db": {Level: "debug", File: path},
	}}))

	require.Len(t, h.Logger("db").Handlers(), 1)

	// The attached handler actually writes to the configured file.
	h.Logger("db").Info("configured")
	assert.FileExists(t, path)
}

func TestApply_UnmentionedLoggersUntouched(t *testing.T) {
	h := New()
	h.Logger("keep").SetLevel(slog.LevelError)

	require.NoError(t, h.Apply(&Config{Loggers: map[string]LoggerConfig{
		"db": {Level: "debug"},
	}}))

	assert.Equal(t, slog.LevelError, h.Logger("keep").Level())
}
