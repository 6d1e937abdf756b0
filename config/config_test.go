package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"board": { "width": 10, "height": 12 },
		"rules": { "strictTurns": true }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 10, s.BoardWidth)
	assert.Equal(t, 12, s.BoardHeight)
	assert.True(t, s.StrictTurns)
	assert.False(t, s.ForcedCapture)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8, s.BoardWidth)
	assert.Equal(t, 8, s.BoardHeight)
	assert.False(t, s.StrictTurns)
	assert.False(t, s.ForcedCapture)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigName), []byte(`{nope`), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
