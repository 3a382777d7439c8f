package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, 8080, GetInt("port"))
	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, "", GetString("logsDir"))
	assert.Equal(t, InfoResponse{
		APIVersion: "1",
		Author:     "",
		Color:      "#888888",
		Head:       "default",
		Tail:       "default",
		Version:    "0.1.0",
	}, InfoFromConfig())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"port": 9000,
		"logLevel": "debug",
		"snake": { "author": "tonobo", "color": "#ff00ff" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "battlesnake.json"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, 9000, GetInt("port"))
	assert.Equal(t, "debug", GetString("logLevel"))
	info := InfoFromConfig()
	assert.Equal(t, "tonobo", info.Author)
	assert.Equal(t, "#ff00ff", info.Color)
	assert.Equal(t, "default", info.Head)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("BATTLESNAKE_SNAKE_COLOR", "#00ff00")
	t.Setenv("BATTLESNAKE_PORT", "7000")

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "#00ff00", InfoFromConfig().Color)
	assert.Equal(t, 7000, GetInt("port"))
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "battlesnake.json"), []byte(`{"port": `), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestGetBool(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testKey", true)
	assert.True(t, GetBool("testKey"))
}
