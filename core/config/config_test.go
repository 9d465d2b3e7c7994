package config_test

import (
	"testing"

	"pfep-analyzer/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30.0, cfg.Server.DefaultTolerance)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "datasets", cfg.Storage.Bucket)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_DEFAULT_TOLERANCE", "50")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50.0, cfg.Server.DefaultTolerance)
	assert.Equal(t, "json", cfg.Log.Format)
}
