package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "restaurant_picker.db", cfg.DBPath)
	assert.Equal(t, "mock", cfg.Provider)
	assert.Equal(t, 100, cfg.SeedCount)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PICKER_PORT", "9999")
	t.Setenv("PICKER_PROVIDER", "database")
	t.Setenv("PICKER_SEED_COUNT", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "database", cfg.Provider)
	assert.Equal(t, 25, cfg.SeedCount)
}
