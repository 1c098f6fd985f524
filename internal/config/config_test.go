package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsEnvProduction())
	assert.Equal(t, ":8080", cfg.APIListenAddress)
	assert.Equal(t, []string{"http://*", "https://*"}, cfg.APIAllowedOrigins)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, 5*time.Minute, cfg.CacheLifetime)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SB_ENVIRONMENT", "dev")
	t.Setenv("SB_STORAGE_DRIVER", StorageDriverInmem)
	t.Setenv("SB_CACHE_LIFETIME", "30s")
	t.Setenv("SB_API_KEYS", "dG9rZW4=:read_kinds|read_flag_sets,b3RoZXI=:*")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.IsEnvProduction())
	assert.Equal(t, StorageDriverInmem, cfg.StorageDriver)
	assert.Equal(t, 30*time.Second, cfg.CacheLifetime)
	assert.Equal(t, map[string]string{
		"dG9rZW4=": "read_kinds|read_flag_sets",
		"b3RoZXI=": "*",
	}, cfg.APIKeys)
}

func TestLoadFromEnvInvalid(t *testing.T) {
	t.Setenv("SB_CACHE_LIFETIME", "forever")
	_, err := LoadFromEnv()
	assert.Error(t, err)
}
