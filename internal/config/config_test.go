package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("USAGE_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "mongo", cfg.StorageSource)
	assert.Equal(t, 512.0, cfg.StorageTotalMB)
	assert.Equal(t, "member_usage_seconds", cfg.UsageRedisKey)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SKIP_AUTH", "true")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("STORAGE_TOTAL_MB", "1024")
	t.Setenv("STORAGE_SOURCE", "MINIO")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.SkipAuth)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1024.0, cfg.StorageTotalMB)
	assert.Equal(t, "minio", cfg.StorageSource)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.IsProduction())
}

func TestUsageSourceFollowsConfiguredBackends(t *testing.T) {
	tests := []struct {
		name      string
		redisAddr string
		usageURL  string
		want      string
	}{
		{name: "redis wins", redisAddr: "localhost:6379", usageURL: "http://usage", want: "redis"},
		{name: "http only", usageURL: "http://usage", want: "http"},
		{name: "nothing configured", want: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REDIS_ADDR", tt.redisAddr)
			t.Setenv("USAGE_URL", tt.usageURL)

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.UsageSource)
		})
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("REDIS_DB", "two")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 0, cfg.RedisDB)
}
