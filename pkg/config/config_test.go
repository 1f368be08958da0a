package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, SourceHTTP, cfg.Source.Kind)
	assert.Equal(t, "https://ofc-test-01.tspb.su/test-task/", cfg.Source.URL)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.False(t, cfg.Snapshot.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SCHEDULE_SOURCE", "POSTGRES")
	t.Setenv("SCHEDULE_SOURCE_TIMEOUT", "3s")
	t.Setenv("SNAPSHOT_CACHE_TTL", "not-a-duration")
	t.Setenv("ENABLE_AUTH", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourcePostgres, cfg.Source.Kind)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Snapshot.CacheTTL)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}
