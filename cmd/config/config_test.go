package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/green-footprint/cmd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 168*time.Hour, cfg.Auth.JWTExpiration)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Empty(t, cfg.RateLimit.TrustedProxies)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RabbitMQ.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_JWT_EXPIRATION", "24h")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "gf")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "footprint")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("RATE_LIMIT_TRUSTED_PROXIES", "10.0.0.0/8,192.0.2.10")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpiration)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.10"}, cfg.RateLimit.TrustedProxies)
	assert.Equal(t, "gf:pw@tcp(db:3307)/footprint?parseTime=true&loc=UTC&clientFoundRows=true&charset=utf8mb4", cfg.GetDSN())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}
