package config_test

import (
	"marquee/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "marquee.shows", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enable)
	assert.False(t, cfg.App.RateLimiter.Enable)
	assert.True(t, cfg.App.CORS.Enable)
	assert.Equal(t, []string{"*"}, cfg.App.CORS.AllowedOrigins)
	assert.Equal(t, []string{"Content-Type", "Authorization"}, cfg.App.CORS.AllowedHeaders)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("APP_RATE_LIMITER_ENABLE", "true")
	t.Setenv("APP_RATE_LIMITER_MAX_REQUESTS", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.App.RateLimiter.Enable)
	assert.Equal(t, 5, cfg.App.RateLimiter.MaxRequests)
}
