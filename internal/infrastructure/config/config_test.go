package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "community", cfg.Mongo.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Empty(t, cfg.BootstrapAdminEmail)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":            "s3cret",
		"ENV":                   "production",
		"TOKEN_TTL":             "1h",
		"BOOTSTRAP_ADMIN_EMAIL": "root@example.com",
		"REDIS_DB":              "3",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "root@example.com", cfg.BootstrapAdminEmail)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	assert.Error(t, err)
}
