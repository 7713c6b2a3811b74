package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 12, cfg.Auth.TokenTTL)
	assert.Equal(t, "0 20 * * *", cfg.Summary.CronSchedule)
	assert.Equal(t, "America/Bogota", cfg.Summary.Timezone)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "granja", cfg.MongoDB.DBName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_TTL_HOURS", "24")
	t.Setenv("MONGODB_DB_NAME", "granja_test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 24, cfg.Auth.TokenTTL)
	assert.Equal(t, "granja_test", cfg.MongoDB.DBName)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "doce")

	_, err := Load("")
	assert.Error(t, err)
}
