package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite://jetistik.db", cfg.DatabaseURL)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenMaxAge)
	assert.True(t, cfg.AllowRegistration)
	assert.Equal(t, "kk", cfg.DefaultLanguage)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://user:pw@db:5432/jetistik")
	t.Setenv("ALLOW_REGISTRATION", "false")
	t.Setenv("TOKEN_MAX_AGE", "720h")
	t.Setenv("S3_BUCKET", "achievements")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://user:pw@db:5432/jetistik", cfg.DatabaseURL)
	assert.False(t, cfg.AllowRegistration)
	assert.Equal(t, 30*24*time.Hour, cfg.TokenMaxAge)
	assert.True(t, cfg.S3.Enabled())
}

func TestLoad_RejectsTokenMaxAgeOutOfRange(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TOKEN_MAX_AGE", "1h")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_MAX_AGE")
}
