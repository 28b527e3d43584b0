package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/devconnect_test?sslmode=disable")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("SERVER_PORT", "4001")
	t.Setenv("JWT_SECRET", "env_secret")

	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, "postgres://localhost:5432/devconnect_test?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "test", cfg.Server.Env)
	assert.Equal(t, 4001, cfg.Server.Port)
	assert.Equal(t, "env_secret", cfg.JWT.Secret)

	// Defaults still apply in env mode.
	assert.Equal(t, DefaultTokenTTLHours, cfg.JWT.TTL)
	assert.Equal(t, "https://api.github.com", cfg.Github.APIBase)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  host: 127.0.0.1
  port: 8080
  env: development
database:
  url: postgres://localhost:5432/devconnect?sslmode=disable
jwt:
  secret: file_secret
  ttl: 24
github:
  api_base: https://github.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("CONFIG_PATH", path)

	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file_secret", cfg.JWT.Secret)
	assert.Equal(t, 24, cfg.JWT.TTL)
	assert.Equal(t, "https://github.example.com", cfg.Github.APIBase)
}
