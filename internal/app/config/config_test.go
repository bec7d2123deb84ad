package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.toml"), []byte(body), 0o600))
	t.Setenv("CONFIG_NAME", "test")
	t.Setenv("CONFIG_PATH", dir)
	return dir
}

func TestNewConfig_FromFile(t *testing.T) {
	writeConfig(t, `
ServiceHost = "127.0.0.1"
ServicePort = 9090

[JWT]
Secret = "file-secret"
TTL = "2h"

[Redis]
Host = "redis"
Port = 6380
DB = 2

[Log]
Level = "debug"
Format = "json"

[CORS]
AllowOrigins = ["https://blood.example"]
`)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.ServiceHost)
	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "redis", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://blood.example"}, cfg.CORS.AllowOrigins)
}

func TestNewConfig_EnvOverridesFile(t *testing.T) {
	writeConfig(t, `
[JWT]
Secret = "file-secret"
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVICEPORT", "7070")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 7070, cfg.ServicePort)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "localhost", cfg.Redis.Host)
}

func TestNewConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_NAME", "does-not-exist")
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Setenv("JWT_SECRET", "s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServicePort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowOrigins)
}

func TestNewConfig_RequiresSecret(t *testing.T) {
	t.Setenv("CONFIG_NAME", "does-not-exist")
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_BrokenFile(t *testing.T) {
	writeConfig(t, `ServicePort = = 1`)

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestConfigureLogger(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	(&Config{Log: LogConfig{Level: "warn", Format: "json"}}).ConfigureLogger()
	assert.Equal(t, log.WarnLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	(&Config{Log: LogConfig{Level: "verbose"}}).ConfigureLogger()
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
}
