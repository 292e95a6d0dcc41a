package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: recipebox
  log:
    level: debug
http:
  port: 5555
database:
  driver: sqlite
  dsn: "file::memory:"
  maxOpenConns: 4
session:
  cookieName: sid
  ttl: 2h
`

func TestLoadWithEnv_FileAndEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("HTTP_PORT", "6000")
	t.Setenv("DATABASE_MAXOPENCONNS", "12")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "recipebox", cfg.Env.ServiceName)
	assert.Equal(t, 6000, cfg.HTTP.Port)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 12, cfg.Database.MaxOpenConns)
	require.NotNil(t, cfg.Session)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Database: &DatabaseConfig{}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Session)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultCleanupSchedule, cfg.Session.CleanupSchedule)
}

func TestBuildReplicasFromEnv_StopsAtFirstGap(t *testing.T) {
	t.Setenv("READ_REPLICA_0_DSN", "host=r0")
	t.Setenv("READ_REPLICA_1_DSN", "host=r1")
	t.Setenv("READ_REPLICA_3_DSN", "host=r3")

	assert.Equal(t, []string{"host=r0", "host=r1"}, buildReplicasFromEnv())
}
