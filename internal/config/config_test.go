package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, http.SameSiteStrictMode, cfg.Auth.SameSite())
	assert.Equal(t, "memory", cfg.Sessions.Type)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "short")
	_, err = Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	sqlite := DatabaseConfig{Type: "sqlite", Path: "/tmp/inv.db"}
	assert.Contains(t, sqlite.DSN(), "file:/tmp/inv.db?")
	assert.Contains(t, sqlite.DSN(), "_pragma=foreign_keys(1)")

	pg := DatabaseConfig{Type: "postgres", Host: "db", Name: "inv", User: "app", Password: "p@ss", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/inv?sslmode=disable", pg.DSN())

	my := DatabaseConfig{Type: "mysql", Host: "db", Port: 3307, Name: "inv", User: "app", Password: "pw"}
	assert.Equal(t, "app:pw@tcp(db:3307)/inv?parseTime=true&loc=UTC", my.DSN())
}

func TestAuthConfig_SameSite(t *testing.T) {
	for mode, want := range map[string]http.SameSite{
		"lax":     http.SameSiteLaxMode,
		"None":    http.SameSiteNoneMode,
		"strict":  http.SameSiteStrictMode,
		"unknown": http.SameSiteStrictMode,
	} {
		a := AuthConfig{CookieSameSite: mode}
		assert.Equal(t, want, a.SameSite(), mode)
	}
}

func TestSessionsConfig_RedisAddress(t *testing.T) {
	s := SessionsConfig{RedisHost: "cache", RedisPort: 6380}
	assert.Equal(t, "cache:6380", s.RedisAddress())
}
