package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4000, cfg.Server.Port)
	require.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	require.Equal(t, 7*24*time.Hour, cfg.Auth.SessionTTL)
	require.True(t, cfg.DB.Seed)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
  allowed_origins: ["https://folio.example"]
db:
  path: /tmp/folio.db
auth:
  session_ttl: 1h
  allow_signup: false
rate_limit:
  contact_per_minute: 2
`), 0o644))

	t.Setenv("FOLIO_CONFIG_PATH", path)
	t.Setenv("FOLIO_SERVER_PORT", "9100")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("FOLIO_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "/tmp/folio.db", cfg.DB.Path)
	require.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	require.False(t, cfg.Auth.AllowSignUp)
	require.Equal(t, 2, cfg.RateLimit.ContactPerMinute)
	require.Equal(t, 20, cfg.RateLimit.ChatPerMinute)
	require.Equal(t, "secret", cfg.Gemini.APIKey)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("FOLIO_SERVER_PORT", "eighty")
	_, err := Load()
	require.Error(t, err)
}
