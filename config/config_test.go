package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresFirebaseCredentials(t *testing.T) {
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/etc/secrets/firebase.json")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("FRONTEND_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24, cfg.Session.TTLHours)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.Origins)
	assert.False(t, cfg.AdminConfigured())
}

func TestLoad_OriginListIsSplitAndTrimmed(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/etc/secrets/firebase.json")
	t.Setenv("FRONTEND_ORIGINS", "https://example.com, https://www.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.CORS.Origins)
}

func TestAdminConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.AdminConfigured())

	cfg.Admin = AdminConfig{Email: "admin@example.com", PasswordHash: "$argon2id$..."}
	assert.True(t, cfg.AdminConfigured())
}
