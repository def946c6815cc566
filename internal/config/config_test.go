package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "DICTIONARY_LANGUAGE", "GAME_TOKEN_TTL_HOURS", "ENV", "ADMIN_PASSWORD_HASH"} {
		t.Setenv(k, "")
	}
	c := Load()

	assert.Equal(t, "5175", c.Server.Port)
	assert.Equal(t, ":5175", c.Addr())
	assert.Equal(t, "./data/dictionary.db", c.Words.DBPath)
	assert.Equal(t, "en", c.Words.Language)
	assert.Equal(t, 24*time.Hour, c.Auth.GameTokenTTL)
	assert.Empty(t, c.Auth.AdminPasswordHash)
	assert.False(t, c.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DICTIONARY_LANGUAGE", "en-GB")
	t.Setenv("GAME_TOKEN_TTL_HOURS", "2")
	t.Setenv("ENV", "production")
	c := Load()

	assert.Equal(t, ":9000", c.Addr())
	assert.Equal(t, "en-GB", c.Words.Language)
	assert.Equal(t, 2*time.Hour, c.Auth.GameTokenTTL)
	assert.True(t, c.IsProduction())

	t.Setenv("GAME_TOKEN_TTL_HOURS", "soon")
	assert.Equal(t, 24*time.Hour, Load().Auth.GameTokenTTL)
}

func TestLoad_GameTTL(t *testing.T) {
	t.Setenv("GAME_TTL_HOURS", "")
	assert.Equal(t, 24*time.Hour, Load().Server.GameTTL)

	t.Setenv("GAME_TTL_HOURS", "6")
	assert.Equal(t, 6*time.Hour, Load().Server.GameTTL)
}
