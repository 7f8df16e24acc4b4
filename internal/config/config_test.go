package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"umbaer-craft-backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DISCORD_BOT_TOKEN", "GUILD_ID", "PORT", "UPLOAD_DIR", "STATIC_DIR", "DEBUG_ERRORS"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "dist", cfg.StaticDir)
	assert.False(t, cfg.DebugErrors)
	assert.False(t, cfg.DiscordConfigured())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("GUILD_ID", "guild-1")
	t.Setenv("DEBUG_ERRORS", "true")
	t.Setenv("PORT", "8080")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.DiscordConfigured())
	assert.True(t, cfg.DebugErrors)
	assert.Equal(t, "8080", cfg.Port)
}

func TestDiscordConfigured_NeedsBothFields(t *testing.T) {
	assert.False(t, (&config.Config{DiscordBotToken: "token"}).DiscordConfigured())
	assert.False(t, (&config.Config{GuildID: "guild-1"}).DiscordConfigured())
	assert.True(t, (&config.Config{DiscordBotToken: "token", GuildID: "guild-1"}).DiscordConfigured())
}
