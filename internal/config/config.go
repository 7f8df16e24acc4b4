package config

import "os"

type Config struct {
	// Discord
	DiscordBotToken string
	GuildID         string
	CategoryID      string

	// Uploads / static assets
	UploadDir string
	StaticDir string

	// Server
	Port        string
	Environment string
	DebugErrors bool
}

func Load() (*Config, error) {
	cfg := &Config{
		DiscordBotToken: getEnv("DISCORD_BOT_TOKEN", ""),
		GuildID:         getEnv("GUILD_ID", ""),
		CategoryID:      getEnv("DISCORD_CATEGORY_ID", ""),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		StaticDir: getEnv("STATIC_DIR", "dist"),

		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		DebugErrors: getEnv("DEBUG_ERRORS", "false") == "true",
	}

	return cfg, nil
}

// DiscordConfigured reports whether the bot credential and guild are set.
// Missing Discord configuration is deliberately not a startup error: each
// order request is rejected with a configuration error instead, so the
// static site keeps being served.
func (c *Config) DiscordConfigured() bool {
	return c.DiscordBotToken != "" && c.GuildID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
