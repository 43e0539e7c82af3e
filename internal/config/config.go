package config

import "os"

type Config struct {
	DatabasePath   string
	Port           string
	SlackBotToken  string
	SlackChannelID string
	LogLevel       string
}

func Load() *Config {
	return &Config{
		DatabasePath:   getEnv("DATABASE_PATH", "./remote_week.db"),
		Port:           getEnv("PORT", "3000"),
		SlackBotToken:  getEnv("SLACK_BOT_TOKEN", ""),
		SlackChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// SlackEnabled reports whether assignment announcements are configured.
func (c *Config) SlackEnabled() bool {
	return c.SlackBotToken != "" && c.SlackChannelID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
