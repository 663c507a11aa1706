package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port                int    `envconfig:"PORT" default:"8080"`
	LogLevel            string `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL         string `envconfig:"DATABASE_URL" required:"true"`
	Version             string `envconfig:"VERSION" default:"dev"`
	SweepIntervalSec    int    `envconfig:"SWEEP_INTERVAL_SECONDS" default:"60"`
	QuoteRetentionHours int    `envconfig:"QUOTE_RETENTION_HOURS" default:"72"`
	TelegramBotToken    string `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
	TelegramChatID      int64  `envconfig:"TELEGRAM_CHAT_ID" default:"0"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
