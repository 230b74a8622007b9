package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// It exits the process when a required variable is missing.
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}
	return cfg
}

func load() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	var missing []string
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		missing = append(missing, key)
		return ""
	}
	// Optional values fall back to empty, which disables the feature they configure.
	getOptional := func(key string) string {
		return os.Getenv(key)
	}

	cfg := Config{
		DBName: getEnv("DB_NAME"),
		Port:   getEnv("PORT"),
		Slack: SlackConfig{
			Token:         getOptional("SLACK_BOT_TOKEN"),
			ChannelID:     getOptional("SLACK_CHANNEL_ID"),
			SigningSecret: getOptional("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: getOptional("TURSO_PRIMARY_URL"),
			AuthToken:  getOptional("TURSO_AUTH_TOKEN"),
		},
		ProjectID: getOptional("GCP_PROJECT"),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %v", missing)
	}
	return cfg, nil
}
