package config

import (
	"log"
	"os"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackTeamID        string
	StatePath          string
	Port               string
}

func Load() *Config {
	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackTeamID:        getEnv("SLACK_TEAM_ID", ""),
		StatePath:          getEnv("STATE_PATH", "./checklist.json"),
		Port:               getEnv("PORT", "3000"),
	}

	// Missing credentials are not fatal: the process keeps running and the
	// first gateway call surfaces the failure.
	if cfg.SlackBotToken == "" {
		log.Println("Warning: SLACK_BOT_TOKEN is not set")
	}
	if cfg.SlackSigningSecret == "" {
		log.Println("Warning: SLACK_SIGNING_SECRET is not set, request verification will fail")
	}
	if cfg.SlackTeamID == "" {
		log.Println("Warning: SLACK_TEAM_ID is not set, commands from any workspace will be accepted")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
