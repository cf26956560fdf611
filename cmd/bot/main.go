package main

import (
	"log"
	"net/http"

	"github.com/hamzakaisi/newera-gang-checker/internal/clock"
	"github.com/hamzakaisi/newera-gang-checker/internal/config"
	"github.com/hamzakaisi/newera-gang-checker/internal/domain/service"
	"github.com/hamzakaisi/newera-gang-checker/internal/handlers"
	"github.com/hamzakaisi/newera-gang-checker/internal/health"
	"github.com/hamzakaisi/newera-gang-checker/internal/store"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	resolver := clock.New()
	checklistStore := store.New(cfg.StatePath, resolver)

	slackClient := slack.New(cfg.SlackBotToken)

	services := service.New(checklistStore, slackClient, resolver)

	// Catch up on a rollover that happened while the process was down.
	if err := services.Checklist.EnsureToday(); err != nil {
		log.Printf("Startup rollover check failed: %v", err)
	}

	services.Rollover.Start()
	defer services.Rollover.Stop()

	handler := handlers.New(slackClient, services.Checklist, cfg.SlackSigningSecret, cfg.SlackTeamID)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/interactions", handler.HandleInteraction)
	http.HandleFunc("/health", health.Handler)
	http.HandleFunc("/", health.RootHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
