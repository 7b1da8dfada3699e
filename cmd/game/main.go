package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wartrail/wartrail/internal/config"
	"github.com/wartrail/wartrail/internal/dice"
	"github.com/wartrail/wartrail/internal/handlers/terminal"
	"github.com/wartrail/wartrail/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	prompter := terminal.NewPrompter(&terminal.PrompterConfig{
		In:    os.Stdin,
		Out:   os.Stdout,
		Delay: time.Duration(cfg.Game.TextDelayMS) * time.Millisecond,
	})

	provider := services.NewProvider(&services.ProviderConfig{
		Prompter: prompter,
		Roller:   dice.NewRandomRoller(cfg.Game.Seed),
	})

	session := terminal.NewSession(&terminal.SessionConfig{
		Prompter:        prompter,
		Campaign:        provider.CampaignService,
		DefaultMissions: cfg.Game.DefaultMissions,
	})

	// An interrupt mid-prompt ends the run cleanly; there is no state
	// worth salvaging.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-sc
		prompter.Narrate("")
		prompter.Narrate("Game interrupted. Goodbye, soldier.")
		os.Exit(0)
	}()

	if err := session.Run(context.Background()); err != nil {
		log.Fatalf("Session failed: %v", err)
	}
}
