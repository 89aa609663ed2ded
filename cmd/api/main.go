package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/youqu117/Bookkeeping/internal/api"
	"github.com/youqu117/Bookkeeping/internal/assistant"
	"github.com/youqu117/Bookkeeping/internal/config"
	"github.com/youqu117/Bookkeeping/internal/logger"
	"github.com/youqu117/Bookkeeping/internal/seed"
	"github.com/youqu117/Bookkeeping/internal/store/inmemory"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to config file (optional)")
		port       = flag.String("port", "", "HTTP server port (overrides config)")
		seedPath   = flag.String("seed", "", "Path to seed JSON file (overrides config)")
	)
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *seedPath != "" {
		cfg.SeedFile = *seedPath
	}

	if cfg.APIKey == "" {
		log.Warn().Msg("No API key configured - the assistant will answer with its setup message")
	}

	ctx := context.Background()

	s := inmemory.New()
	if cfg.SeedFile != "" {
		data, err := seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("seed_file", cfg.SeedFile).Msg("Failed to load seed data")
		}
		if err := data.Apply(ctx, s); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply seed data")
		}
		log.Info().
			Int("tags", len(data.Tags)).
			Int("accounts", len(data.Accounts)).
			Int("transactions", len(data.Transactions)).
			Msg("Seed data loaded")
	}

	a := assistant.New(assistant.GeminiGenerator{}, cfg.Model, log)
	handler := api.NewRouter(a, s, cfg.APIKey, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
