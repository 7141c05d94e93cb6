package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"portfolio-gateway/app"
	"portfolio-gateway/config"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	config.LoadEnvFile(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Initialize application
	application, err := app.Initialize(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Status endpoint: GET http://localhost:%s/api/status", cfg.Port)

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
