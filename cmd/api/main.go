package main

import (
	"context"
	"log"

	"outfit-backend/internal/bootstrap"
	"outfit-backend/internal/shared/config"
	"outfit-backend/internal/shared/server"
	"outfit-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()
	defer telemetry.Sync()

	addr := server.Addr(cfg)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
