package main

import (
	"log"

	"nptest/internal/config"
	"nptest/ui"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := ui.NewApp(ui.Config{
		Port:      cfg.Server.Port,
		Shards:    cfg.Analysis.Shards,
		ExportDir: cfg.Export.Dir,
	})
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := app.Start(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
