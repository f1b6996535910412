package main

import (
	"log"
	"os"

	"github.com/lumenlearn/lumen-go/config"
	"github.com/lumenlearn/lumen-go/devserver"
	"github.com/lumenlearn/lumen-go/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := logging.New(cfg.Debug)

	// Postgres when configured, seeded memory otherwise.
	var store devserver.Store
	if os.Getenv("DB_HOST") != "" {
		store, err = devserver.OpenGorm(cfg)
		if err != nil {
			log.Fatalf("Error opening database: %v", err)
		}
	} else {
		store, err = devserver.NewMemStore()
		if err != nil {
			log.Fatalf("Error seeding store: %v", err)
		}
		logger.Printf("no DB_HOST set, using in-memory store")
	}

	app := devserver.NewApp(cfg, store, logger)
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
