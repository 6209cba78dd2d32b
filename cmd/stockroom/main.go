package main

import (
	"io"
	"log"
	"os"

	"stockroom/internal/config"
	"stockroom/internal/http/server"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Drops every table and reloads seed data; BOOTSTRAP=false keeps the store.
	if cfg.Bootstrap {
		if err := services.Bootstrap(db, cfg.SalesSeedFile); err != nil {
			log.Fatalf("bootstrap: %v", err)
		}
	}

	app := server.NewApp(cfg, db)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
