package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/recruitkit/candidatesdb/internal/config"
	"github.com/recruitkit/candidatesdb/internal/database"
	"github.com/recruitkit/candidatesdb/internal/server"
)

// @title Candidates API
// @version 1.0.0
// @description Candidate and document tracking service with residency permit alerts
// @contact.name API Support
// @contact.url https://github.com/recruitkit/candidatesdb

// @host localhost:3001
// @BasePath /
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Demo mode starts from the embedded fixture set
	if cfg.DemoMode {
		if err := database.Seed(db); err != nil {
			log.Fatalf("Failed to seed demo database: %v", err)
		}
		log.Println("Demo mode: in-memory database seeded from fixtures")
	}

	app := server.New(cfg, db)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
