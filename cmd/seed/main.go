package main

import (
	"log"

	"github.com/recruitkit/candidatesdb/internal/config"
	"github.com/recruitkit/candidatesdb/internal/database"
	"github.com/recruitkit/candidatesdb/internal/models"
)

// Loads the embedded fixture set into a real database. Destructive: existing
// candidates and documents are wiped first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	var candidates, documents int64
	db.Model(&models.Candidate{}).Count(&candidates)
	db.Model(&models.Document{}).Count(&documents)
	log.Printf("Seeding complete: %d candidate(s), %d document(s)", candidates, documents)
}
