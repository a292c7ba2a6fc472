package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/recruitkit/candidatesdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func migratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(&models.Candidate{}, &models.Document{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func tableDDL(t *testing.T, db *gorm.DB, table string) string {
	t.Helper()
	var ddl string
	if err := db.Raw("SELECT sql FROM sqlite_master WHERE name = ?", table).Scan(&ddl).Error; err != nil {
		t.Fatalf("Failed to read schema for %s: %v", table, err)
	}
	return ddl
}

// The foreign key must point from documents to candidates and nowhere else.
// A reversed constraint on the parent table would make every candidate insert
// fail once foreign keys are enforced.
func TestMigratedForeignKeyDirection(t *testing.T) {
	db := migratedDB(t)

	candidatesDDL := tableDDL(t, db, "candidates")
	if strings.Contains(candidatesDDL, "REFERENCES") {
		t.Errorf("candidates table must not reference any table, got DDL: %s", candidatesDDL)
	}

	documentsDDL := tableDDL(t, db, "documents")
	if !strings.Contains(documentsDDL, "REFERENCES") || !strings.Contains(documentsDDL, "candidates") {
		t.Errorf("documents table must reference candidates, got DDL: %s", documentsDDL)
	}
}

func TestInsertWithEnforcedForeignKeys(t *testing.T) {
	db := migratedDB(t)

	candidate := models.Candidate{
		FirstName: "Jean",
		LastName:  "Dupont",
		BirthDate: models.NewDate(time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)),
	}
	if err := db.Create(&candidate).Error; err != nil {
		t.Fatalf("Failed to insert candidate with foreign keys on: %v", err)
	}

	document := models.Document{
		CandidateID: candidate.CandidateID,
		Type:        models.DocumentTypeNationalIDCard,
		Status:      models.DocumentStatusPending,
		FileName:    "cni.pdf",
		FilePath:    "/uploads/cni.pdf",
	}
	if err := db.Create(&document).Error; err != nil {
		t.Fatalf("Failed to insert document with foreign keys on: %v", err)
	}

	// An orphan document must be rejected by the constraint
	orphan := models.Document{
		CandidateID: 999999,
		Type:        models.DocumentTypeNationalIDCard,
		Status:      models.DocumentStatusPending,
		FileName:    "orphan.pdf",
		FilePath:    "/uploads/orphan.pdf",
	}
	if err := db.Create(&orphan).Error; err == nil {
		t.Error("Expected orphan document insert to violate the foreign key")
	}
}
