package database

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/recruitkit/candidatesdb/data"
	"github.com/recruitkit/candidatesdb/internal/models"
	"gorm.io/gorm"
)

type fixtureDocument struct {
	Type     models.DocumentType   `json:"type"`
	Status   models.DocumentStatus `json:"status"`
	FileName string                `json:"fileName"`
}

type fixtureCandidate struct {
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	BirthDate models.Date       `json:"birthDate"`
	Documents []fixtureDocument `json:"documents"`
}

type fixtureSet struct {
	Candidates []fixtureCandidate `json:"candidates"`
}

// Seed wipes the candidate tables and loads the embedded fixture set. Stored
// file paths are opaque, so each one gets a fresh upload token.
func Seed(db *gorm.DB) error {
	var fixtures fixtureSet
	if err := json.Unmarshal(data.DemoFixtures, &fixtures); err != nil {
		return fmt.Errorf("failed to parse fixtures: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Candidate{}).Error; err != nil {
			return err
		}

		for _, fc := range fixtures.Candidates {
			candidate := models.Candidate{
				FirstName: fc.FirstName,
				LastName:  fc.LastName,
				BirthDate: fc.BirthDate,
			}
			if err := tx.Create(&candidate).Error; err != nil {
				return fmt.Errorf("failed to seed candidate %s %s: %w", fc.FirstName, fc.LastName, err)
			}

			for _, fd := range fc.Documents {
				document := models.Document{
					CandidateID: candidate.CandidateID,
					Type:        fd.Type,
					Status:      fd.Status,
					FileName:    fd.FileName,
					FilePath:    fmt.Sprintf("/uploads/%s_%s", uuid.NewString(), fd.FileName),
				}
				if err := tx.Create(&document).Error; err != nil {
					return fmt.Errorf("failed to seed document %s: %w", fd.FileName, err)
				}
			}

			log.Printf("Seeded candidate %s %s with %d document(s)",
				candidate.FirstName, candidate.LastName, len(fc.Documents))
		}

		return nil
	})
}
