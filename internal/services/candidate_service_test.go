package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/recruitkit/candidatesdb/internal/models"
	"github.com/recruitkit/candidatesdb/internal/services"
	"github.com/recruitkit/candidatesdb/internal/types"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "Failed to create test database")

	// An in-memory database exists per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.Candidate{}, &models.Document{}))

	return db
}

func birthDate(t *testing.T, value string) models.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return models.NewDate(parsed)
}

func TestCreateCandidate(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCandidateService(db)

	candidate, err := svc.Create(services.CreateCandidateInput{
		FirstName: "Jean",
		LastName:  "Dupont",
		BirthDate: birthDate(t, "1990-05-15"),
	})
	require.NoError(t, err)
	require.NotZero(t, candidate.CandidateID)
	require.Equal(t, "Jean", candidate.FirstName)
	require.Equal(t, "Dupont", candidate.LastName)
	require.Equal(t, "1990-05-15", candidate.BirthDate.String())
	require.NotNil(t, candidate.Documents)
	require.Empty(t, candidate.Documents)
}

func TestGetCandidateNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCandidateService(db)

	_, err := svc.GetByID(999999)
	require.Error(t, err)

	var notFound *types.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "candidate", notFound.Resource)
	require.EqualValues(t, 999999, notFound.ID)
}

func TestListCandidatesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCandidateService(db)

	names := []string{"Alice", "Bob", "Carla"}
	for _, name := range names {
		_, err := svc.Create(services.CreateCandidateInput{
			FirstName: name,
			LastName:  "Test",
			BirthDate: birthDate(t, "1991-01-01"),
		})
		require.NoError(t, err)
	}

	candidates, err := svc.List()
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	// Insertion order reversed; equal timestamps fall back to id descending
	require.Equal(t, "Carla", candidates[0].FirstName)
	require.Equal(t, "Bob", candidates[1].FirstName)
	require.Equal(t, "Alice", candidates[2].FirstName)

	for _, c := range candidates {
		require.NotNil(t, c.Documents)
	}
}

func TestUpdateCandidatePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCandidateService(db)

	candidate, err := svc.Create(services.CreateCandidateInput{
		FirstName: "Marie",
		LastName:  "Martin",
		BirthDate: birthDate(t, "1985-12-03"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(candidate.CandidateID, services.UpdateCandidateInput{
		FirstName: types.NewOptional("Maria"),
	})
	require.NoError(t, err)

	// Only the provided field changes
	require.Equal(t, "Maria", updated.FirstName)
	require.Equal(t, "Martin", updated.LastName)
	require.Equal(t, "1985-12-03", updated.BirthDate.String())
}

func TestUpdateCandidateNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCandidateService(db)

	_, err := svc.Update(424242, services.UpdateCandidateInput{
		FirstName: types.NewOptional("Nobody"),
	})

	var notFound *types.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUpdateCandidateEmptyPayloadIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewCandidateService(db)

	candidate, err := svc.Create(services.CreateCandidateInput{
		FirstName: "Marie",
		LastName:  "Martin",
		BirthDate: birthDate(t, "1985-12-03"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(candidate.CandidateID, services.UpdateCandidateInput{})
	require.NoError(t, err)
	require.Equal(t, "Marie", updated.FirstName)
	require.Equal(t, "Martin", updated.LastName)
}

func TestRemoveCandidateCascadesToDocuments(t *testing.T) {
	db := setupTestDB(t)
	candidates := services.NewCandidateService(db)
	documents := services.NewDocumentService(db)

	candidate, err := candidates.Create(services.CreateCandidateInput{
		FirstName: "Ahmed",
		LastName:  "Benali",
		BirthDate: birthDate(t, "1992-08-22"),
	})
	require.NoError(t, err)

	for _, docType := range []models.DocumentType{
		models.DocumentTypeNationalIDCard,
		models.DocumentTypeResidencyPermit,
	} {
		_, err := documents.Create(candidate.CandidateID, services.CreateDocumentInput{
			Type:     docType,
			FileName: "doc.pdf",
			FilePath: "/uploads/doc.pdf",
		})
		require.NoError(t, err)
	}

	snapshot, err := candidates.Remove(candidate.CandidateID)
	require.NoError(t, err)
	require.Len(t, snapshot.Documents, 2, "snapshot keeps the documents held at deletion time")

	_, err = candidates.GetByID(candidate.CandidateID)
	var notFound *types.NotFoundError
	require.ErrorAs(t, err, &notFound)

	var orphans int64
	require.NoError(t, db.Model(&models.Document{}).
		Where("candidate_id = ?", candidate.CandidateID).
		Count(&orphans).Error)
	require.Zero(t, orphans, "documents must not survive their candidate")
}

func TestHasRestrictedDocument(t *testing.T) {
	db := setupTestDB(t)
	candidates := services.NewCandidateService(db)
	documents := services.NewDocumentService(db)

	plain, err := candidates.Create(services.CreateCandidateInput{
		FirstName: "Jean",
		LastName:  "Dupont",
		BirthDate: birthDate(t, "1990-05-15"),
	})
	require.NoError(t, err)

	holder, err := candidates.Create(services.CreateCandidateInput{
		FirstName: "Ahmed",
		LastName:  "Benali",
		BirthDate: birthDate(t, "1992-08-22"),
	})
	require.NoError(t, err)

	_, err = documents.Create(plain.CandidateID, services.CreateDocumentInput{
		Type:     models.DocumentTypeNationalIDCard,
		FileName: "cni.pdf",
		FilePath: "/uploads/cni.pdf",
	})
	require.NoError(t, err)

	_, err = documents.Create(holder.CandidateID, services.CreateDocumentInput{
		Type:     models.DocumentTypeResidencyPermit,
		FileName: "permit.pdf",
		FilePath: "/uploads/permit.pdf",
	})
	require.NoError(t, err)

	restricted, err := candidates.HasRestrictedDocument(plain.CandidateID)
	require.NoError(t, err)
	require.False(t, restricted)

	restricted, err = candidates.HasRestrictedDocument(holder.CandidateID)
	require.NoError(t, err)
	require.True(t, restricted)
}

func TestHasRestrictedDocumentUnknownCandidate(t *testing.T) {
	db := setupTestDB(t)
	candidates := services.NewCandidateService(db)

	_, err := candidates.HasRestrictedDocument(31337)

	var notFound *types.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
