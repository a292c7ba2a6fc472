package services

import (
	"errors"

	"github.com/recruitkit/candidatesdb/internal/models"
	"github.com/recruitkit/candidatesdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DocumentService implements CRUD for documents attached to candidates.
type DocumentService struct {
	db *gorm.DB
}

// NewDocumentService builds a DocumentService on an open database handle.
func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{db: db}
}

// candidateExists checks the owning candidate without logging expected misses.
func (s *DocumentService) candidateExists(id uint64) error {
	var candidate models.Candidate
	err := s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Select("candidate_id").
		Where("candidate_id = ?", id).
		First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.NotFoundError{Resource: "candidate", ID: id}
		}
		return err
	}
	return nil
}

// Create attaches a new document to an existing candidate. Status defaults
// to pending. The result carries the owning candidate's snapshot.
func (s *DocumentService) Create(candidateID uint64, input CreateDocumentInput) (*models.Document, error) {
	if err := s.candidateExists(candidateID); err != nil {
		return nil, err
	}

	document := models.Document{
		CandidateID: candidateID,
		Type:        input.Type,
		Status:      models.DocumentStatusPending,
		FileName:    input.FileName,
		FilePath:    input.FilePath,
	}
	if err := s.db.Create(&document).Error; err != nil {
		// The existence check above raced a concurrent candidate delete
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, &types.ConstraintError{Message: "owning candidate no longer exists"}
		}
		return nil, err
	}

	return s.GetByID(document.DocumentID)
}

// ListByCandidate returns all documents owned by the candidate, newest
// created first, each including the owning candidate.
func (s *DocumentService) ListByCandidate(candidateID uint64) ([]models.Document, error) {
	if err := s.candidateExists(candidateID); err != nil {
		return nil, err
	}

	var documents []models.Document
	err := s.db.
		Preload("Candidate").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC, document_id DESC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}

	if documents == nil {
		documents = []models.Document{}
	}
	return documents, nil
}

// GetByID returns one document with its owning candidate.
func (s *DocumentService) GetByID(id uint64) (*models.Document, error) {
	var document models.Document
	err := s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Preload("Candidate").
		Where("document_id = ?", id).
		First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Resource: "document", ID: id}
		}
		return nil, err
	}
	return &document, nil
}

// UpdateStatus sets the document's validation status, the only field mutable
// after creation. An invalid status leaves the row untouched.
func (s *DocumentService) UpdateStatus(id uint64, status models.DocumentStatus) (*models.Document, error) {
	if !status.Valid() {
		return nil, types.NewValidationError("status", "must be one of PENDING, APPROVED, REJECTED")
	}

	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	err := s.db.Model(&models.Document{}).
		Where("document_id = ?", id).
		Update("status", status).Error
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Remove deletes one document independently of its candidate and returns the
// pre-deletion snapshot including the owning candidate.
func (s *DocumentService) Remove(id uint64) (*models.Document, error) {
	document, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Where("document_id = ?", id).Delete(&models.Document{}).Error; err != nil {
		return nil, err
	}

	return document, nil
}

// HasDocumentOfType reports whether the candidate already owns a document of
// the given type. Duplicates are permitted; this exists so callers can detect
// them if they choose to.
func (s *DocumentService) HasDocumentOfType(candidateID uint64, docType models.DocumentType) (bool, error) {
	var count int64
	err := s.db.Model(&models.Document{}).
		Where("candidate_id = ? AND type = ?", candidateID, docType).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
