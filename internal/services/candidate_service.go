package services

import (
	"errors"

	"github.com/recruitkit/candidatesdb/internal/models"
	"github.com/recruitkit/candidatesdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// CandidateService implements CRUD and the derived-alert check for candidates.
// The persistence handle is injected at construction time; the service owns
// no connection lifecycle.
type CandidateService struct {
	db *gorm.DB
}

// NewCandidateService builds a CandidateService on an open database handle.
func NewCandidateService(db *gorm.DB) *CandidateService {
	return &CandidateService{db: db}
}

// documentsNewestFirst orders preloaded documents by creation time descending,
// id descending as a deterministic tie-break within the same instant.
func documentsNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC, document_id DESC")
}

// Create registers a new candidate with an empty document set.
// Input validation belongs to the boundary layer and is not repeated here.
func (s *CandidateService) Create(input CreateCandidateInput) (*models.Candidate, error) {
	candidate := models.Candidate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.BirthDate,
	}
	if err := s.db.Create(&candidate).Error; err != nil {
		return nil, err
	}

	candidate.Documents = []models.Document{}
	return &candidate, nil
}

// List returns every candidate with its documents, newest created first.
func (s *CandidateService) List() ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := s.db.
		Clauses(hints.CommentBefore("select", "candidate_list")).
		Preload("Documents", documentsNewestFirst).
		Order("created_at DESC, candidate_id DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		if candidates[i].Documents == nil {
			candidates[i].Documents = []models.Document{}
		}
	}
	return candidates, nil
}

// GetByID returns one candidate with its documents, newest created first.
func (s *CandidateService) GetByID(id uint64) (*models.Candidate, error) {
	var candidate models.Candidate
	err := s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)}).
		Preload("Documents", documentsNewestFirst).
		Where("candidate_id = ?", id).
		First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &types.NotFoundError{Resource: "candidate", ID: id}
		}
		return nil, err
	}

	if candidate.Documents == nil {
		candidate.Documents = []models.Document{}
	}
	return &candidate, nil
}

// Update applies only the fields present in the partial payload and returns
// the updated candidate with its documents. There is no transaction around
// the check-then-update pair; a concurrent delete loses the race and the
// reload surfaces the not-found.
func (s *CandidateService) Update(id uint64, input UpdateCandidateInput) (*models.Candidate, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.FirstName.IsSet() {
		updates["first_name"] = input.FirstName.Get()
	}
	if input.LastName.IsSet() {
		updates["last_name"] = input.LastName.Get()
	}
	if input.BirthDate.IsSet() {
		updates["birth_date"] = input.BirthDate.Get()
	}

	if len(updates) > 0 {
		err := s.db.Model(&models.Candidate{}).
			Where("candidate_id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

// Remove deletes the candidate and, transitively, all its documents inside
// one transaction (children first, then parent). The returned snapshot holds
// the documents the candidate had at the moment of deletion.
func (s *CandidateService) Remove(id uint64) (*models.Candidate, error) {
	candidate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		return tx.Where("candidate_id = ?", id).Delete(&models.Candidate{}).Error
	})
	if err != nil {
		return nil, err
	}

	return candidate, nil
}

// HasRestrictedDocument reports whether the candidate owns at least one
// residency permit. An unknown candidate id is an error, consistent with
// every other read on this service.
func (s *CandidateService) HasRestrictedDocument(id uint64) (bool, error) {
	var exists int64
	err := s.db.Model(&models.Candidate{}).
		Where("candidate_id = ?", id).
		Count(&exists).Error
	if err != nil {
		return false, err
	}
	if exists == 0 {
		return false, &types.NotFoundError{Resource: "candidate", ID: id}
	}

	var count int64
	err = s.db.Model(&models.Document{}).
		Where("candidate_id = ? AND type = ?", id, models.DocumentTypeResidencyPermit).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
