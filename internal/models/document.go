package models

import (
	"time"
)

// DocumentType enumerates the accepted kinds of candidate evidence.
type DocumentType string

const (
	DocumentTypeNationalIDCard      DocumentType = "NATIONAL_ID_CARD"
	DocumentTypeResidencyPermit     DocumentType = "RESIDENCY_PERMIT"
	DocumentTypeBankAccountProof    DocumentType = "BANK_ACCOUNT_PROOF"
	DocumentTypeProofOfAddress      DocumentType = "PROOF_OF_ADDRESS"
	DocumentTypeHealthInsuranceCard DocumentType = "HEALTH_INSURANCE_CARD"
)

// DocumentTypes returns all accepted document types.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeNationalIDCard,
		DocumentTypeResidencyPermit,
		DocumentTypeBankAccountProof,
		DocumentTypeProofOfAddress,
		DocumentTypeHealthInsuranceCard,
	}
}

// Valid reports whether t is one of the accepted document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeNationalIDCard, DocumentTypeResidencyPermit,
		DocumentTypeBankAccountProof, DocumentTypeProofOfAddress,
		DocumentTypeHealthInsuranceCard:
		return true
	}
	return false
}

// DocumentStatus enumerates the validation states of a document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusApproved DocumentStatus = "APPROVED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

// Valid reports whether s is one of the accepted document statuses.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusApproved, DocumentStatusRejected:
		return true
	}
	return false
}

// Document represents a piece of evidence attached to a Candidate.
// The file path is opaque; no filesystem validation happens at this layer.
type Document struct {
	DocumentID  uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	CandidateID uint64         `gorm:"not null;index" json:"candidateId"`
	Type        DocumentType   `gorm:"size:32;not null" json:"type"`
	Status      DocumentStatus `gorm:"size:16;not null;default:PENDING" json:"status"`
	FileName    string         `gorm:"size:255;not null" json:"fileName"`
	FilePath    string         `gorm:"size:512;not null" json:"filePath"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Candidate   *Candidate     `json:"candidate,omitempty"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}
