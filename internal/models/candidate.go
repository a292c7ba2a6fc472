package models

import (
	"time"
)

// Candidate represents a tracked person with attached documents
type Candidate struct {
	CandidateID uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string     `gorm:"size:255;not null" json:"firstName"`
	LastName    string     `gorm:"size:255;not null" json:"lastName"`
	BirthDate   Date       `gorm:"not null" json:"birthDate" swaggertype:"string" example:"1990-05-15"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Documents   []Document `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE" json:"documents"`
}

// TableName overrides the table name for Candidate
func (Candidate) TableName() string {
	return "candidates"
}

// HoldsResidencyPermit reports whether any attached document is a residency
// permit. Only meaningful when Documents has been loaded.
func (c Candidate) HoldsResidencyPermit() bool {
	for _, d := range c.Documents {
		if d.Type == DocumentTypeResidencyPermit {
			return true
		}
	}
	return false
}
