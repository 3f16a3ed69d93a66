package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUserID struct {
	UserID string
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByCompanionID struct {
	CompanionID uuid.UUID
}

func (s ByCompanionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("companion_id = ?", s.CompanionID)
}

// WithCompanion loads the companion referenced by companion_id alongside each row.
type WithCompanion struct{}

func (s WithCompanion) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Companion")
}
