package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Limit caps the number of returned rows.
type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.N)
}

// Range selects rows From..To inclusive, zero-indexed.
type Range struct {
	From int
	To   int
}

func (s Range) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(s.From).Limit(s.Size())
}

func (s Range) Size() int {
	if s.To < s.From {
		return 0
	}
	return s.To - s.From + 1
}

// PageRange converts a 1-indexed page of the given size into a row range.
func PageRange(page, limit int) Range {
	return Range{
		From: (page - 1) * limit,
		To:   page*limit - 1,
	}
}
