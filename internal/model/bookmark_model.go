package model

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanionId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId      string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Companion *Companion `gorm:"foreignKey:CompanionId"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
