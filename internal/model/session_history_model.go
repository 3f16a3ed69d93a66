package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionHistory struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanionId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId      string    `gorm:"type:varchar(255);index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`

	Companion *Companion `gorm:"foreignKey:CompanionId"`
}

func (SessionHistory) TableName() string {
	return "session_history"
}
