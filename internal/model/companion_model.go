package model

import (
	"time"

	"github.com/google/uuid"
)

type Companion struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Subject   string    `gorm:"type:varchar(100);not null;index"`
	Topic     string    `gorm:"type:text;not null"`
	Duration  int       `gorm:"not null"`
	Color     string    `gorm:"type:varchar(32)"`
	Author    string    `gorm:"type:varchar(255);index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Companion) TableName() string {
	return "companions"
}
