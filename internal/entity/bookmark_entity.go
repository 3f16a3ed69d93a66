package entity

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	Id          uuid.UUID
	CompanionId uuid.UUID
	UserId      string
	CreatedAt   time.Time

	Companion *Companion
}
