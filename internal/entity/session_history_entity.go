package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionHistory struct {
	Id          uuid.UUID
	CompanionId uuid.UUID
	UserId      string
	CreatedAt   time.Time

	// Companion is only populated when the query asked for it, and stays nil for orphaned rows.
	Companion *Companion
}
