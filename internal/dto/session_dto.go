package dto

import (
	"time"

	"github.com/google/uuid"
)

type SessionHistoryResponse struct {
	Id          uuid.UUID `json:"id"`
	CompanionId uuid.UUID `json:"companion_id"`
	UserId      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
