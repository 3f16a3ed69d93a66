package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCompanionRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Subject  string `json:"subject" validate:"required,max=100"`
	Topic    string `json:"topic" validate:"required"`
	Duration int    `json:"duration" validate:"required,gt=0"`
	Color    string `json:"color" validate:"omitempty,hexcolor"`
}

// GetAllCompanionsRequest is the listing filter. Zero Limit/Page fall back to the defaults.
type GetAllCompanionsRequest struct {
	Limit   int    `query:"limit"`
	Page    int    `query:"page"`
	Subject string `query:"subject"`
	Topic   string `query:"topic"`
}

type CompanionResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	Duration  int       `json:"duration"`
	Color     string    `json:"color"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type CompanionPermissionsResponse struct {
	CanCreate bool `json:"can_create"`
}
