package dto

import (
	"github.com/google/uuid"
)

type BookmarkRequest struct {
	// Path is the UI path to recompute once the bookmark changes.
	Path string `json:"path" query:"path" validate:"required,startswith=/"`
}

type BookmarkResponse struct {
	Id          uuid.UUID `json:"id"`
	CompanionId uuid.UUID `json:"companion_id"`
	UserId      string    `json:"user_id"`
}

type BookmarkStatusResponse struct {
	CompanionId uuid.UUID `json:"companion_id"`
	Bookmarked  bool      `json:"bookmarked"`
}
