package unitofwork

import (
	"companion-learning-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one request's store handle.
type UnitOfWork interface {
	CompanionRepository() contract.CompanionRepository
	SessionHistoryRepository() contract.SessionHistoryRepository
	BookmarkRepository() contract.BookmarkRepository
}
