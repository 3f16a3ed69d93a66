package unitofwork

import (
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) CompanionRepository() contract.CompanionRepository {
	return implementation.NewCompanionRepository(u.db)
}

func (u *UnitOfWorkImpl) SessionHistoryRepository() contract.SessionHistoryRepository {
	return implementation.NewSessionHistoryRepository(u.db)
}

func (u *UnitOfWorkImpl) BookmarkRepository() contract.BookmarkRepository {
	return implementation.NewBookmarkRepository(u.db)
}
