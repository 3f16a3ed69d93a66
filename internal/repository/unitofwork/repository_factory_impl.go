package unitofwork

import (
	"context"

	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/memory"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db: db,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// No transaction: every store call stands alone.
	return NewUnitOfWork(f.db.WithContext(ctx))
}

// MemoryRepositoryFactory serves repositories over a process-local memory.Store.
type MemoryRepositoryFactory struct {
	store *memory.Store
}

func NewMemoryRepositoryFactory(store *memory.Store) RepositoryFactory {
	return &MemoryRepositoryFactory{store: store}
}

func (f *MemoryRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &memoryUnitOfWork{store: f.store}
}

type memoryUnitOfWork struct {
	store *memory.Store
}

func (u *memoryUnitOfWork) CompanionRepository() contract.CompanionRepository {
	return memory.NewCompanionRepository(u.store)
}

func (u *memoryUnitOfWork) SessionHistoryRepository() contract.SessionHistoryRepository {
	return memory.NewSessionHistoryRepository(u.store)
}

func (u *memoryUnitOfWork) BookmarkRepository() contract.BookmarkRepository {
	return memory.NewBookmarkRepository(u.store)
}
