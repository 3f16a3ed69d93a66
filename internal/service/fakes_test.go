package service

import (
	"context"
	"sync"
	"testing"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/memory"
	"companion-learning-be/internal/repository/specification"
	"companion-learning-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/require"
)

func newMemoryFactory() (unitofwork.RepositoryFactory, *memory.Store) {
	store := memory.NewStore()
	return unitofwork.NewMemoryRepositoryFactory(store), store
}

func seedCompanion(t *testing.T, store *memory.Store, c entity.Companion) *entity.Companion {
	t.Helper()
	require.NoError(t, memory.NewCompanionRepository(store).Create(context.Background(), &c))
	return &c
}

// recordingInvalidator captures Invalidate calls instead of publishing them.
type recordingInvalidator struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recordingInvalidator) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

// failingFactory hands out repositories whose every call fails with err.
type failingFactory struct {
	err error
}

func (f failingFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return failingUnitOfWork(f)
}

type failingUnitOfWork struct {
	err error
}

func (u failingUnitOfWork) CompanionRepository() contract.CompanionRepository {
	return failingCompanionRepo(u)
}

func (u failingUnitOfWork) SessionHistoryRepository() contract.SessionHistoryRepository {
	return failingSessionRepo(u)
}

func (u failingUnitOfWork) BookmarkRepository() contract.BookmarkRepository {
	return failingBookmarkRepo(u)
}

type failingCompanionRepo struct{ err error }

func (r failingCompanionRepo) Create(context.Context, *entity.Companion) error { return r.err }
func (r failingCompanionRepo) FindOne(context.Context, ...specification.Specification) (*entity.Companion, error) {
	return nil, r.err
}
func (r failingCompanionRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Companion, error) {
	return nil, r.err
}
func (r failingCompanionRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, r.err
}

type failingSessionRepo struct{ err error }

func (r failingSessionRepo) Create(context.Context, *entity.SessionHistory) error { return r.err }
func (r failingSessionRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.SessionHistory, error) {
	return nil, r.err
}

type failingBookmarkRepo struct{ err error }

func (r failingBookmarkRepo) Create(context.Context, *entity.Bookmark) error { return r.err }
func (r failingBookmarkRepo) FindOne(context.Context, ...specification.Specification) (*entity.Bookmark, error) {
	return nil, r.err
}
func (r failingBookmarkRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Bookmark, error) {
	return nil, r.err
}
func (r failingBookmarkRepo) Delete(context.Context, ...specification.Specification) (int64, error) {
	return 0, r.err
}

// duplicateOnCreateFactory behaves like the memory store but rejects bookmark inserts the way a
// unique index would.
type duplicateOnCreateFactory struct {
	unitofwork.RepositoryFactory
}

func (f duplicateOnCreateFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return duplicateOnCreateUnitOfWork{f.RepositoryFactory.NewUnitOfWork(ctx)}
}

type duplicateOnCreateUnitOfWork struct {
	unitofwork.UnitOfWork
}

func (u duplicateOnCreateUnitOfWork) BookmarkRepository() contract.BookmarkRepository {
	return duplicateBookmarkRepo{u.UnitOfWork.BookmarkRepository()}
}

type duplicateBookmarkRepo struct {
	contract.BookmarkRepository
}

func (duplicateBookmarkRepo) Create(context.Context, *entity.Bookmark) error {
	return contract.ErrDuplicateBookmark
}
