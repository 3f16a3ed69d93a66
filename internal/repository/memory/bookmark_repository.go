package memory

import (
	"context"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookmarkRepository struct {
	store *Store
}

func NewBookmarkRepository(store *Store) contract.BookmarkRepository {
	return &BookmarkRepository{store: store}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	if bookmark.Id == uuid.Nil {
		bookmark.Id = uuid.New()
	}
	if bookmark.CreatedAt.IsZero() {
		bookmark.CreatedAt = r.store.now()
	}
	row := *bookmark
	row.Companion = nil
	r.store.bookmarks.insert(row.Id.String(), row)
	return nil
}

func (r *BookmarkRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error) {
	found, err := r.FindAll(ctx, specs...)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func (r *BookmarkRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error) {
	q, err := compile(specs)
	if err != nil {
		return nil, err
	}
	rows := q.run(r.store.bookmarks.scan())
	bookmarks := make([]*entity.Bookmark, len(rows))
	for i, row := range rows {
		b := row.(entity.Bookmark)
		if q.withCompanion {
			b.Companion = r.store.companion(b.CompanionId)
		}
		bookmarks[i] = &b
	}
	return bookmarks, nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if len(specs) == 0 {
		return 0, nil
	}
	q, err := compile(specs)
	if err != nil {
		return 0, err
	}
	rows := q.run(r.store.bookmarks.scan())
	for _, row := range rows {
		r.store.bookmarks.delete(row.(entity.Bookmark).Id.String())
	}
	return int64(len(rows)), nil
}
