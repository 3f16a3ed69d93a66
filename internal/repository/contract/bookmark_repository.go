package contract

import (
	"context"
	"errors"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/repository/specification"
)

// ErrDuplicateBookmark is returned by Create when the store itself rejects a second
// (companion, user) row. Stores without such a constraint never return it.
var ErrDuplicateBookmark = errors.New("duplicate bookmark")

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *entity.Bookmark) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error)
	// Delete removes every matching row and reports how many were removed.
	Delete(ctx context.Context, specs ...specification.Specification) (int64, error)
}
