package implementation

import (
	"context"
	"errors"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/mapper"
	"companion-learning-be/internal/model"
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/specification"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is SQLSTATE 23505.
const pgUniqueViolation = "23505"

type BookmarkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookmarkMapper
}

func NewBookmarkRepository(db *gorm.DB) contract.BookmarkRepository {
	return &BookmarkRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookmarkMapper(),
	}
}

func (r *BookmarkRepositoryImpl) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	m := r.mapper.ToModel(bookmark)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return contract.ErrDuplicateBookmark
		}
		return err
	}
	*bookmark = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookmarkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Bookmark, error) {
	var m model.Bookmark
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookmarkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error) {
	var models []*model.Bookmark
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BookmarkRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if len(specs) == 0 {
		// never issue an unfiltered delete
		return 0, nil
	}
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	result := query.Delete(&model.Bookmark{})
	return result.RowsAffected, result.Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
