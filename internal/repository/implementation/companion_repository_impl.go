package implementation

import (
	"context"
	"errors"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/mapper"
	"companion-learning-be/internal/model"
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CompanionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CompanionMapper
}

func NewCompanionRepository(db *gorm.DB) contract.CompanionRepository {
	return &CompanionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCompanionMapper(),
	}
}

func (r *CompanionRepositoryImpl) Create(ctx context.Context, companion *entity.Companion) error {
	m := r.mapper.ToModel(companion)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*companion = *r.mapper.ToEntity(m)
	return nil
}

func (r *CompanionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Companion, error) {
	var m model.Companion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CompanionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Companion, error) {
	var models []*model.Companion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CompanionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Companion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
