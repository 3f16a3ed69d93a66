package implementation

import (
	"context"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/mapper"
	"companion-learning-be/internal/model"
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SessionHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionHistoryMapper
}

func NewSessionHistoryRepository(db *gorm.DB) contract.SessionHistoryRepository {
	return &SessionHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionHistoryMapper(),
	}
}

func (r *SessionHistoryRepositoryImpl) Create(ctx context.Context, session *entity.SessionHistory) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *SessionHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionHistory, error) {
	var models []*model.SessionHistory
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
