package contract

import (
	"context"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/repository/specification"
)

type SessionHistoryRepository interface {
	Create(ctx context.Context, session *entity.SessionHistory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionHistory, error)
}
