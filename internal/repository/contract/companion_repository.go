package contract

import (
	"context"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/repository/specification"
)

type CompanionRepository interface {
	Create(ctx context.Context, companion *entity.Companion) error
	// FindOne returns nil, nil when nothing matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Companion, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Companion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
