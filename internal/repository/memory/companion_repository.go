package memory

import (
	"context"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CompanionRepository struct {
	store *Store
}

func NewCompanionRepository(store *Store) contract.CompanionRepository {
	return &CompanionRepository{store: store}
}

func (r *CompanionRepository) Create(ctx context.Context, companion *entity.Companion) error {
	if companion.Id == uuid.Nil {
		companion.Id = uuid.New()
	}
	if companion.CreatedAt.IsZero() {
		companion.CreatedAt = r.store.now()
	}
	r.store.companions.insert(companion.Id.String(), *companion)
	return nil
}

func (r *CompanionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Companion, error) {
	found, err := r.FindAll(ctx, specs...)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func (r *CompanionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Companion, error) {
	q, err := compile(specs)
	if err != nil {
		return nil, err
	}
	rows := q.run(r.store.companions.scan())
	companions := make([]*entity.Companion, len(rows))
	for i, row := range rows {
		c := row.(entity.Companion)
		companions[i] = &c
	}
	return companions, nil
}

func (r *CompanionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	q, err := compile(specs)
	if err != nil {
		return 0, err
	}
	return q.count(r.store.companions.scan()), nil
}

// companion returns a copy of the stored companion, or nil when it does not exist.
func (s *Store) companion(id uuid.UUID) *entity.Companion {
	v, ok := s.companions.get(id.String())
	if !ok {
		return nil
	}
	c := v.(entity.Companion)
	return &c
}
