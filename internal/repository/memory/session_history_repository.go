package memory

import (
	"context"

	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionHistoryRepository struct {
	store *Store
}

func NewSessionHistoryRepository(store *Store) contract.SessionHistoryRepository {
	return &SessionHistoryRepository{store: store}
}

func (r *SessionHistoryRepository) Create(ctx context.Context, session *entity.SessionHistory) error {
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = r.store.now()
	}
	row := *session
	row.Companion = nil
	r.store.sessions.insert(row.Id.String(), row)
	return nil
}

func (r *SessionHistoryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionHistory, error) {
	q, err := compile(specs)
	if err != nil {
		return nil, err
	}
	rows := q.run(r.store.sessions.scan())
	sessions := make([]*entity.SessionHistory, len(rows))
	for i, row := range rows {
		s := row.(entity.SessionHistory)
		if q.withCompanion {
			s.Companion = r.store.companion(s.CompanionId)
		}
		sessions[i] = &s
	}
	return sessions, nil
}
