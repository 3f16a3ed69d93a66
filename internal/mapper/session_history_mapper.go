package mapper

import (
	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/model"
)

type SessionHistoryMapper struct {
	companions *CompanionMapper
}

func NewSessionHistoryMapper() *SessionHistoryMapper {
	return &SessionHistoryMapper{companions: NewCompanionMapper()}
}

func (m *SessionHistoryMapper) ToEntity(s *model.SessionHistory) *entity.SessionHistory {
	if s == nil {
		return nil
	}
	return &entity.SessionHistory{
		Id:          s.Id,
		CompanionId: s.CompanionId,
		UserId:      s.UserId,
		CreatedAt:   s.CreatedAt,
		Companion:   m.companions.ToEntity(s.Companion),
	}
}

// ToModel never carries the joined companion; GORM would otherwise upsert it on Create.
func (m *SessionHistoryMapper) ToModel(s *entity.SessionHistory) *model.SessionHistory {
	if s == nil {
		return nil
	}
	return &model.SessionHistory{
		Id:          s.Id,
		CompanionId: s.CompanionId,
		UserId:      s.UserId,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *SessionHistoryMapper) ToEntities(sessions []*model.SessionHistory) []*entity.SessionHistory {
	entities := make([]*entity.SessionHistory, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
