package mapper

import (
	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/model"
)

type CompanionMapper struct{}

func NewCompanionMapper() *CompanionMapper {
	return &CompanionMapper{}
}

func (m *CompanionMapper) ToEntity(c *model.Companion) *entity.Companion {
	if c == nil {
		return nil
	}
	return &entity.Companion{
		Id:        c.Id,
		Name:      c.Name,
		Subject:   c.Subject,
		Topic:     c.Topic,
		Duration:  c.Duration,
		Color:     c.Color,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CompanionMapper) ToModel(c *entity.Companion) *model.Companion {
	if c == nil {
		return nil
	}
	return &model.Companion{
		Id:        c.Id,
		Name:      c.Name,
		Subject:   c.Subject,
		Topic:     c.Topic,
		Duration:  c.Duration,
		Color:     c.Color,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CompanionMapper) ToEntities(companions []*model.Companion) []*entity.Companion {
	entities := make([]*entity.Companion, len(companions))
	for i, c := range companions {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
