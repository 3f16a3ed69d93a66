package mapper

import (
	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/model"
)

type BookmarkMapper struct {
	companions *CompanionMapper
}

func NewBookmarkMapper() *BookmarkMapper {
	return &BookmarkMapper{companions: NewCompanionMapper()}
}

func (m *BookmarkMapper) ToEntity(b *model.Bookmark) *entity.Bookmark {
	if b == nil {
		return nil
	}
	return &entity.Bookmark{
		Id:          b.Id,
		CompanionId: b.CompanionId,
		UserId:      b.UserId,
		CreatedAt:   b.CreatedAt,
		Companion:   m.companions.ToEntity(b.Companion),
	}
}

func (m *BookmarkMapper) ToModel(b *entity.Bookmark) *model.Bookmark {
	if b == nil {
		return nil
	}
	return &model.Bookmark{
		Id:          b.Id,
		CompanionId: b.CompanionId,
		UserId:      b.UserId,
		CreatedAt:   b.CreatedAt,
	}
}

func (m *BookmarkMapper) ToEntities(bookmarks []*model.Bookmark) []*entity.Bookmark {
	entities := make([]*entity.Bookmark, len(bookmarks))
	for i, b := range bookmarks {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
