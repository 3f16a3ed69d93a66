package service

import (
	"context"
	"errors"
	"time"

	"companion-learning-be/internal/dto"
	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/identity"
	"companion-learning-be/internal/pkg/apperror"
	"companion-learning-be/internal/pkg/logger"
	"companion-learning-be/internal/repository/contract"
	"companion-learning-be/internal/repository/specification"
	"companion-learning-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IBookmarkService interface {
	AddBookmark(ctx context.Context, caller identity.Identity, companionId uuid.UUID, path string) (*dto.BookmarkResponse, error)
	RemoveBookmark(ctx context.Context, caller identity.Identity, companionId uuid.UUID, path string) error
	IsBookmarked(ctx context.Context, companionId uuid.UUID, userId string) (bool, error)
	GetBookmarkedCompanions(ctx context.Context, userId string) ([]*dto.CompanionResponse, error)
}

type bookmarkService struct {
	uowFactory   unitofwork.RepositoryFactory
	revalidation IRevalidationService
	logger       logger.ILogger
}

func NewBookmarkService(
	uowFactory unitofwork.RepositoryFactory,
	revalidation IRevalidationService,
	log logger.ILogger,
) IBookmarkService {
	return &bookmarkService{
		uowFactory:   uowFactory,
		revalidation: revalidation,
		logger:       log,
	}
}

// AddBookmark checks for an existing row before inserting. The check and the insert are
// separate store calls, so two racing requests may both pass the check.
func (s *bookmarkService) AddBookmark(ctx context.Context, caller identity.Identity, companionId uuid.UUID, path string) (*dto.BookmarkResponse, error) {
	if !caller.Authenticated() {
		return nil, apperror.ErrAuthenticationRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BookmarkRepository()

	existing, err := repo.FindOne(ctx,
		specification.ByCompanionID{CompanionID: companionId},
		specification.ByUserID{UserID: caller.UserId},
	)
	if err != nil {
		return nil, apperror.NewStoreError("find bookmark", err)
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyBookmarked
	}

	bookmark := entity.Bookmark{
		Id:          uuid.New(),
		CompanionId: companionId,
		UserId:      caller.UserId,
		CreatedAt:   time.Now(),
	}
	if err := repo.Create(ctx, &bookmark); err != nil {
		if errors.Is(err, contract.ErrDuplicateBookmark) {
			return nil, apperror.ErrAlreadyBookmarked
		}
		return nil, apperror.NewStoreError("create bookmark", err)
	}

	s.revalidation.Invalidate(ctx, path)

	return &dto.BookmarkResponse{
		Id:          bookmark.Id,
		CompanionId: bookmark.CompanionId,
		UserId:      bookmark.UserId,
	}, nil
}

func (s *bookmarkService) RemoveBookmark(ctx context.Context, caller identity.Identity, companionId uuid.UUID, path string) error {
	if !caller.Authenticated() {
		return apperror.ErrAuthenticationRequired
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.BookmarkRepository().Delete(ctx,
		specification.ByCompanionID{CompanionID: companionId},
		specification.ByUserID{UserID: caller.UserId},
	)
	if err != nil {
		return apperror.NewStoreError("delete bookmark", err)
	}

	s.logger.Debug("BookmarkService", "Bookmark removed", map[string]interface{}{
		"companion_id": companionId,
		"user_id":      caller.UserId,
		"rows":         removed,
	})

	s.revalidation.Invalidate(ctx, path)
	return nil
}

func (s *bookmarkService) IsBookmarked(ctx context.Context, companionId uuid.UUID, userId string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.BookmarkRepository().FindOne(ctx,
		specification.ByCompanionID{CompanionID: companionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return false, apperror.NewStoreError("find bookmark", err)
	}
	return existing != nil, nil
}

func (s *bookmarkService) GetBookmarkedCompanions(ctx context.Context, userId string) ([]*dto.CompanionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	bookmarks, err := uow.BookmarkRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.WithCompanion{},
	)
	if err != nil {
		return nil, apperror.NewStoreError("list bookmarks", err)
	}

	result := make([]*dto.CompanionResponse, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		if bookmark.Companion == nil {
			continue
		}
		result = append(result, toCompanionResponse(bookmark.Companion))
	}
	return result, nil
}
