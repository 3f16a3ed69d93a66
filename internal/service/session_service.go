package service

import (
	"context"
	"time"

	"companion-learning-be/internal/constant"
	"companion-learning-be/internal/dto"
	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/identity"
	"companion-learning-be/internal/pkg/apperror"
	"companion-learning-be/internal/repository/specification"
	"companion-learning-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ISessionService records companion launches and serves the recent-session feeds.
// The feeds drop rows whose companion has since been deleted, so they can return
// fewer than limit entries.
type ISessionService interface {
	AddToSessionHistory(ctx context.Context, caller identity.Identity, companionId uuid.UUID) (*dto.SessionHistoryResponse, error)
	GetRecentSessions(ctx context.Context, limit int) ([]*dto.CompanionResponse, error)
	GetUserSessions(ctx context.Context, userId string, limit int) ([]*dto.CompanionResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory) ISessionService {
	return &sessionService{uowFactory: uowFactory}
}

// AddToSessionHistory records one launch. Repeated launches are separate rows.
func (s *sessionService) AddToSessionHistory(ctx context.Context, caller identity.Identity, companionId uuid.UUID) (*dto.SessionHistoryResponse, error) {
	if !caller.Authenticated() {
		return nil, apperror.ErrAuthenticationRequired
	}

	session := entity.SessionHistory{
		Id:          uuid.New(),
		CompanionId: companionId,
		UserId:      caller.UserId,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionHistoryRepository().Create(ctx, &session); err != nil {
		return nil, apperror.NewStoreError("create session history", err)
	}

	return &dto.SessionHistoryResponse{
		Id:          session.Id,
		CompanionId: session.CompanionId,
		UserId:      session.UserId,
		CreatedAt:   session.CreatedAt,
	}, nil
}

func (s *sessionService) GetRecentSessions(ctx context.Context, limit int) ([]*dto.CompanionResponse, error) {
	return s.sessionCompanions(ctx, limit)
}

func (s *sessionService) GetUserSessions(ctx context.Context, userId string, limit int) ([]*dto.CompanionResponse, error) {
	return s.sessionCompanions(ctx, limit, specification.ByUserID{UserID: userId})
}

func (s *sessionService) sessionCompanions(ctx context.Context, limit int, filters ...specification.Specification) ([]*dto.CompanionResponse, error) {
	if limit <= 0 {
		limit = constant.DefaultSessionLimit
	}

	specs := append(filters,
		specification.WithCompanion{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionHistoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewStoreError("list session history", err)
	}

	result := make([]*dto.CompanionResponse, 0, len(sessions))
	for _, session := range sessions {
		// companion deleted after the session was recorded
		if session.Companion == nil {
			continue
		}
		result = append(result, toCompanionResponse(session.Companion))
	}
	return result, nil
}
