package service

import (
	"context"
	"math"
	"strings"
	"time"

	"companion-learning-be/internal/constant"
	"companion-learning-be/internal/dto"
	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/identity"
	"companion-learning-be/internal/pkg/apperror"
	"companion-learning-be/internal/pkg/logger"
	"companion-learning-be/internal/repository/specification"
	"companion-learning-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICompanionService interface {
	NewCompanionPermissions(ctx context.Context, caller identity.Identity) (bool, error)
	CheckCanCreateCompanion(ctx context.Context, caller identity.Identity) error
	CreateCompanion(ctx context.Context, caller identity.Identity, req *dto.CreateCompanionRequest) (*dto.CompanionResponse, error)
	GetAllCompanions(ctx context.Context, req *dto.GetAllCompanionsRequest) ([]*dto.CompanionResponse, error)
	GetCompanion(ctx context.Context, id uuid.UUID) (*dto.CompanionResponse, error)
	GetUserCompanions(ctx context.Context, userId string) ([]*dto.CompanionResponse, error)
}

type companionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCompanionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICompanionService {
	return &companionService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

type quotaDecision struct {
	allowed bool
	limit   int
	used    int64
}

// companionLimit maps the caller's features onto a cap. Unlimited plans never reach here.
func companionLimit(caller identity.Identity) int {
	switch {
	case caller.Has(identity.Feature(constant.FeatureThreeCompanionCap)):
		return 3
	case caller.Has(identity.Feature(constant.FeatureTenCompanionCap)):
		return 10
	default:
		return 0
	}
}

func (s *companionService) decideQuota(ctx context.Context, caller identity.Identity) (*quotaDecision, error) {
	if !caller.Authenticated() {
		return nil, apperror.ErrAuthenticationRequired
	}

	if caller.Has(identity.Plan(constant.PlanPro)) {
		return &quotaDecision{allowed: true}, nil
	}

	limit := companionLimit(caller)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.CompanionRepository().Count(ctx, specification.ByAuthor{Author: caller.UserId})
	if err != nil {
		return nil, apperror.NewStoreError("count companions", err)
	}

	// count > limit, not >=: an author may hold exactly limit+1 companions.
	return &quotaDecision{
		allowed: !(count > int64(limit)),
		limit:   limit,
		used:    count,
	}, nil
}

func (s *companionService) NewCompanionPermissions(ctx context.Context, caller identity.Identity) (bool, error) {
	decision, err := s.decideQuota(ctx, caller)
	if err != nil {
		return false, err
	}
	return decision.allowed, nil
}

// CheckCanCreateCompanion is the guard HTTP callers run before CreateCompanion.
func (s *companionService) CheckCanCreateCompanion(ctx context.Context, caller identity.Identity) error {
	decision, err := s.decideQuota(ctx, caller)
	if err != nil {
		return err
	}
	if !decision.allowed {
		return &apperror.LimitExceededError{Limit: decision.limit, Used: int(decision.used)}
	}
	return nil
}

func (s *companionService) CreateCompanion(ctx context.Context, caller identity.Identity, req *dto.CreateCompanionRequest) (*dto.CompanionResponse, error) {
	if !caller.Authenticated() {
		return nil, apperror.ErrAuthenticationRequired
	}

	companion := entity.Companion{
		Id:        uuid.New(),
		Name:      req.Name,
		Subject:   req.Subject,
		Topic:     req.Topic,
		Duration:  req.Duration,
		Color:     companionColor(req.Color, req.Subject),
		Author:    caller.UserId,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CompanionRepository().Create(ctx, &companion); err != nil {
		return nil, apperror.NewStoreError("create companion", err)
	}

	s.logger.Info("CompanionService", "Companion created", map[string]interface{}{
		"companion_id": companion.Id,
		"author":       companion.Author,
	})

	return toCompanionResponse(&companion), nil
}

func companionColor(color, subject string) string {
	if color != "" {
		return color
	}
	if c, ok := constant.SubjectColors[strings.ToLower(subject)]; ok {
		return c
	}
	return constant.DefaultCompanionColor
}

func (s *companionService) GetAllCompanions(ctx context.Context, req *dto.GetAllCompanionsRequest) ([]*dto.CompanionResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = constant.DefaultCompanionPageSize
	}
	limit = min(limit, constant.MaxCompanionPageSize)
	page := req.Page
	if page <= 0 {
		page = constant.DefaultCompanionPage
	}
	// a page whose first row offset does not fit in an int lies past any table
	if page > math.MaxInt/limit {
		return []*dto.CompanionResponse{}, nil
	}

	specs := []specification.Specification{}
	if req.Subject != "" {
		specs = append(specs, specification.SubjectLike{Subject: req.Subject})
	}
	if req.Topic != "" {
		specs = append(specs, specification.TopicOrNameLike{Topic: req.Topic})
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "id"},
		specification.PageRange(page, limit),
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	companions, err := uow.CompanionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.NewStoreError("list companions", err)
	}

	return toCompanionResponses(companions), nil
}

// GetCompanion answers ErrNotFound both for a missing row and for a failed lookup.
func (s *companionService) GetCompanion(ctx context.Context, id uuid.UUID) (*dto.CompanionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	companion, err := uow.CompanionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		s.logger.Error("CompanionService", "Failed to fetch companion", map[string]interface{}{
			"companion_id": id,
			"error":        err.Error(),
		})
		return nil, apperror.ErrNotFound
	}
	if companion == nil {
		return nil, apperror.ErrNotFound
	}

	return toCompanionResponse(companion), nil
}

func (s *companionService) GetUserCompanions(ctx context.Context, userId string) ([]*dto.CompanionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	companions, err := uow.CompanionRepository().FindAll(ctx,
		specification.ByAuthor{Author: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.NewStoreError("list user companions", err)
	}

	return toCompanionResponses(companions), nil
}

func toCompanionResponse(c *entity.Companion) *dto.CompanionResponse {
	return &dto.CompanionResponse{
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

func toCompanionResponses(companions []*entity.Companion) []*dto.CompanionResponse {
	result := make([]*dto.CompanionResponse, 0, len(companions))
	for _, c := range companions {
		result = append(result, toCompanionResponse(c))
	}
	return result
}
