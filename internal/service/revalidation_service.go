package service

import (
	"context"
	"encoding/json"
	"time"

	"companion-learning-be/internal/dto"
	"companion-learning-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IRevalidationService signals that the view at a path must be recomputed on its next render.
// It never fails the caller.
type IRevalidationService interface {
	Invalidate(ctx context.Context, path string)
}

type revalidationService struct {
	publisher message.Publisher
	topicName string
	logger    logger.ILogger
}

func NewRevalidationService(publisher message.Publisher, topicName string, log logger.ILogger) IRevalidationService {
	return &revalidationService{
		publisher: publisher,
		topicName: topicName,
		logger:    log,
	}
}

func (s *revalidationService) Invalidate(ctx context.Context, path string) {
	payload, err := json.Marshal(dto.RevalidateViewMessage{
		Path:        path,
		RequestedAt: time.Now(),
	})
	if err != nil {
		s.logger.Error("RevalidationService", "Failed to marshal revalidation message", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(s.topicName, msg); err != nil {
		s.logger.Warn("RevalidationService", "Failed to publish revalidation message", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}
