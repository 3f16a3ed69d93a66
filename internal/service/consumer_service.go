package service

import (
	"context"
	"encoding/json"

	"companion-learning-be/internal/dto"
	"companion-learning-be/internal/pkg/logger"
	"companion-learning-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// RevalidationBroadcaster pushes a revalidation hint to connected clients.
type RevalidationBroadcaster interface {
	BroadcastRevalidation(path string)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	broadcaster    RevalidationBroadcaster
	eventPublisher EventPublisher
	logger         logger.ILogger
}

// NewConsumerService wires the revalidation topic to its sinks. eventPublisher may be nil
// when NATS is not configured.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	broadcaster RevalidationBroadcaster,
	eventPublisher EventPublisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		broadcaster:    broadcaster,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RevalidateViewMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal revalidation message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // a malformed payload will never parse, don't redeliver it
		return
	}

	if cs.broadcaster != nil {
		cs.broadcaster.BroadcastRevalidation(payload.Path)
	}

	if cs.eventPublisher != nil {
		evt := events.NewViewInvalidated(payload.Path, payload.RequestedAt)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to publish VIEW_INVALIDATED event", map[string]interface{}{
				"path":  payload.Path,
				"error": err.Error(),
			})
		}
	}

	cs.logger.Debug("ConsumerService", "View invalidated", map[string]interface{}{"path": payload.Path})
	msg.Ack()
}
