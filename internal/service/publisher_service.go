package service

import (
	"context"
	"encoding/json"

	"banking-assistant-be/internal/dto"
	"banking-assistant-be/internal/pkg/logger"
	"banking-assistant-be/pkg/events"
	pktNats "banking-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IPublisherService fans out a chat-resolved event after each handled
// turn: to the in-process bus for the analytics consumer, and to NATS
// when an external bus is configured. Publishing is best-effort and never
// fails the request.
type IPublisherService interface {
	PublishChatResolved(ctx context.Context, sessionID string, resp *dto.ChatResponse)
}

type publisherService struct {
	topic     string
	publisher message.Publisher
	external  *pktNats.Publisher // nil when NATS is not configured
	logger    logger.ILogger
}

func NewPublisherService(topic string, publisher message.Publisher, external *pktNats.Publisher, sysLogger logger.ILogger) IPublisherService {
	return &publisherService{
		topic:     topic,
		publisher: publisher,
		external:  external,
		logger:    sysLogger,
	}
}

func (s *publisherService) PublishChatResolved(ctx context.Context, sessionID string, resp *dto.ChatResponse) {
	bank := ""
	if resp.DetectedBank != nil {
		bank = *resp.DetectedBank
	}
	event := events.NewChatResolved(sessionID, resp.DetectedIntent, bank, resp.Response.Type)

	payload, err := json.Marshal(event.Payload())
	if err != nil {
		s.logger.Warn("publisher", "failed to marshal chat event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.logger.Warn("publisher", "failed to publish chat event", map[string]interface{}{"error": err.Error()})
	}

	if s.external != nil {
		if err := s.external.Publish(ctx, event); err != nil {
			s.logger.Warn("publisher", "failed to publish chat event to NATS", map[string]interface{}{"error": err.Error()})
		}
	}
}
