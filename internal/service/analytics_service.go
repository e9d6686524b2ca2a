package service

import (
	"context"
	"encoding/json"
	"sync"

	"banking-assistant-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IAnalyticsService consumes chat-resolved events and keeps running
// per-intent counts. Runs for the life of the process.
type IAnalyticsService interface {
	Consume(ctx context.Context) error
	IntentCounts() map[string]int
}

type analyticsService struct {
	subscriber message.Subscriber
	topic      string
	logger     logger.ILogger

	mu     sync.Mutex
	counts map[string]int
}

func NewAnalyticsService(subscriber message.Subscriber, topic string, sysLogger logger.ILogger) IAnalyticsService {
	return &analyticsService{
		subscriber: subscriber,
		topic:      topic,
		logger:     sysLogger,
		counts:     make(map[string]int),
	}
}

func (s *analyticsService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		var event struct {
			SessionID    string `json:"session_id"`
			Intent       string `json:"intent"`
			Bank         string `json:"bank"`
			ResponseType string `json:"response_type"`
		}
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			s.logger.Warn("analytics", "malformed chat event", map[string]interface{}{"error": err.Error()})
			msg.Ack()
			continue
		}

		s.mu.Lock()
		s.counts[event.Intent]++
		total := s.counts[event.Intent]
		s.mu.Unlock()

		s.logger.Info("analytics", "chat resolved", map[string]interface{}{
			"intent":           event.Intent,
			"bank":             event.Bank,
			"response_type":    event.ResponseType,
			"total_for_intent": total,
		})
		msg.Ack()
	}

	return nil
}

// IntentCounts returns a snapshot of the per-intent totals.
func (s *analyticsService) IntentCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]int, len(s.counts))
	for intent, n := range s.counts {
		snapshot[intent] = n
	}
	return snapshot
}
