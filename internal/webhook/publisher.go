package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cpr_dispatch/internal/events"
	"github.com/shenikar/cpr_dispatch/internal/models"
)

const (
	webhookQueueKey = "cpr_events"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	EventID       uuid.UUID         `json:"event_id"`
	Type          events.Type       `json:"type"`
	RequestID     string            `json:"request_id"`
	AcceptedCount int               `json:"accepted_count"`
	ETA           string            `json:"eta,omitempty"`
	Responder     *models.Responder `json:"responder,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}

// NewWebhookEvent переводит событие реестра в формат вебхука
func NewWebhookEvent(event events.Event) WebhookEvent {
	we := WebhookEvent{
		EventID:       event.ID,
		Type:          event.Type,
		RequestID:     event.RequestID,
		AcceptedCount: event.AcceptedCount,
		Responder:     event.Responder,
		Timestamp:     event.OccurredAt,
	}
	if event.ETAMinutes > 0 {
		we.ETA = models.FormatETA(event.ETAMinutes)
	}
	return we
}

// RedisWebhookPublisher ставит события реестра в очередь Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(NewWebhookEvent(event))
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH кладет в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
