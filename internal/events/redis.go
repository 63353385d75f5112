package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const relayChannel = "cpr:ledger_events"

// RedisRelay публикует события в канал Redis и пересылает полученные из канала
// события в локальную шину. Так подписчики всех экземпляров сервиса видят
// принятия, сделанные на любом из них.
type RedisRelay struct {
	redisClient *redis.Client
	local       Publisher
	logger      *logrus.Logger
}

func NewRedisRelay(redisClient *redis.Client, local Publisher, logger *logrus.Logger) *RedisRelay {
	return &RedisRelay{
		redisClient: redisClient,
		local:       local,
		logger:      logger,
	}
}

// Publish отправляет событие в канал Redis
func (r *RedisRelay) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}
	if err := r.redisClient.Publish(ctx, relayChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish ledger event to Redis: %w", err)
	}
	return nil
}

// Start подписывается на канал и пересылает события в локальную шину до отмены ctx
func (r *RedisRelay) Start(ctx context.Context) {
	pubsub := r.redisClient.Subscribe(ctx, relayChannel)
	r.logger.Info("Starting ledger event relay...")

	go func() {
		defer pubsub.Close()
		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping ledger event relay.")
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					r.logger.WithError(err).Error("Failed to unmarshal ledger event from Redis")
					continue
				}
				if err := r.local.Publish(ctx, event); err != nil {
					r.logger.WithError(err).Error("Failed to forward ledger event to local bus")
				}
			}
		}
	}()
}
