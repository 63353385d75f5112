package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cpr_dispatch/internal/flow"
)

// MemoryDeskStore хранит рабочие места провайдеров в памяти процесса
type MemoryDeskStore struct {
	mu    sync.RWMutex
	desks map[string]flow.Desk
}

func NewMemoryDeskStore() *MemoryDeskStore {
	return &MemoryDeskStore{desks: make(map[string]flow.Desk)}
}

func (s *MemoryDeskStore) Load(_ context.Context, providerID string) (*flow.Desk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	desk, ok := s.desks[providerID]
	if !ok {
		return nil, nil
	}
	return &desk, nil
}

func (s *MemoryDeskStore) Save(_ context.Context, desk flow.Desk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.desks[desk.ProviderID] = desk
	return nil
}

// RedisDeskStore хранит рабочие места в Redis, чтобы провайдер видел свой выбор
// на любом экземпляре сервиса
type RedisDeskStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisDeskStore(redisClient *redis.Client, ttl time.Duration) *RedisDeskStore {
	return &RedisDeskStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func deskKey(providerID string) string {
	return fmt.Sprintf("cpr:desk:%s", providerID)
}

// Load читает рабочее место из Redis
func (s *RedisDeskStore) Load(ctx context.Context, providerID string) (*flow.Desk, error) {
	val, err := s.redisClient.Get(ctx, deskKey(providerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get desk from Redis: %w", err)
	}

	desk := &flow.Desk{}
	if err := json.Unmarshal(val, desk); err != nil {
		return nil, fmt.Errorf("failed to unmarshal desk: %w", err)
	}
	return desk, nil
}

// Save записывает рабочее место с TTL
func (s *RedisDeskStore) Save(ctx context.Context, desk flow.Desk) error {
	val, err := json.Marshal(desk)
	if err != nil {
		return fmt.Errorf("failed to marshal desk: %w", err)
	}
	if err := s.redisClient.Set(ctx, deskKey(desk.ProviderID), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save desk to Redis: %w", err)
	}
	return nil
}
