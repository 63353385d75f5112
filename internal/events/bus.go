package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Bus - внутрипроцессная рассылка событий подписчикам.
// Publish никогда не блокируется: если буфер подписчика полон, событие для него теряется.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]chan Event
	logger      *logrus.Logger
}

func NewBus(logger *logrus.Logger) *Bus {
	return &Bus{
		subscribers: make(map[uuid.UUID]chan Event),
		logger:      logger,
	}
}

// Subscribe регистрирует подписчика с буфером заданного размера.
// Возвращаемая функция отписывает и закрывает канал, ее можно вызывать повторно.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	id := uuid.New()
	ch := make(chan Event, buffer)

	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Publish рассылает событие всем текущим подписчикам
func (b *Bus) Publish(_ context.Context, event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.WithFields(logrus.Fields{
				"subscriber": id,
				"event_type": event.Type,
				"request_id": event.RequestID,
			}).Warn("Subscriber buffer is full, dropping event")
		}
	}
	return nil
}

// SubscriberCount возвращает число активных подписчиков
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
