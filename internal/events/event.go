package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/cpr_dispatch/internal/models"
)

// Type - вид события реестра
type Type string

const (
	TypeRequestOpened   Type = "request.opened"
	TypeRequestAccepted Type = "request.accepted"
)

// Event - изменение в реестре запросов
type Event struct {
	ID            uuid.UUID         `json:"id"`
	Type          Type              `json:"type"`
	RequestID     string            `json:"request_id"`
	AcceptedCount int               `json:"accepted_count"`
	ETAMinutes    int               `json:"eta_minutes,omitempty"`
	Responder     *models.Responder `json:"responder,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// NewAcceptedEvent создает событие принятия по уже обновленному запросу
func NewAcceptedEvent(req *models.EmergencyRequest, etaMinutes int, responder *models.Responder) Event {
	return Event{
		ID:            uuid.New(),
		Type:          TypeRequestAccepted,
		RequestID:     req.ID,
		AcceptedCount: req.AcceptedCount(),
		ETAMinutes:    etaMinutes,
		Responder:     responder,
		OccurredAt:    req.UpdatedAt,
	}
}

// NewOpenedEvent создает событие появления нового запроса
func NewOpenedEvent(req *models.EmergencyRequest) Event {
	return Event{
		ID:         uuid.New(),
		Type:       TypeRequestOpened,
		RequestID:  req.ID,
		OccurredAt: req.CreatedAt,
	}
}

// Publisher - получатель событий реестра
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Fanout рассылает событие всем издателям и возвращает первую ошибку
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var firstErr error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
