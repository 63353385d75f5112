package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/cpr_dispatch/internal/events"
	"github.com/shenikar/cpr_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// RequestRepository определяет контракт хранилища реестра запросов.
// Accept обязан выполняться атомарно: чтение, добавление ETA и запись в одной критической секции.
type RequestRepository interface {
	List(ctx context.Context) ([]*models.EmergencyRequest, error)
	GetByID(ctx context.Context, id string) (*models.EmergencyRequest, error)
	Create(ctx context.Context, req *models.EmergencyRequest) error
	Accept(ctx context.Context, id string, etaMinutes int) (*models.EmergencyRequest, error)
	Seed(ctx context.Context, reqs []*models.EmergencyRequest) error
}

// EventPublisher определяет контракт для публикации событий реестра
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// LedgerService определяет контракт бизнес-логики реестра запросов
type LedgerService interface {
	ListRequests(ctx context.Context) ([]*models.EmergencyRequest, error)
	SelectRequest(ctx context.Context, id string) (*models.EmergencyRequest, error)
	AcceptRequest(ctx context.Context, id string, etaMinutes int, responder *models.Responder) (*models.EmergencyRequest, error)
	OpenRequest(ctx context.Context, req *models.EmergencyRequest) error
	Stats(ctx context.Context) (*models.LedgerStats, error)
}

type ledgerService struct {
	repo      RequestRepository
	publisher EventPublisher
	logger    *logrus.Logger
}

func NewLedgerService(repo RequestRepository, publisher EventPublisher, logger *logrus.Logger) LedgerService {
	return &ledgerService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// ListRequests возвращает снимок реестра в порядке создания
func (s *ledgerService) ListRequests(ctx context.Context) ([]*models.EmergencyRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ledger",
		"method":  "ListRequests",
	})

	reqs, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list requests from repository")
		return nil, fmt.Errorf("service: could not list requests: %w", err)
	}

	log.WithField("count", len(reqs)).Debug("Requests listed successfully")
	return reqs, nil
}

// SelectRequest возвращает запрос по id или models.ErrNotFound
func (s *ledgerService) SelectRequest(ctx context.Context, id string) (*models.EmergencyRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "ledger",
		"method":     "SelectRequest",
		"request_id": id,
	})

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get request from repository")
		return nil, fmt.Errorf("service: could not get request: %w", err)
	}
	return req, nil
}

// AcceptRequest фиксирует еще одного провайдера, принявшего запрос
func (s *ledgerService) AcceptRequest(ctx context.Context, id string, etaMinutes int, responder *models.Responder) (*models.EmergencyRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "ledger",
		"method":      "AcceptRequest",
		"request_id":  id,
		"eta_minutes": etaMinutes,
	})
	log.Info("Attempting to accept request")

	if err := models.ValidateETA(etaMinutes); err != nil {
		log.WithError(err).Warn("Rejected acceptance with invalid ETA")
		return nil, fmt.Errorf("service: could not accept request: %w", err)
	}
	if err := responder.Validate(); err != nil {
		log.WithError(err).Warn("Rejected acceptance with invalid responder")
		return nil, fmt.Errorf("service: could not accept request: %w", err)
	}

	req, err := s.repo.Accept(ctx, id, etaMinutes)
	if err != nil {
		log.WithError(err).Warn("Failed to accept request in repository")
		return nil, fmt.Errorf("service: could not accept request: %w", err)
	}

	log.WithFields(logrus.Fields{
		"accepted_count": req.AcceptedCount(),
		"status":         req.Status(),
	}).Info("Request accepted successfully")

	// Принятие уже зафиксировано, ошибка доставки события его не отменяет
	if err := s.publisher.Publish(ctx, events.NewAcceptedEvent(req, etaMinutes, responder)); err != nil {
		log.WithError(err).Error("Failed to publish acceptance event")
	}
	return req, nil
}

// OpenRequest регистрирует новый запрос от того, кто просит помощи.
// Заранее назначенный id сохраняется, иначе выдается новый.
func (s *ledgerService) OpenRequest(ctx context.Context, req *models.EmergencyRequest) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ledger",
		"method":  "OpenRequest",
		"type":    req.Type,
	})
	log.Info("Attempting to open a new request")

	if err := validateNewRequest(req); err != nil {
		log.WithError(err).Warn("Rejected invalid request")
		return fmt.Errorf("service: could not open request: %w", err)
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.AcceptedETAs = []string{}
	if err := s.repo.Create(ctx, req); err != nil {
		log.WithError(err).Error("Failed to create request in repository")
		return fmt.Errorf("service: could not open request: %w", err)
	}

	log.WithField("request_id", req.ID).Info("Request opened successfully")
	if err := s.publisher.Publish(ctx, events.NewOpenedEvent(req)); err != nil {
		log.WithError(err).Error("Failed to publish open event")
	}
	return nil
}

// Stats считает запросы по статусам и общее число откликнувшихся провайдеров
func (s *ledgerService) Stats(ctx context.Context) (*models.LedgerStats, error) {
	reqs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "ledger",
			"method":  "Stats",
		}).WithError(err).Error("Failed to list requests for stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}

	stats := &models.LedgerStats{Total: len(reqs)}
	for _, req := range reqs {
		if req.Status() == models.StatusUnaccepted {
			stats.Unaccepted++
		} else {
			stats.Accepted++
		}
		stats.Responders += req.AcceptedCount()
	}
	return stats, nil
}

func validateNewRequest(req *models.EmergencyRequest) error {
	if !req.Type.IsValid() {
		return fmt.Errorf("%w: unknown emergency type %q", models.ErrInvalidInput, req.Type)
	}
	if req.Type == models.EmergencyTypeOther && strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description is required for emergency type %q", models.ErrInvalidInput, req.Type)
	}
	if req.Coordinates.Lat < -90 || req.Coordinates.Lat > 90 ||
		req.Coordinates.Lng < -180 || req.Coordinates.Lng > 180 {
		return fmt.Errorf("%w: coordinates out of range", models.ErrInvalidInput)
	}
	return nil
}
