package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/cpr_dispatch/internal/flow"
	"github.com/shenikar/cpr_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// DeskStore определяет контракт хранилища рабочих мест провайдеров.
// Load возвращает nil без ошибки, если рабочего места еще нет.
type DeskStore interface {
	Load(ctx context.Context, providerID string) (*flow.Desk, error)
	Save(ctx context.Context, desk flow.Desk) error
}

// DeskService определяет контракт сценария провайдера
type DeskService interface {
	GetDesk(ctx context.Context, providerID string) (flow.Desk, error)
	Select(ctx context.Context, providerID, requestID string) (flow.Desk, error)
	SetETA(ctx context.Context, providerID string, minutes int) (flow.Desk, error)
	AdjustETA(ctx context.Context, providerID string, delta int) (flow.Desk, error)
	ClearSelection(ctx context.Context, providerID string) (flow.Desk, error)
	ConfirmAcceptance(ctx context.Context, providerID string, responder *models.Responder) (*models.EmergencyRequest, flow.Desk, error)
}

type deskService struct {
	mu         sync.Mutex
	store      DeskStore
	ledger     LedgerService
	logger     *logrus.Logger
	defaultETA int
}

func NewDeskService(store DeskStore, ledger LedgerService, logger *logrus.Logger, defaultETA int) DeskService {
	return &deskService{
		store:      store,
		ledger:     ledger,
		logger:     logger,
		defaultETA: defaultETA,
	}
}

// GetDesk возвращает рабочее место, создавая пустое при первом обращении
func (s *deskService) GetDesk(ctx context.Context, providerID string) (flow.Desk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx, providerID)
}

// Select выбирает существующий запрос для принятия
func (s *deskService) Select(ctx context.Context, providerID, requestID string) (flow.Desk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.ledger.SelectRequest(ctx, requestID); err != nil {
		return flow.Desk{}, fmt.Errorf("service: could not select request: %w", err)
	}
	return s.applyLocked(ctx, providerID, flow.SelectRequest{RequestID: requestID})
}

func (s *deskService) SetETA(ctx context.Context, providerID string, minutes int) (flow.Desk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyLocked(ctx, providerID, flow.SetETA{Minutes: minutes})
}

func (s *deskService) AdjustETA(ctx context.Context, providerID string, delta int) (flow.Desk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyLocked(ctx, providerID, flow.AdjustETA{Delta: delta})
}

func (s *deskService) ClearSelection(ctx context.Context, providerID string) (flow.Desk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyLocked(ctx, providerID, flow.ClearSelection{})
}

// ConfirmAcceptance принимает выбранный запрос с ETA рабочего места и сбрасывает выбор.
// Без выбранного запроса ничего не делает и возвращает nil вместо запроса.
func (s *deskService) ConfirmAcceptance(ctx context.Context, providerID string, responder *models.Responder) (*models.EmergencyRequest, flow.Desk, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "desk",
		"method":      "ConfirmAcceptance",
		"provider_id": providerID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	desk, err := s.loadLocked(ctx, providerID)
	if err != nil {
		return nil, desk, err
	}
	if !desk.HasSelection() {
		log.Debug("Nothing selected, confirmation ignored")
		return nil, desk, nil
	}

	req, err := s.ledger.AcceptRequest(ctx, desk.SelectedRequestID, desk.ETAMinutes, responder)
	if err != nil {
		// выбор сохраняется, провайдер может повторить
		return nil, desk, fmt.Errorf("service: could not confirm acceptance: %w", err)
	}

	// принятие уже записано в реестр, ошибка сохранения выбора только логируется
	cleared, err := flow.ReduceDesk(desk, flow.ClearSelection{})
	if err != nil {
		return req, desk, fmt.Errorf("service: desk %s: %w", providerID, err)
	}
	if err := s.store.Save(ctx, cleared); err != nil {
		log.WithError(err).Error("Failed to clear desk selection after acceptance")
	}
	desk = cleared

	log.WithFields(logrus.Fields{
		"request_id": req.ID,
		"eta":        req.AcceptedETAs[len(req.AcceptedETAs)-1],
	}).Info("Provider confirmed acceptance")
	return req, desk, nil
}

func (s *deskService) loadLocked(ctx context.Context, providerID string) (flow.Desk, error) {
	desk, err := s.store.Load(ctx, providerID)
	if err != nil {
		return flow.Desk{}, fmt.Errorf("service: could not load desk: %w", err)
	}
	if desk == nil {
		return flow.NewDesk(providerID, s.defaultETA), nil
	}
	return *desk, nil
}

func (s *deskService) applyLocked(ctx context.Context, providerID string, action flow.DeskAction) (flow.Desk, error) {
	desk, err := s.loadLocked(ctx, providerID)
	if err != nil {
		return desk, err
	}

	next, err := flow.ReduceDesk(desk, action)
	if err != nil {
		return desk, fmt.Errorf("service: desk %s: %w", providerID, err)
	}
	if err := s.store.Save(ctx, next); err != nil {
		return desk, fmt.Errorf("service: could not save desk: %w", err)
	}
	return next, nil
}
