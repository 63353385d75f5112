package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/cpr_dispatch/internal/events"
	"github.com/shenikar/cpr_dispatch/internal/flow"
	"github.com/shenikar/cpr_dispatch/internal/models"
	"github.com/shenikar/cpr_dispatch/internal/repository"
	"github.com/shenikar/cpr_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionService(t *testing.T) (*sessionManager, *mocks.MockLedgerService) {
	ctrl := gomock.NewController(t)
	ledgerMock := mocks.NewMockLedgerService(ctrl)
	service := NewSessionService(ledgerMock, newTestLogger())
	return service.(*sessionManager), ledgerMock
}

// waitingSession проводит сессию до ожидания провайдера по запросу requestID
func waitingSession(t *testing.T, m *sessionManager, ledgerMock *mocks.MockLedgerService, requestID string) flow.Session {
	t.Helper()
	ctx := context.Background()

	ledgerMock.EXPECT().
		OpenRequest(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.EmergencyRequest) error {
			req.ID = requestID
			return nil
		}).Times(1)

	s, err := m.Start(ctx)
	require.NoError(t, err)
	_, err = m.RequestHelp(ctx, s.ID, flow.Draft{Type: models.EmergencyTypeUnresponsive, Location: "Main St & Oak Ave"})
	require.NoError(t, err)
	s, err = m.Confirm(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, flow.StateWaiting, s.State)
	return s
}

func acceptedEvent(requestID string, count, eta int, responder *models.Responder) events.Event {
	return events.Event{
		ID:            uuid.New(),
		Type:          events.TypeRequestAccepted,
		RequestID:     requestID,
		AcceptedCount: count,
		ETAMinutes:    eta,
		Responder:     responder,
		OccurredAt:    time.Now(),
	}
}

func TestSession_ConfirmRegistersRequest(t *testing.T) {
	// Подготовка
	m, ledgerMock := newTestSessionService(t)

	// Действие
	s := waitingSession(t, m, ledgerMock, "req-1")

	// Проверки
	assert.Equal(t, "req-1", s.RequestID)
	assert.Equal(t, s.ID, m.byRequest["req-1"])
	assert.Nil(t, s.Helper)
}

func TestSession_AcceptanceMovesHelperEnRoute(t *testing.T) {
	// Подготовка
	m, ledgerMock := newTestSessionService(t)
	ctx := context.Background()
	s := waitingSession(t, m, ledgerMock, "req-1")

	// Действие
	m.HandleEvent(ctx, acceptedEvent("req-1", 1, 2, &models.Responder{Name: "Dr. Sarah Johnson", Distance: "0.3 miles", Rating: 4.9}))

	// Проверки
	s, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, flow.StateHelperEnRoute, s.State)
	require.NotNil(t, s.Helper)
	assert.Equal(t, "Dr. Sarah Johnson", s.Helper.Name)
	assert.Equal(t, "2 min", s.Helper.ETA)
	assert.Equal(t, 4.9, s.Helper.Rating)

	// Второе принятие не создает второго помощника
	firstHelper := s.Helper
	m.HandleEvent(ctx, acceptedEvent("req-1", 2, 9, nil))
	s, err = m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, firstHelper, s.Helper)
}

func TestSession_IgnoresOtherRequestsAndOpenEvents(t *testing.T) {
	m, ledgerMock := newTestSessionService(t)
	ctx := context.Background()
	s := waitingSession(t, m, ledgerMock, "req-1")

	// сверка с реестром видит, что запрос еще не принят
	ledgerMock.EXPECT().
		SelectRequest(ctx, "req-1").
		Return(&models.EmergencyRequest{ID: "req-1", AcceptedETAs: []string{}}, nil).
		Times(1)

	m.HandleEvent(ctx, acceptedEvent("req-2", 1, 3, nil))
	m.HandleEvent(ctx, events.Event{Type: events.TypeRequestOpened, RequestID: "req-1"})

	s, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, flow.StateWaiting, s.State)
}

func TestSession_ConfirmFailureReturnsToConfirmation(t *testing.T) {
	// Подготовка
	m, ledgerMock := newTestSessionService(t)
	ctx := context.Background()

	// Ожидания
	ledgerMock.EXPECT().
		OpenRequest(ctx, gomock.Any()).
		Return(fmt.Errorf("service: could not open request: %w", models.ErrInvalidInput)).
		Times(1)

	s, err := m.Start(ctx)
	require.NoError(t, err)
	_, err = m.RequestHelp(ctx, s.ID, flow.Draft{Type: models.EmergencyTypeOther})
	require.NoError(t, err)

	// Действие
	s, err = m.Confirm(ctx, s.ID)

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Equal(t, flow.StatePendingConfirmation, s.State)
	assert.NotEmpty(t, s.LastError)
	assert.Empty(t, m.byRequest)
	assert.Empty(t, m.submits)
}

func TestSession_CancelWhileWaiting(t *testing.T) {
	m, ledgerMock := newTestSessionService(t)
	ctx := context.Background()
	s := waitingSession(t, m, ledgerMock, "req-1")

	s, err := m.Cancel(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, flow.StateIdle, s.State)
	assert.Empty(t, s.RequestID)

	// Принятие отмененного запроса на сессию уже не влияет
	m.HandleEvent(ctx, acceptedEvent("req-1", 1, 4, nil))
	s, err = m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, flow.StateIdle, s.State)
	assert.Nil(t, s.Helper)
}

func TestSession_InvalidTransitionsAndUnknownSession(t *testing.T) {
	m, _ := newTestSessionService(t)
	ctx := context.Background()

	s, err := m.Start(ctx)
	require.NoError(t, err)

	_, err = m.Confirm(ctx, s.ID)
	assert.ErrorIs(t, err, flow.ErrInvalidTransition)

	_, err = m.Cancel(ctx, s.ID)
	assert.ErrorIs(t, err, flow.ErrInvalidTransition)

	_, err = m.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, _, err = m.Watch(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_WatchStreamsSnapshots(t *testing.T) {
	m, _ := newTestSessionService(t)
	ctx := context.Background()

	s, err := m.Start(ctx)
	require.NoError(t, err)

	updates, stop, err := m.Watch(ctx, s.ID)
	require.NoError(t, err)

	assert.Equal(t, flow.StateIdle, (<-updates).State)

	_, err = m.RequestHelp(ctx, s.ID, flow.Draft{Type: models.EmergencyTypeChoking})
	require.NoError(t, err)
	assert.Equal(t, flow.StatePendingConfirmation, (<-updates).State)

	stop()
	stop()
	_, ok := <-updates
	assert.False(t, ok)
	assert.Empty(t, m.watchers)
}

// Полный путь: реальный реестр в памяти, шина событий и принятие провайдером
func TestSession_DrivenByLedgerAcceptance(t *testing.T) {
	// Подготовка
	logger := newTestLogger()
	bus := events.NewBus(logger)
	ledger := NewLedgerService(repository.NewMemoryRequestRepository(), bus, logger)
	m := NewSessionService(ledger, logger).(*sessionManager)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	feed, unsubscribe := bus.Subscribe(16)
	defer unsubscribe()
	go m.Run(ctx, feed)

	s, err := m.Start(ctx)
	require.NoError(t, err)
	_, err = m.RequestHelp(ctx, s.ID, flow.Draft{Type: models.EmergencyTypeHeartAttack, Location: "Union Square"})
	require.NoError(t, err)
	s, err = m.Confirm(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, flow.StateWaiting, s.State)

	// Действие
	req, err := ledger.AcceptRequest(ctx, s.RequestID, 4, &models.Responder{Name: "Dr. Michael Chen", Rating: 4.8})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, req.Status())

	// Проверки
	// Состояние читается напрямую: Get сам сверился бы с реестром
	require.Eventually(t, func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.sessions[s.ID].State == flow.StateHelperEnRoute
	}, time.Second, 10*time.Millisecond)

	current, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, current.Helper)
	assert.Equal(t, "4 min", current.Helper.ETA)
	assert.Equal(t, "Dr. Michael Chen", current.Helper.Name)
}

// Событие принятия потеряно: издатель падает, шина ничего не получает.
// Сессия догоняет реестр при чтении.
func TestSession_GetReconcilesLostAcceptance(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	logger := newTestLogger()
	publisherMock := mocks.NewMockEventPublisher(ctrl)
	ledger := NewLedgerService(repository.NewMemoryRequestRepository(), publisherMock, logger)
	m := NewSessionService(ledger, logger).(*sessionManager)
	ctx := context.Background()

	// Ожидания
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis unavailable")).AnyTimes()

	s, err := m.Start(ctx)
	require.NoError(t, err)
	_, err = m.RequestHelp(ctx, s.ID, flow.Draft{Type: models.EmergencyTypeChoking, Location: "Ferry Building"})
	require.NoError(t, err)
	s, err = m.Confirm(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, flow.StateWaiting, s.State)

	_, err = ledger.AcceptRequest(ctx, s.RequestID, 3, &models.Responder{Name: "Dr. Sarah Johnson"})
	require.NoError(t, err)

	// Действие
	current, err := m.Get(ctx, s.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, flow.StateHelperEnRoute, current.State)
	require.NotNil(t, current.Helper)
	assert.Equal(t, "3 min", current.Helper.ETA)
	assert.Equal(t, "CPR Provider", current.Helper.Name)

	// Повторное чтение не трогает реестр второй раз и не меняет помощника
	again, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, current.Helper, again.Helper)
}

func TestSession_WatchReconcilesLostAcceptance(t *testing.T) {
	m, ledgerMock := newTestSessionService(t)
	ctx := context.Background()
	s := waitingSession(t, m, ledgerMock, "req-1")

	ledgerMock.EXPECT().
		SelectRequest(ctx, "req-1").
		Return(&models.EmergencyRequest{ID: "req-1", AcceptedETAs: []string{"6 min"}}, nil).
		Times(1)

	updates, stop, err := m.Watch(ctx, s.ID)
	require.NoError(t, err)
	defer stop()

	first := <-updates
	assert.Equal(t, flow.StateHelperEnRoute, first.State)
	require.NotNil(t, first.Helper)
	assert.Equal(t, "6 min", first.Helper.ETA)
}

func TestSession_ReconcileLedgerErrorKeepsWaiting(t *testing.T) {
	m, ledgerMock := newTestSessionService(t)
	ctx := context.Background()
	s := waitingSession(t, m, ledgerMock, "req-1")

	ledgerMock.EXPECT().SelectRequest(ctx, "req-1").Return(nil, errors.New("connection refused")).Times(1)

	current, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, flow.StateWaiting, current.State)
}

// Провайдер принял запрос раньше, чем реестр ответил на запись
func TestSession_AcceptanceDuringSubmitIsDeferred(t *testing.T) {
	// Подготовка
	m, ledgerMock := newTestSessionService(t)
	ctx := context.Background()
	responder := &models.Responder{Name: "Dr. Emily Rodriguez", Rating: 4.7}

	// Ожидания
	ledgerMock.EXPECT().
		OpenRequest(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.EmergencyRequest) error {
			require.NotEmpty(t, req.ID)
			// блокировка свободна, пока идет запись в реестр
			m.HandleEvent(ctx, acceptedEvent(req.ID, 1, 2, responder))
			m.HandleEvent(ctx, acceptedEvent(req.ID, 2, 9, nil))
			return nil
		}).Times(1)

	s, err := m.Start(ctx)
	require.NoError(t, err)
	_, err = m.RequestHelp(ctx, s.ID, flow.Draft{Type: models.EmergencyTypeUnresponsive, Location: "Dolores Park"})
	require.NoError(t, err)

	// Действие
	s, err = m.Confirm(ctx, s.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, flow.StateHelperEnRoute, s.State)
	require.NotNil(t, s.Helper)
	assert.Equal(t, "Dr. Emily Rodriguez", s.Helper.Name)
	assert.Equal(t, "2 min", s.Helper.ETA)
	assert.Equal(t, s.ID, m.byRequest[s.RequestID])
	assert.Empty(t, m.submits)
}

func TestSession_CancelDuringSubmit(t *testing.T) {
	// Подготовка
	m, ledgerMock := newTestSessionService(t)
	ctx := context.Background()

	s, err := m.Start(ctx)
	require.NoError(t, err)
	_, err = m.RequestHelp(ctx, s.ID, flow.Draft{Type: models.EmergencyTypeBreathing, Location: "Pier 39"})
	require.NoError(t, err)

	// Ожидания
	ledgerMock.EXPECT().
		OpenRequest(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *models.EmergencyRequest) error {
			cancelled, err := m.Cancel(ctx, s.ID)
			require.NoError(t, err)
			require.Equal(t, flow.StateIdle, cancelled.State)
			return nil
		}).Times(1)

	// Действие
	s, err = m.Confirm(ctx, s.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, flow.StateIdle, s.State)
	assert.Empty(t, s.RequestID)
	assert.Empty(t, m.byRequest)
	assert.Empty(t, m.submits)
}
