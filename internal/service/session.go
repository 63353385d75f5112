package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/cpr_dispatch/internal/events"
	"github.com/shenikar/cpr_dispatch/internal/flow"
	"github.com/shenikar/cpr_dispatch/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound - сессии с таким id нет в этом процессе
var ErrSessionNotFound = errors.New("session not found")

const watchBuffer = 8

// SessionService определяет контракт сценария того, кто просит помощи.
// Сессии живут только в памяти процесса.
type SessionService interface {
	Start(ctx context.Context) (flow.Session, error)
	Get(ctx context.Context, id uuid.UUID) (flow.Session, error)
	RequestHelp(ctx context.Context, id uuid.UUID, draft flow.Draft) (flow.Session, error)
	Confirm(ctx context.Context, id uuid.UUID) (flow.Session, error)
	Cancel(ctx context.Context, id uuid.UUID) (flow.Session, error)
	Watch(ctx context.Context, id uuid.UUID) (<-chan flow.Session, func(), error)
	HandleEvent(ctx context.Context, event events.Event)
	Run(ctx context.Context, feed <-chan events.Event)
}

// submission - отправка черновика, которая еще не получила ответ реестра
type submission struct {
	requestID string
	// первое принятие, пришедшее раньше регистрации
	accepted *events.Event
}

type sessionManager struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]flow.Session
	byRequest map[string]uuid.UUID
	submits   map[uuid.UUID]*submission
	watchers  map[uuid.UUID]map[uuid.UUID]chan flow.Session
	ledger    LedgerService
	logger    *logrus.Logger
	now       func() time.Time
}

func NewSessionService(ledger LedgerService, logger *logrus.Logger) SessionService {
	return &sessionManager{
		sessions:  make(map[uuid.UUID]flow.Session),
		byRequest: make(map[string]uuid.UUID),
		submits:   make(map[uuid.UUID]*submission),
		watchers:  make(map[uuid.UUID]map[uuid.UUID]chan flow.Session),
		ledger:    ledger,
		logger:    logger,
		now:       time.Now,
	}
}

// Start создает сессию в состоянии idle
func (m *sessionManager) Start(_ context.Context) (flow.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := flow.NewSession(uuid.New(), m.now())
	m.sessions[s.ID] = s
	m.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "Start",
		"session_id": s.ID,
	}).Info("Session started")
	return s, nil
}

// Get возвращает текущее состояние сессии, предварительно сверив ожидание с реестром
func (m *sessionManager) Get(ctx context.Context, id uuid.UUID) (flow.Session, error) {
	m.reconcile(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return flow.Session{}, fmt.Errorf("service: session %s: %w", id, ErrSessionNotFound)
	}
	return s, nil
}

// RequestHelp переводит сессию к подтверждению с заполненным черновиком
func (m *sessionManager) RequestHelp(_ context.Context, id uuid.UUID, draft flow.Draft) (flow.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.dispatchLocked(id, flow.RequestHelp{Draft: draft})
}

// Confirm отправляет черновик в реестр. Сессия переходит в waiting только
// после того, как реестр зарегистрировал запрос. Блокировка на время записи
// в реестр не держится: отправку сессии отслеживает submission.
func (m *sessionManager) Confirm(ctx context.Context, id uuid.UUID) (flow.Session, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "Confirm",
		"session_id": id,
	})

	m.mu.Lock()
	s, err := m.dispatchLocked(id, flow.Confirm{})
	if err != nil {
		m.mu.Unlock()
		return s, err
	}

	// id назначается заранее, чтобы принятие во время записи нашло сессию
	req := s.Draft.ToRequest()
	req.ID = uuid.NewString()
	sub := &submission{requestID: req.ID}
	m.submits[id] = sub
	m.byRequest[sub.requestID] = id
	m.mu.Unlock()

	openErr := m.ledger.OpenRequest(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.byRequest, sub.requestID)
	if m.submits[id] != sub {
		// сессию отменили, пока шла запись
		if openErr != nil {
			log.WithError(openErr).Warn("Ledger rejected help request of a cancelled session")
		} else {
			log.WithField("request_id", req.ID).Info("Session cancelled while submitting, request stays in the ledger")
		}
		return m.sessions[id], nil
	}
	delete(m.submits, id)

	if openErr != nil {
		log.WithError(openErr).Warn("Ledger rejected help request")
		if _, failErr := m.dispatchLocked(id, flow.SubmitFailed{Reason: openErr.Error()}); failErr != nil {
			log.WithError(failErr).Error("Failed to roll session back to confirmation")
		}
		return m.sessions[id], fmt.Errorf("service: could not submit help request: %w", openErr)
	}

	s, err = m.dispatchLocked(id, flow.Registered{RequestID: req.ID})
	if err != nil {
		return s, err
	}
	m.byRequest[req.ID] = id
	log.WithField("request_id", req.ID).Info("Help request registered, waiting for a provider")

	if early := sub.accepted; early != nil && early.RequestID == req.ID {
		return m.acceptLocked(id, models.NewAcceptedHelper(early.Responder, early.ETAMinutes), log), nil
	}
	return s, nil
}

// Cancel возвращает сессию в idle. Запрос в реестре остается.
func (m *sessionManager) Cancel(_ context.Context, id uuid.UUID) (flow.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	requestID := m.sessions[id].RequestID
	s, err := m.dispatchLocked(id, flow.Cancel{})
	if err != nil {
		return s, err
	}
	delete(m.byRequest, requestID)
	if sub, ok := m.submits[id]; ok {
		requestID = sub.requestID
		delete(m.byRequest, sub.requestID)
		delete(m.submits, id)
	}

	m.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "Cancel",
		"session_id": id,
		"request_id": requestID,
	}).Info("Help request cancelled")
	return s, nil
}

// Watch подписывает на изменения сессии. Первым приходит текущее состояние.
func (m *sessionManager) Watch(ctx context.Context, id uuid.UUID) (<-chan flow.Session, func(), error) {
	m.reconcile(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, nil, fmt.Errorf("service: session %s: %w", id, ErrSessionNotFound)
	}

	watcherID := uuid.New()
	ch := make(chan flow.Session, watchBuffer)
	ch <- s
	if m.watchers[id] == nil {
		m.watchers[id] = make(map[uuid.UUID]chan flow.Session)
	}
	m.watchers[id][watcherID] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.watchers[id], watcherID)
			if len(m.watchers[id]) == 0 {
				delete(m.watchers, id)
			}
			close(ch)
		})
	}, nil
}

// HandleEvent переводит ожидающую сессию в helper_en_route при первом принятии ее запроса.
// Принятие, пришедшее во время записи в реестр, откладывается до регистрации.
func (m *sessionManager) HandleEvent(_ context.Context, event events.Event) {
	if event.Type != events.TypeRequestAccepted {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byRequest[event.RequestID]
	if !ok {
		return
	}
	log := m.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "HandleEvent",
		"session_id": id,
		"request_id": event.RequestID,
	})

	switch m.sessions[id].State {
	case flow.StateSubmitting:
		sub := m.submits[id]
		if sub == nil || sub.requestID != event.RequestID || sub.accepted != nil {
			return
		}
		early := event
		sub.accepted = &early
		log.Debug("Acceptance arrived before registration, deferred")
	case flow.StateWaiting:
		m.acceptLocked(id, models.NewAcceptedHelper(event.Responder, event.ETAMinutes), log)
	default:
		log.Debug("Session is not waiting, acceptance ignored")
	}
}

// reconcile сверяет ожидающую сессию с реестром на случай, если событие
// принятия потерялось по дороге. Ответ реестра ждется без блокировки.
func (m *sessionManager) reconcile(ctx context.Context, id uuid.UUID) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok || s.State != flow.StateWaiting || s.RequestID == "" {
		return
	}

	log := m.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "reconcile",
		"session_id": id,
		"request_id": s.RequestID,
	})

	req, err := m.ledger.SelectRequest(ctx, s.RequestID)
	if err != nil {
		log.WithError(err).Warn("Failed to reconcile session with ledger")
		return
	}
	if req.AcceptedCount() == 0 {
		return
	}

	// в реестре нет данных провайдера, только ETA первого принятия
	minutes, err := models.ParseETA(req.AcceptedETAs[0])
	if err != nil {
		log.WithError(err).Warn("Unexpected ETA in ledger, using default")
		minutes = models.DefaultETAMinutes
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.sessions[id]
	if current.State != flow.StateWaiting || current.RequestID != s.RequestID {
		return
	}
	m.acceptLocked(id, models.NewAcceptedHelper(nil, minutes), log.WithField("reconciled", true))
}

// acceptLocked переводит ожидающую сессию к помощнику в пути. Вызывается под m.mu.
func (m *sessionManager) acceptLocked(id uuid.UUID, helper *models.AcceptedHelper, log *logrus.Entry) flow.Session {
	s, err := m.dispatchLocked(id, flow.HelperAccepted{Helper: helper})
	if err != nil {
		log.WithError(err).Error("Failed to apply acceptance to session")
		return s
	}
	log.WithField("helper", helper.Name).Info("Helper is on the way")
	return s
}

// Run обрабатывает события реестра, пока ctx не отменен или канал не закрыт
func (m *sessionManager) Run(ctx context.Context, feed <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-feed:
			if !ok {
				return
			}
			m.HandleEvent(ctx, event)
		}
	}
}

// dispatchLocked применяет действие и оповещает наблюдателей. Вызывается под m.mu.
func (m *sessionManager) dispatchLocked(id uuid.UUID, action flow.SeekerAction) (flow.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return flow.Session{}, fmt.Errorf("service: session %s: %w", id, ErrSessionNotFound)
	}

	next, err := flow.ReduceSeeker(s, action, m.now())
	if err != nil {
		return s, fmt.Errorf("service: session %s: %w", id, err)
	}
	m.sessions[id] = next

	for _, ch := range m.watchers[id] {
		select {
		case ch <- next:
		default:
			// медленный клиент пропустит промежуточное состояние
		}
	}
	return next, nil
}
