package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/cpr_dispatch/internal/models"
)

// ErrInvalidTransition - действие недопустимо в текущем состоянии
var ErrInvalidTransition = errors.New("invalid state transition")

// SeekerState - шаг сценария того, кто просит помощи
type SeekerState string

const (
	StateIdle                SeekerState = "idle"
	StatePendingConfirmation SeekerState = "pending_confirmation"
	StateSubmitting          SeekerState = "submitting"
	StateWaiting             SeekerState = "waiting"
	StateHelperEnRoute       SeekerState = "helper_en_route"
)

// Draft - то, что человек заполнил перед подтверждением
type Draft struct {
	Type                models.EmergencyType `json:"type"`
	Description         string               `json:"description"`
	Location            string               `json:"location"`
	Coordinates         models.Coordinates   `json:"coordinates"`
	ShareMedicalProfile bool                 `json:"share_medical_profile"`
	CanSMS              bool                 `json:"can_sms"`
}

// ToRequest превращает черновик в новый запрос для реестра
func (d Draft) ToRequest() *models.EmergencyRequest {
	return &models.EmergencyRequest{
		Location:          d.Location,
		Coordinates:       d.Coordinates,
		Type:              d.Type,
		Description:       d.Description,
		HasMedicalProfile: d.ShareMedicalProfile,
		CanSMS:            d.CanSMS,
	}
}

// Session - сериализуемое состояние сценария
type Session struct {
	ID        uuid.UUID              `json:"id"`
	State     SeekerState            `json:"state"`
	Draft     Draft                  `json:"draft"`
	RequestID string                 `json:"request_id,omitempty"`
	Helper    *models.AcceptedHelper `json:"helper,omitempty"`
	LastError string                 `json:"last_error,omitempty"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// NewSession возвращает сессию в начальном состоянии
func NewSession(id uuid.UUID, at time.Time) Session {
	return Session{
		ID:        id,
		State:     StateIdle,
		Draft:     Draft{Type: models.EmergencyTypeUnresponsive, ShareMedicalProfile: true},
		UpdatedAt: at,
	}
}

// SeekerAction - действие над сессией
type SeekerAction interface {
	seekerAction()
}

// RequestHelp - нажата кнопка помощи, черновик ждет подтверждения
type RequestHelp struct{ Draft Draft }

// Confirm - человек подтвердил отправку
type Confirm struct{}

// Registered - реестр принял новый запрос
type Registered struct{ RequestID string }

// SubmitFailed - реестр отклонил запрос
type SubmitFailed struct{ Reason string }

// HelperAccepted - провайдер принял запрос этой сессии
type HelperAccepted struct{ Helper *models.AcceptedHelper }

// Cancel - человек отменил запрос
type Cancel struct{}

func (RequestHelp) seekerAction()    {}
func (Confirm) seekerAction()        {}
func (Registered) seekerAction()     {}
func (SubmitFailed) seekerAction()   {}
func (HelperAccepted) seekerAction() {}
func (Cancel) seekerAction()         {}

// ReduceSeeker применяет действие к сессии. Исходное значение не меняется.
func ReduceSeeker(s Session, action SeekerAction, at time.Time) (Session, error) {
	next := s

	switch a := action.(type) {
	case RequestHelp:
		if s.State != StateIdle && s.State != StatePendingConfirmation {
			return s, transitionError(s.State, "request help")
		}
		next.State = StatePendingConfirmation
		next.Draft = a.Draft
		next.LastError = ""

	case Confirm:
		if s.State != StatePendingConfirmation {
			return s, transitionError(s.State, "confirm")
		}
		next.State = StateSubmitting

	case Registered:
		if s.State != StateSubmitting {
			return s, transitionError(s.State, "register")
		}
		next.State = StateWaiting
		next.RequestID = a.RequestID

	case SubmitFailed:
		if s.State != StateSubmitting {
			return s, transitionError(s.State, "fail submit")
		}
		next.State = StatePendingConfirmation
		next.LastError = a.Reason

	case HelperAccepted:
		if s.State != StateWaiting {
			return s, transitionError(s.State, "accept helper")
		}
		next.State = StateHelperEnRoute
		next.Helper = a.Helper

	case Cancel:
		switch s.State {
		case StatePendingConfirmation, StateSubmitting, StateWaiting:
		default:
			return s, transitionError(s.State, "cancel")
		}
		next.State = StateIdle
		next.RequestID = ""
		next.Helper = nil
		next.LastError = ""

	default:
		return s, fmt.Errorf("%w: unknown action %T", ErrInvalidTransition, action)
	}

	next.UpdatedAt = at
	return next, nil
}

func transitionError(state SeekerState, action string) error {
	return fmt.Errorf("%w: cannot %s in state %s", ErrInvalidTransition, action, state)
}
