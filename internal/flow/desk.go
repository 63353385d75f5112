package flow

import (
	"fmt"

	"github.com/shenikar/cpr_dispatch/internal/models"
)

// Desk - рабочее место провайдера: выбранный запрос и ETA со слайдера
type Desk struct {
	ProviderID        string `json:"provider_id"`
	SelectedRequestID string `json:"selected_request_id,omitempty"`
	ETAMinutes        int    `json:"eta_minutes"`
}

// NewDesk возвращает пустое рабочее место с ETA по умолчанию
func NewDesk(providerID string, defaultETA int) Desk {
	if models.ValidateETA(defaultETA) != nil {
		defaultETA = models.DefaultETAMinutes
	}
	return Desk{ProviderID: providerID, ETAMinutes: defaultETA}
}

// HasSelection сообщает, выбран ли запрос
func (d Desk) HasSelection() bool {
	return d.SelectedRequestID != ""
}

// DeskAction - действие над рабочим местом
type DeskAction interface {
	deskAction()
}

// SelectRequest - провайдер открыл запрос для принятия
type SelectRequest struct{ RequestID string }

// SetETA - точное значение ETA, вне [1, 30] отклоняется
type SetETA struct{ Minutes int }

// AdjustETA - шаг слайдера, результат прижимается к [1, 30]
type AdjustETA struct{ Delta int }

// ClearSelection - выбор сброшен после подтверждения или возврата к списку
type ClearSelection struct{}

func (SelectRequest) deskAction()  {}
func (SetETA) deskAction()         {}
func (AdjustETA) deskAction()      {}
func (ClearSelection) deskAction() {}

// ReduceDesk применяет действие к рабочему месту
func ReduceDesk(d Desk, action DeskAction) (Desk, error) {
	next := d

	switch a := action.(type) {
	case SelectRequest:
		if a.RequestID == "" {
			return d, fmt.Errorf("%w: request id is required", models.ErrInvalidInput)
		}
		next.SelectedRequestID = a.RequestID
	case SetETA:
		if err := models.ValidateETA(a.Minutes); err != nil {
			return d, err
		}
		next.ETAMinutes = a.Minutes
	case AdjustETA:
		next.ETAMinutes = clampETA(d.ETAMinutes + a.Delta)
	case ClearSelection:
		next.SelectedRequestID = ""
	default:
		return d, fmt.Errorf("%w: unknown action %T", ErrInvalidTransition, action)
	}
	return next, nil
}

func clampETA(minutes int) int {
	if minutes < models.MinETAMinutes {
		return models.MinETAMinutes
	}
	if minutes > models.MaxETAMinutes {
		return models.MaxETAMinutes
	}
	return minutes
}
