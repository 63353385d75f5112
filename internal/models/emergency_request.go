package models

import (
	"fmt"
	"time"
)

// ETA ограничения, совпадают со слайдером в клиенте
const (
	MinETAMinutes     = 1
	MaxETAMinutes     = 30
	DefaultETAMinutes = 5
)

// EmergencyType - тип экстренной ситуации
type EmergencyType string

const (
	EmergencyTypeUnresponsive EmergencyType = "unresponsive"
	EmergencyTypeChoking      EmergencyType = "choking"
	EmergencyTypeHeartAttack  EmergencyType = "heart-attack"
	EmergencyTypeBreathing    EmergencyType = "breathing"
	EmergencyTypeOther        EmergencyType = "other"
)

// IsValid проверяет, что тип входит в закрытый набор
func (t EmergencyType) IsValid() bool {
	switch t {
	case EmergencyTypeUnresponsive, EmergencyTypeChoking, EmergencyTypeHeartAttack,
		EmergencyTypeBreathing, EmergencyTypeOther:
		return true
	}
	return false
}

// RequestStatus - статус запроса, всегда вычисляется из числа принятий
type RequestStatus string

const (
	StatusUnaccepted RequestStatus = "unaccepted"
	StatusAccepted   RequestStatus = "accepted"
)

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// EmergencyRequest - запрос о помощи в реестре.
// Количество принятий не хранится отдельно: это длина AcceptedETAs.
type EmergencyRequest struct {
	ID                string        `json:"id"`
	Location          string        `json:"location"`
	Distance          string        `json:"distance"`
	Coordinates       Coordinates   `json:"coordinates"`
	Type              EmergencyType `json:"type"`
	Description       string        `json:"description"`
	AcceptedETAs      []string      `json:"accepted_etas"`
	HasMedicalProfile bool          `json:"has_medical_profile"`
	CanSMS            bool          `json:"can_sms"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// AcceptedCount возвращает число провайдеров, принявших запрос
func (r *EmergencyRequest) AcceptedCount() int {
	return len(r.AcceptedETAs)
}

// Status вычисляет статус при каждом чтении
func (r *EmergencyRequest) Status() RequestStatus {
	if r.AcceptedCount() == 0 {
		return StatusUnaccepted
	}
	return StatusAccepted
}

// Accept добавляет одно принятие. Вызывающий отвечает за валидацию ETA и блокировку.
func (r *EmergencyRequest) Accept(etaMinutes int, at time.Time) {
	r.AcceptedETAs = append(r.AcceptedETAs, FormatETA(etaMinutes))
	r.UpdatedAt = at
}

// Clone возвращает копию, не разделяющую слайс ETA с оригиналом
func (r *EmergencyRequest) Clone() *EmergencyRequest {
	if r == nil {
		return nil
	}
	cloned := *r
	cloned.AcceptedETAs = make([]string, len(r.AcceptedETAs))
	copy(cloned.AcceptedETAs, r.AcceptedETAs)
	return &cloned
}

// FormatETA форматирует минуты так, как их показывает клиент: "5 min"
func FormatETA(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// ParseETA разбирает ETA в формате FormatETA обратно в минуты
func ParseETA(eta string) (int, error) {
	var minutes int
	if _, err := fmt.Sscanf(eta, "%d min", &minutes); err != nil {
		return 0, fmt.Errorf("%w: malformed eta %q", ErrInvalidInput, eta)
	}
	if err := ValidateETA(minutes); err != nil {
		return 0, err
	}
	return minutes, nil
}

// ValidateETA проверяет, что ETA входит в [1, 30]
func ValidateETA(minutes int) error {
	if minutes < MinETAMinutes || minutes > MaxETAMinutes {
		return fmt.Errorf("%w: eta_minutes must be between %d and %d, got %d",
			ErrInvalidInput, MinETAMinutes, MaxETAMinutes, minutes)
	}
	return nil
}

// LedgerStats - счетчики для карты наблюдателя и панели провайдера
type LedgerStats struct {
	Total      int `json:"total"`
	Unaccepted int `json:"unaccepted"`
	Accepted   int `json:"accepted"`
	Responders int `json:"responders"`
}
