package models

import (
	"fmt"

	"github.com/google/uuid"
)

const defaultResponderName = "CPR Provider"

// Responder - необязательный профиль провайдера, передаваемый при принятии запроса
type Responder struct {
	Name     string  `json:"name"`
	Distance string  `json:"distance"`
	Rating   float64 `json:"rating"`
}

// Validate проверяет рейтинг. Пустой профиль допустим.
func (r *Responder) Validate() error {
	if r == nil {
		return nil
	}
	if r.Rating < 0 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5, got %.1f", ErrInvalidInput, r.Rating)
	}
	return nil
}

// AcceptedHelper - провайдер глазами того, кто просил помощи
type AcceptedHelper struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Distance string    `json:"distance"`
	ETA      string    `json:"eta"`
	Rating   float64   `json:"rating"`
}

// NewAcceptedHelper собирает помощника из принятия запроса
func NewAcceptedHelper(responder *Responder, etaMinutes int) *AcceptedHelper {
	helper := &AcceptedHelper{
		ID:   uuid.New(),
		Name: defaultResponderName,
		ETA:  FormatETA(etaMinutes),
	}
	if responder != nil {
		if responder.Name != "" {
			helper.Name = responder.Name
		}
		helper.Distance = responder.Distance
		helper.Rating = responder.Rating
	}
	return helper
}
