package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/cpr_dispatch/internal/models"
)

// ResponderInput DTO профиля провайдера
// @Description Необязательный профиль провайдера, принимающего запрос
type ResponderInput struct {
	Name     string  `json:"name" validate:"omitempty,max=100"`
	Distance string  `json:"distance" validate:"omitempty,max=50"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
}

// AcceptRequestInput DTO для принятия запроса
// @Description DTO для принятия запроса провайдером
type AcceptRequestInput struct {
	ETAMinutes int             `json:"eta_minutes" validate:"min=1,max=30"`
	Responder  *ResponderInput `json:"responder,omitempty"`
}

// RequestResponse DTO для ответа с запросом реестра
// @Description Запрос о помощи со статусом и ETA принявших провайдеров
type RequestResponse struct {
	ID                string               `json:"id"`
	Location          string               `json:"location"`
	Distance          string               `json:"distance,omitempty"`
	Coordinates       models.Coordinates   `json:"coordinates"`
	Type              models.EmergencyType `json:"type"`
	Description       string               `json:"description,omitempty"`
	Status            models.RequestStatus `json:"status"`
	AcceptedCount     int                  `json:"accepted_count"`
	AcceptedETAs      []string             `json:"accepted_etas"`
	HasMedicalProfile bool                 `json:"has_medical_profile"`
	CanSMS            bool                 `json:"can_sms"`
	Timestamp         time.Time            `json:"timestamp"`
}

// StatsResponse DTO для ответа со статистикой
// @Description Счетчики реестра
type StatsResponse struct {
	Total      int `json:"total"`
	Unaccepted int `json:"unaccepted"`
	Accepted   int `json:"accepted"`
	Responders int `json:"responders"`
}

// HelpRequestInput DTO черновика запроса о помощи
// @Description Черновик запроса о помощи
type HelpRequestInput struct {
	Type                string  `json:"type" validate:"required,oneof=unresponsive choking heart-attack breathing other"`
	Description         string  `json:"description" validate:"required_if=Type other,max=500"`
	Location            string  `json:"location" validate:"max=255"`
	Latitude            float64 `json:"latitude" validate:"latitude"`
	Longitude           float64 `json:"longitude" validate:"longitude"`
	ShareMedicalProfile *bool   `json:"share_medical_profile,omitempty"`
	CanSMS              bool    `json:"can_sms"`
}

// HelperResponse DTO провайдера, который едет на помощь
// @Description Провайдер, принявший запрос
type HelperResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Distance string    `json:"distance,omitempty"`
	ETA      string    `json:"eta"`
	Rating   float64   `json:"rating"`
}

// SessionResponse DTO состояния сессии
// @Description Состояние сценария запроса помощи
type SessionResponse struct {
	ID        uuid.UUID       `json:"id"`
	State     string          `json:"state"`
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Helper    *HelperResponse `json:"helper,omitempty"`
	Error     string          `json:"error,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SelectRequestInput DTO выбора запроса на панели провайдера
// @Description Выбор запроса провайдером
type SelectRequestInput struct {
	RequestID string `json:"request_id" validate:"required"`
}

// SetETAInput DTO установки ETA
// @Description Значение слайдера ETA
type SetETAInput struct {
	ETAMinutes int `json:"eta_minutes" validate:"min=1,max=30"`
}

// AdjustETAInput DTO шага слайдера
// @Description Сдвиг ETA, результат ограничивается диапазоном 1..30
type AdjustETAInput struct {
	Delta int `json:"delta" validate:"required,min=-29,max=29"`
}

// ConfirmDeskInput DTO подтверждения принятия
// @Description Подтверждение выбранного запроса
type ConfirmDeskInput struct {
	Responder *ResponderInput `json:"responder,omitempty"`
}

// DeskResponse DTO рабочего места провайдера
// @Description Выбранный запрос и ETA провайдера
type DeskResponse struct {
	ProviderID        string `json:"provider_id"`
	SelectedRequestID string `json:"selected_request_id,omitempty"`
	ETAMinutes        int    `json:"eta_minutes"`
	ETA               string `json:"eta"`
}

// ConfirmDeskResponse DTO результата подтверждения
// @Description Результат подтверждения. accepted=false, если запрос не был выбран.
type ConfirmDeskResponse struct {
	Accepted bool             `json:"accepted"`
	Request  *RequestResponse `json:"request,omitempty"`
	Desk     DeskResponse     `json:"desk"`
}
