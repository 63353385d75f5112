package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/cpr_dispatch/internal/config"
	"github.com/shenikar/cpr_dispatch/internal/events"
	"github.com/shenikar/cpr_dispatch/internal/flow"
	"github.com/shenikar/cpr_dispatch/internal/models"
	"github.com/shenikar/cpr_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

// EventSubscriber - источник событий реестра для websocket потоков
type EventSubscriber interface {
	Subscribe(buffer int) (<-chan events.Event, func())
}

type Handler struct {
	ledgerService  service.LedgerService
	sessionService service.SessionService
	deskService    service.DeskService
	subscriber     EventSubscriber
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(
	ledgerService service.LedgerService,
	sessionService service.SessionService,
	deskService service.DeskService,
	subscriber EventSubscriber,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		ledgerService:  ledgerService,
		sessionService: sessionService,
		deskService:    deskService,
		subscriber:     subscriber,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// bindAndValidate читает JSON тело и проверяет его. При ошибке ответ уже записан.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Emergency request not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "emergency request not found"})
	case errors.Is(err, service.ErrSessionNotFound):
		log.WithError(err).Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, models.ErrInvalidInput):
		log.WithError(err).Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, flow.ErrInvalidTransition):
		log.WithError(err).Warn("Invalid state transition")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": h.cfg.StorageDriver})
}
