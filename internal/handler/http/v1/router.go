package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Реестр запросов
	requests := protected.Group("/requests")
	{
		requests.GET("", h.listRequests)
		requests.GET("/stats", h.getStats)
		requests.GET("/stream", h.streamRequests)
		requests.GET("/:id", h.getRequest)
		requests.POST("/:id/accept", h.acceptRequest)
	}

	// Сценарий того, кто просит помощи
	sessions := protected.Group("/sessions")
	{
		sessions.POST("", h.startSession)
		sessions.GET("/:id", h.getSession)
		sessions.POST("/:id/help", h.requestHelp)
		sessions.POST("/:id/confirm", h.confirmSession)
		sessions.POST("/:id/cancel", h.cancelSession)
		sessions.GET("/:id/stream", h.streamSession)
	}

	// Рабочее место провайдера
	providers := protected.Group("/providers/:providerId")
	{
		providers.GET("/desk", h.getDesk)
		providers.POST("/select", h.selectRequest)
		providers.DELETE("/select", h.clearSelection)
		providers.PUT("/eta", h.setETA)
		providers.POST("/eta/adjust", h.adjustETA)
		providers.POST("/confirm", h.confirmDesk)
	}
}
