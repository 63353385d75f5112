package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List emergency requests
// @Description Get every request in the ledger in creation order
// @Tags Requests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [get]
func (h *Handler) listRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listRequests")

	reqs, err := h.ledgerService.ListRequests(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToRequestResponses(reqs))
}

// @Summary Get ledger statistics
// @Description Count requests by status and the total number of responders
// @Tags Requests
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.ledgerService.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Get emergency request by ID
// @Description Get a single request with its derived status
// @Tags Requests
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Success 200 {object} RequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/{id} [get]
func (h *Handler) getRequest(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getRequest").WithField("id", id)

	req, err := h.ledgerService.SelectRequest(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToRequestResponse(req))
}

// @Summary Accept an emergency request
// @Description Record one more provider on the way with the given ETA. Not idempotent.
// @Tags Requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Request ID"
// @Param acceptance body AcceptRequestInput true "ETA in minutes (1-30) and optional responder profile"
// @Success 200 {object} RequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/{id}/accept [post]
func (h *Handler) acceptRequest(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "acceptRequest").WithField("id", id)

	var input AcceptRequestInput
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	req, err := h.ledgerService.AcceptRequest(c.Request.Context(), id, input.ETAMinutes, DTOToResponder(input.Responder))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToRequestResponse(req))
}
