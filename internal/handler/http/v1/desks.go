package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get provider desk
// @Tags Providers
// @Produce json
// @Security ApiKeyAuth
// @Param providerId path string true "Provider ID"
// @Success 200 {object} DeskResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /providers/{providerId}/desk [get]
func (h *Handler) getDesk(c *gin.Context) {
	providerID := c.Param("providerId")
	log := h.logger.WithField("method", "getDesk").WithField("provider_id", providerID)

	desk, err := h.deskService.GetDesk(c.Request.Context(), providerID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DeskToResponse(desk))
}

// @Summary Select a request on the provider desk
// @Tags Providers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param providerId path string true "Provider ID"
// @Param selection body SelectRequestInput true "Request to select"
// @Success 200 {object} DeskResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Request not found"
// @Router /providers/{providerId}/select [post]
func (h *Handler) selectRequest(c *gin.Context) {
	providerID := c.Param("providerId")
	log := h.logger.WithField("method", "selectRequest").WithField("provider_id", providerID)

	var input SelectRequestInput
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	desk, err := h.deskService.Select(c.Request.Context(), providerID, input.RequestID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DeskToResponse(desk))
}

// @Summary Clear the selected request
// @Tags Providers
// @Produce json
// @Security ApiKeyAuth
// @Param providerId path string true "Provider ID"
// @Success 200 {object} DeskResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /providers/{providerId}/select [delete]
func (h *Handler) clearSelection(c *gin.Context) {
	providerID := c.Param("providerId")
	log := h.logger.WithField("method", "clearSelection").WithField("provider_id", providerID)

	desk, err := h.deskService.ClearSelection(c.Request.Context(), providerID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DeskToResponse(desk))
}

// @Summary Set ETA on the provider desk
// @Tags Providers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param providerId path string true "Provider ID"
// @Param eta body SetETAInput true "ETA in minutes (1-30)"
// @Success 200 {object} DeskResponse
// @Failure 400 {object} map[string]string "ETA out of range"
// @Router /providers/{providerId}/eta [put]
func (h *Handler) setETA(c *gin.Context) {
	providerID := c.Param("providerId")
	log := h.logger.WithField("method", "setETA").WithField("provider_id", providerID)

	var input SetETAInput
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	desk, err := h.deskService.SetETA(c.Request.Context(), providerID, input.ETAMinutes)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DeskToResponse(desk))
}

// @Summary Move the ETA slider
// @Description Shift ETA by delta minutes. The result is clamped to 1-30.
// @Tags Providers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param providerId path string true "Provider ID"
// @Param step body AdjustETAInput true "ETA delta"
// @Success 200 {object} DeskResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /providers/{providerId}/eta/adjust [post]
func (h *Handler) adjustETA(c *gin.Context) {
	providerID := c.Param("providerId")
	log := h.logger.WithField("method", "adjustETA").WithField("provider_id", providerID)

	var input AdjustETAInput
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	desk, err := h.deskService.AdjustETA(c.Request.Context(), providerID, input.Delta)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DeskToResponse(desk))
}

// @Summary Confirm acceptance of the selected request
// @Description Accept the selected request with the desk ETA. Without a selection nothing happens.
// @Tags Providers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param providerId path string true "Provider ID"
// @Param confirmation body ConfirmDeskInput false "Optional responder profile"
// @Success 200 {object} ConfirmDeskResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Selected request not found"
// @Router /providers/{providerId}/confirm [post]
func (h *Handler) confirmDesk(c *gin.Context) {
	providerID := c.Param("providerId")
	log := h.logger.WithField("method", "confirmDesk").WithField("provider_id", providerID)

	var input ConfirmDeskInput
	if c.Request.ContentLength != 0 && !h.bindAndValidate(c, log, &input) {
		return
	}

	req, desk, err := h.deskService.ConfirmAcceptance(c.Request.Context(), providerID, DTOToResponder(input.Responder))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	resp := ConfirmDeskResponse{Accepted: req != nil, Desk: DeskToResponse(desk)}
	if req != nil {
		resp.Request = ModelToRequestResponse(req)
	}
	c.JSON(http.StatusOK, resp)
}
