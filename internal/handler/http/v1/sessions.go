package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Start a help-seeker session
// @Description Create an idle session for someone who may ask for help
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions [post]
func (h *Handler) startSession(c *gin.Context) {
	log := h.logger.WithField("method", "startSession")

	s, err := h.sessionService.Start(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, SessionToResponse(s))
}

// @Summary Get session state
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSession").WithField("session_id", id)

	s, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, SessionToResponse(s))
}

// @Summary Fill in a help request
// @Description Move an idle session to confirmation with the submitted draft
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param draft body HelpRequestInput true "Emergency type, description and location"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Invalid state transition"
// @Router /sessions/{id}/help [post]
func (h *Handler) requestHelp(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "requestHelp").WithField("session_id", id)

	var input HelpRequestInput
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	s, err := h.sessionService.RequestHelp(c.Request.Context(), id, DTOToDraft(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, SessionToResponse(s))
}

// @Summary Confirm a help request
// @Description Register the draft in the ledger. The session then waits for a provider.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Ledger rejected the draft"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Invalid state transition"
// @Router /sessions/{id}/confirm [post]
func (h *Handler) confirmSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "confirmSession").WithField("session_id", id)

	s, err := h.sessionService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, SessionToResponse(s))
}

// @Summary Cancel a help request
// @Description Return the session to idle. The ledger entry stays.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Invalid state transition"
// @Router /sessions/{id}/cancel [post]
func (h *Handler) cancelSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "cancelSession").WithField("session_id", id)

	s, err := h.sessionService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, SessionToResponse(s))
}
