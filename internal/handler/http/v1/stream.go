package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	wsWriteTimeout = 5 * time.Second
	wsPongWait     = 60 * time.Second
	wsPingPeriod   = 30 * time.Second
	wsReadLimit    = 1 << 10
	streamBuffer   = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// клиенты карты и приложения открываются с других origin
	CheckOrigin: func(*http.Request) bool { return true },
}

// @Summary Stream ledger events
// @Description Websocket: every request.opened and request.accepted event as JSON
// @Tags Requests
// @Security ApiKeyAuth
// @Success 101 "Switching Protocols"
// @Router /requests/stream [get]
func (h *Handler) streamRequests(c *gin.Context) {
	log := h.logger.WithField("method", "streamRequests")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade to WebSocket")
		return
	}
	defer conn.Close()

	feed, cancel := h.subscriber.Subscribe(streamBuffer)
	defer cancel()

	closed := watchClose(conn)
	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	log.Debug("Ledger stream connected")
	for {
		select {
		case <-closed:
			log.Debug("Ledger stream disconnected")
			return
		case <-ping.C:
			if !writePing(conn, log) {
				return
			}
		case event, ok := <-feed:
			if !ok {
				return
			}
			if !writeJSON(conn, log, event) {
				return
			}
		}
	}
}

// @Summary Stream session state
// @Description Websocket: current session state, then every change
// @Tags Sessions
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 101 "Switching Protocols"
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/stream [get]
func (h *Handler) streamSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "streamSession").WithField("session_id", id)

	// подписка до upgrade, чтобы неизвестная сессия получила обычный 404
	updates, cancel, err := h.sessionService.Watch(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	defer cancel()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade to WebSocket")
		return
	}
	defer conn.Close()

	closed := watchClose(conn)
	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ping.C:
			if !writePing(conn, log) {
				return
			}
		case s, ok := <-updates:
			if !ok {
				return
			}
			if !writeJSON(conn, log, SessionToResponse(s)) {
				return
			}
		}
	}
}

// watchClose читает входящие кадры и закрывает канал, когда клиент ушел.
// Потоки однонаправленные, содержимое входящих сообщений игнорируется.
func watchClose(conn *websocket.Conn) <-chan struct{} {
	done := make(chan struct{})
	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()
	return done
}

func writeJSON(conn *websocket.Conn, log *logrus.Entry, v any) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(v); err != nil {
		log.WithError(err).Debug("Failed to write to WebSocket")
		return false
	}
	return true
}

func writePing(conn *websocket.Conn, log *logrus.Entry) bool {
	if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
		log.WithError(err).Debug("Failed to send ping")
		return false
	}
	return true
}
