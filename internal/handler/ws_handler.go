package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/service"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/session"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allow-list permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams live session snapshots over WebSocket. Exam-mode clients
// receive one frame per countdown tick and a final results frame on
// completion; the server closes the stream afterwards.
type WSHandler struct {
	sessionService *service.SessionService
	log            zerolog.Logger
	upgrader       websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(sessionService *service.SessionService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		sessionService: sessionService,
		log:            log.With().Str("component", "ws_handler").Logger(),
		upgrader:       buildUpgrader(allowedOrigins),
	}
}

// SessionStream godoc
// WS /ws/v1/sessions/:session_id/stream
func (h *WSHandler) SessionStream(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	sess, err := h.sessionService.Get(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Str("session_id", sessionID.String()).Logger()
	wsLog.Info().Msg("Stream connected")

	events := sess.Subscribe()
	defer sess.Unsubscribe(events)

	// Drain client frames so pings and close frames are processed; the
	// stream itself is one-way.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Initial snapshot so the client renders without waiting for a tick.
	snap := sess.Snapshot()
	if err := conn.WriteJSON(session.StreamEvent{Type: "snapshot", Snapshot: &snap}); err != nil {
		wsLog.Debug().Err(err).Msg("Initial frame write failed")
		return
	}

	for {
		select {
		case <-done:
			wsLog.Debug().Msg("Client disconnected")
			return
		case ev, ok := <-events:
			if !ok {
				// Session completed or abandoned; the result frame (if any)
				// was already delivered.
				wsLog.Debug().Msg("Stream closed")
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				wsLog.Debug().Err(err).Msg("Frame write failed")
				return
			}
		}
	}
}
