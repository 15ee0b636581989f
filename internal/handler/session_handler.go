package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/middleware"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/response"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/service"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/session"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/validator"
)

// SessionHandler exposes the quiz-taking session lifecycle over HTTP.
type SessionHandler struct {
	sessionService *service.SessionService
	log            zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *service.SessionService, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		log:            log.With().Str("component", "session_handler").Logger(),
	}
}

// StartSession godoc
// POST /api/v1/quizzes/:quiz_id/sessions
// Creates a session in the mode-selection phase.
func (h *SessionHandler) StartSession(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	sess, err := h.sessionService.Start(claims.UserID, quizID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": sess.Snapshot()})
}

// GetSession godoc
// GET /api/v1/sessions/:session_id
// Returns the current session snapshot.
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": sess.Snapshot()})
}

// SelectMode godoc
// POST /api/v1/sessions/:session_id/mode
func (h *SessionHandler) SelectMode(c *gin.Context) {
	sessionID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.SelectModeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	snap, err := h.sessionService.SelectMode(sessionID, session.Mode(req.Mode))
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// SelectAnswer godoc
// POST /api/v1/sessions/:session_id/answers
func (h *SessionHandler) SelectAnswer(c *gin.Context) {
	sessionID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.SelectAnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	snap, err := h.sessionService.SelectAnswer(sessionID, req.QuestionIndex, req.OptionIndex)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// Navigate godoc
// POST /api/v1/sessions/:session_id/navigate
// Accepts either {"direction": "next"|"previous"} or {"index": n}.
func (h *SessionHandler) Navigate(c *gin.Context) {
	sessionID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.NavigateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	snap, err := h.sessionService.Navigate(sessionID, req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// ToggleFlag godoc
// POST /api/v1/sessions/:session_id/flag
func (h *SessionHandler) ToggleFlag(c *gin.Context) {
	sessionID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.ToggleFlagRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	snap, err := h.sessionService.ToggleFlag(sessionID, req.QuestionIndex)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// RequestExplanation godoc
// POST /api/v1/sessions/:session_id/explanation
// Practice mode only: reveals the current question's explanation.
func (h *SessionHandler) RequestExplanation(c *gin.Context) {
	sessionID, ok := h.parseID(c)
	if !ok {
		return
	}

	snap, err := h.sessionService.RequestExplanation(sessionID)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": snap})
}

// FinishSession godoc
// POST /api/v1/sessions/:session_id/finish
// Completes the session and returns the results payload. Idempotent.
func (h *SessionHandler) FinishSession(c *gin.Context) {
	sessionID, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.Finish(sessionID)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": result})
}

// RetakeSession godoc
// POST /api/v1/sessions/:session_id/retake
// Discards the session and returns a fresh one against the same quiz.
func (h *SessionHandler) RetakeSession(c *gin.Context) {
	sessionID, ok := h.parseID(c)
	if !ok {
		return
	}

	sess, err := h.sessionService.Retake(sessionID)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"session": sess.Snapshot()})
}

// AbandonSession godoc
// DELETE /api/v1/sessions/:session_id
// Discards the session and stops its countdown.
func (h *SessionHandler) AbandonSession(c *gin.Context) {
	sessionID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Abandon(sessionID); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "session abandoned"})
}

func (h *SessionHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *SessionHandler) lookup(c *gin.Context) (*session.Session, bool) {
	sessionID, ok := h.parseID(c)
	if !ok {
		return nil, false
	}
	sess, err := h.sessionService.Get(sessionID)
	if err != nil {
		failFromError(c, err)
		return nil, false
	}
	return sess, true
}
