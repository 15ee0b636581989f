package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/apperr"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/response"
)

// failFromError maps domain error kinds to HTTP status + typed response code.
// Anything unclassified is an internal error; the caller logs it.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, apperr.ErrValidation):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	case errors.Is(err, apperr.ErrInvalidTransition):
		response.Fail(c, http.StatusConflict, response.ErrInvalidState)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
