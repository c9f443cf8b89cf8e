package handlers

import (
	"errors"
	"net/http"

	"carbooking/internal/domain"
	"carbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func (h *Handler) RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(c, http.StatusBadRequest, "invalid_credentials", "Invalid credentials")
	case errors.Is(err, domain.ErrMissingToken):
		respondError(c, http.StatusUnauthorized, "missing_token", "Access denied")
	case errors.Is(err, domain.ErrInvalidToken):
		respondError(c, http.StatusForbidden, "invalid_token", "Invalid token")
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		if h.Log != nil {
			h.Log.ErrorContext(c.Request.Context(), "request failed",
				"request_id", middleware.GetRequestID(c),
				"path", c.Request.URL.Path,
				"err", err,
			)
		}
		respondError(c, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
