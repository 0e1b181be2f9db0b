package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	var (
		verr domain.ValidationError
		rerr domain.ReferenceError
	)
	switch {
	case errors.As(err, &verr):
		var details any
		if len(verr.Fields) > 0 {
			details = verr.Fields
		}
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), details)
	case errors.As(err, &rerr):
		var details any
		if rerr.Field != "" {
			details = map[string]string{rerr.Field: "referenced object does not exist"}
		}
		respondError(c, http.StatusBadRequest, "invalid_reference", err.Error(), details)
	case domain.IsConflict(err):
		respondError(c, http.StatusBadRequest, "conflict", err.Error(), nil)
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "not_authenticated", err.Error(), nil)
	case errors.Is(err, domain.ErrForbidden):
		respondError(c, http.StatusForbidden, "permission_denied", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}
