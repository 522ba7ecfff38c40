package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps the sentinel taxonomy onto HTTP statuses. A
// storage write failure becomes the generic retryable 500 the client
// surfaces as an alert.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case apperr.Is(err, apperr.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case apperr.Is(err, apperr.ErrImportFormat):
		RespondError(c, http.StatusBadRequest, "import_format", err)
	case apperr.Is(err, apperr.ErrInvalidArgument):
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	case apperr.Is(err, apperr.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	default:
		RespondError(c, http.StatusInternalServerError, "storage", err)
	}
}
