package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leadradar/leadgen-api/internal/apperrors"
)

// httpStatusForError maps application error codes to HTTP statuses. Places
// API failures surface as gateway-style errors so the dashboard can tell
// upstream trouble from bad input.
func httpStatusForError(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.ErrCodeLocationNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeQuotaExceeded:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeCredentialsRejected, apperrors.ErrCodeServiceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(httpStatusForError(err), gin.H{"error": err.Error()})
}
