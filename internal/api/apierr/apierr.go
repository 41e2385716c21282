package apierr

import (
	"errors"
	"net/http"

	"artwork-app/internal/domain/shared"

	"github.com/gin-gonic/gin"
)

// Respond maps a service error to an HTTP response. Anything that is not a
// DomainError collapses into a generic 500; the cause is logged where it
// happened, never exposed here.
func Respond(c *gin.Context, err error) {
	var derr *shared.DomainError
	if errors.As(err, &derr) {
		c.JSON(statusFor(derr.Code), gin.H{"message": derr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

func statusFor(code shared.ErrorCode) int {
	switch code {
	case shared.CodeValidation, shared.CodeConflict:
		return http.StatusBadRequest
	case shared.CodeNotFound:
		return http.StatusNotFound
	case shared.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case shared.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
