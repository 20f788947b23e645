package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as JSON and aborts the chain. Internal errors are
// attached to the context for the request logger and hidden from the client.
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		message = http.StatusText(http.StatusInternalServerError)
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
