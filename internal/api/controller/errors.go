package controller

import (
	"ctchen222/exercise-tracker/internal/api/response"
	"ctchen222/exercise-tracker/internal/api/service"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP responses.
func writeError(c *gin.Context, err error, strict bool) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.UserNotFound(c, strict)
	case errors.As(err, &verr):
		response.ErrorResponse(c, http.StatusBadRequest, verr.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "Request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		_ = c.Error(err)
		response.InternalError(c)
	}
}
