package response

import (
	"ctchen222/exercise-tracker/pkg/proto"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserNotFoundMessage is the body-level error clients match on.
const UserNotFoundMessage = "User not found"

// SuccessResponse writes extras as the JSON body with status 200. Bodies are
// bare objects, not wrapped in an envelope, so existing clients can read them.
func SuccessResponse(c *gin.Context, extras any) {
	c.JSON(http.StatusOK, extras)
}

// UserNotFound reports an unknown user id. The status is 200 unless strict
// status codes are enabled, in which case it is 404.
func UserNotFound(c *gin.Context, strict bool) {
	code := http.StatusOK
	if strict {
		code = http.StatusNotFound
	}
	ErrorResponse(c, code, UserNotFoundMessage)
}

// ErrorResponse writes {"error": message} with the given status.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, proto.ErrorResponse{Error: message})
}

// InternalError hides the cause from the client.
func InternalError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
