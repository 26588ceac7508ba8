package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestUserNotFound(t *testing.T) {
	tests := []struct {
		name     string
		strict   bool
		wantCode int
	}{
		{name: "compatible", strict: false, wantCode: http.StatusOK},
		{name: "strict", strict: true, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			UserNotFound(c, tt.strict)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
		})
	}
}

func TestInternalError(t *testing.T) {
	c, w := newContext()
	InternalError(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestSuccessResponse(t *testing.T) {
	c, w := newContext()
	SuccessResponse(c, gin.H{"username": "fcc_test"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"fcc_test"}`, w.Body.String())
}
