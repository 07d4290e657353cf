package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PhatNguyen203/DevConnecting/internal/delivery/http/middleware"
	"github.com/PhatNguyen203/DevConnecting/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Should bind a generated id under the typed context key", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)

		var bound string
		r.Use(middleware.RequestID())
		r.GET("/", func(c *gin.Context) {
			bound = c.GetString(string(domain.KeyRequestID))
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, bound)
		assert.Equal(t, bound, w.Header().Get("X-Request-ID"))
	})

	t.Run("Should honor a caller-supplied id", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)

		var bound string
		r.Use(middleware.RequestID())
		r.GET("/", func(c *gin.Context) {
			bound = c.GetString(string(domain.KeyRequestID))
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-42")
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", bound)
		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	})
}
