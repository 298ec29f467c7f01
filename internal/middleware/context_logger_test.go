package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-employees/internal/middleware"
	"go-employees/internal/shared/contextutil"
	"go-employees/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := token.NewManager("test-secret")
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Identity(tokens))
	router.Use(middleware.ContextLogger(logger))
	router.GET("/resource", func(c *gin.Context) {
		contextutil.GetLogger(c.Request.Context(), nil).Info("resource read")
		c.Status(http.StatusOK)
	})

	t.Run("scoped logger carries request and account ids", func(t *testing.T) {
		signed, err := tokens.Issue("acc-1", "annlee", "ann@x.com")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/resource", nil)
		req.Header.Set("X-Request-ID", "req-42")
		req.Header.Set("Authorization", "Bearer "+signed)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		entries := logs.FilterMessage("resource read").All()
		assert.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-42", fields["request_id"])
		assert.Equal(t, "acc-1", fields["account_id"])
	})

	t.Run("request id is generated when the client sends none", func(t *testing.T) {
		logs.TakeAll()

		req := httptest.NewRequest(http.MethodGet, "/resource", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

		entries := logs.FilterMessage("resource read").All()
		assert.Len(t, entries, 1)
		assert.Equal(t, w.Header().Get("X-Request-ID"), entries[0].ContextMap()["request_id"])
	})
}
