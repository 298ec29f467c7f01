package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-employees/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupIdempotencyRouter(rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/employees", middleware.Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": "emp-1"})
	})
	return router
}

func postWithKey(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:/employees::key-1"
	lockKey := cacheKey + ":lock"

	t.Run("no header passes straight through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		router := setupIdempotencyRouter(rdb)

		w := postWithKey(router, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request runs and caches the response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		router := setupIdempotencyRouter(rdb)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, `{"id":"emp-1"}`, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := postWithKey(router, "key-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "emp-1")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat replays the cached response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		router := setupIdempotencyRouter(rdb)

		mock.ExpectGet(cacheKey).SetVal(`{"id":"emp-1"}`)

		w := postWithKey(router, "key-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"id":"emp-1"}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected while in flight", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		router := setupIdempotencyRouter(rdb)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := postWithKey(router, "key-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
