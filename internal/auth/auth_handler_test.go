package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-employees/internal/auth"
	autherrors "go-employees/internal/auth/errors"
	authMock "go-employees/internal/auth/mock"
	"go-employees/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	return gin.New()
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("success returns token and user", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "annlee", "secret1").
			Return(auth.AuthPayload{
				Token: "signed-token",
				User:  auth.AccountResponse{ID: "acc-1", Username: "annlee", Email: "ann@x.com"},
			}, nil)

		w := postJSON(t, router, "/login", auth.LoginRequest{
			UsernameOrEmail: "annlee",
			Password:        "secret1",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]any)
		assert.Equal(t, "signed-token", data["token"])
		assert.Equal(t, "annlee", data["user"].(map[string]any)["username"])
	})

	t.Run("missing password rejected at the binding layer", func(t *testing.T) {
		w := postJSON(t, router, "/login", map[string]any{
			"usernameOrEmail": "annlee",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		errObj := res["error"].(map[string]any)
		assert.Equal(t, "Password is required", errObj["message"])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(auth.AuthPayload{}, autherrors.ErrInvalidCredentials)

		w := postJSON(t, router, "/login", auth.LoginRequest{
			UsernameOrEmail: "ghost",
			Password:        "nope",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		errObj := res["error"].(map[string]any)
		assert.Equal(t, "Invalid username/email or password", errObj["message"])
	})
}

func TestAuthHandler_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/signup", handler.Signup)

	t.Run("created", func(t *testing.T) {
		req := auth.SignupRequest{Username: "annlee", Email: "ann@x.com", Password: "secret1"}

		mockService.EXPECT().
			Signup(gomock.Any(), req).
			Return(auth.AccountResponse{ID: "acc-1", Username: "annlee", Email: "ann@x.com"}, nil)

		w := postJSON(t, router, "/signup", req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, "ann@x.com", res["data"].(map[string]any)["email"])
	})

	t.Run("conflict", func(t *testing.T) {
		mockService.EXPECT().
			Signup(gomock.Any(), gomock.Any()).
			Return(auth.AccountResponse{}, autherrors.ErrAccountAlreadyExists)

		w := postJSON(t, router, "/signup", auth.SignupRequest{
			Username: "annlee", Email: "ann@x.com", Password: "secret1",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
