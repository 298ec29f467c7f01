package employee_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-employees/internal/employee"
	employeeerrors "go-employees/internal/employee/errors"
	employeeMock "go-employees/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type handlerDeps struct {
	router  *gin.Engine
	service *employeeMock.MockService
}

func setupHandlerTest(t *testing.T) *handlerDeps {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)

	router := gin.New()
	router.GET("/employees", handler.GetAll)
	router.GET("/employees/search", handler.Search)
	router.GET("/employees/:id", handler.GetById)
	router.POST("/employees", handler.Create)
	router.PUT("/employees/:id", handler.Update)
	router.DELETE("/employees/:id", handler.Delete)

	return &handlerDeps{router: router, service: mockService}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestEmployeeHandler_Create(t *testing.T) {
	deps := setupHandlerTest(t)

	t.Run("created", func(t *testing.T) {
		deps.service.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(employee.EmployeeResponse{
				ID:        "emp-1",
				FirstName: "Ann",
				Email:     "ann@x.com",
			}, nil)

		w := doJSON(t, deps.router, http.MethodPost, "/employees", validInput())

		assert.Equal(t, http.StatusCreated, w.Code)
		res := decodeEnvelope(t, w)
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, "emp-1", res["data"].(map[string]any)["id"])
	})

	t.Run("validation failure surfaces joined message", func(t *testing.T) {
		deps.service.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(employee.EmployeeResponse{}, employeeerrors.ErrSalaryTooLow)

		w := doJSON(t, deps.router, http.MethodPost, "/employees", validInput())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decodeEnvelope(t, w)
		assert.Equal(t, false, res["ok"])
		assert.Equal(t, "Salary must be at least 1000", res["error"].(map[string]any)["message"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps.service.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeEmailExists)

		w := doJSON(t, deps.router, http.MethodPost, "/employees", validInput())

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	deps := setupHandlerTest(t)

	deps.service.EXPECT().
		GetAll(gomock.Any()).
		Return([]employee.EmployeeResponse{
			{ID: "emp-1", FirstName: "Ann"},
			{ID: "emp-2", FirstName: "Bob"},
		}, nil)

	w := doJSON(t, deps.router, http.MethodGet, "/employees", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeEnvelope(t, w)
	assert.Len(t, res["data"].([]any), 2)
}

func TestEmployeeHandler_Search(t *testing.T) {
	deps := setupHandlerTest(t)

	t.Run("query params forwarded", func(t *testing.T) {
		deps.service.EXPECT().
			Search(gomock.Any(), "Manager", "Sales").
			Return([]employee.EmployeeResponse{{ID: "emp-1"}}, nil)

		w := doJSON(t, deps.router, http.MethodGet, "/employees/search?designation=Manager&department=Sales", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no terms rejected", func(t *testing.T) {
		deps.service.EXPECT().
			Search(gomock.Any(), "", "").
			Return(nil, employeeerrors.ErrSearchTermRequired)

		w := doJSON(t, deps.router, http.MethodGet, "/employees/search", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decodeEnvelope(t, w)
		assert.Equal(t, "Please provide at least a designation or department to search",
			res["error"].(map[string]any)["message"])
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	deps := setupHandlerTest(t)

	t.Run("found", func(t *testing.T) {
		deps.service.EXPECT().
			GetByID(gomock.Any(), "emp-1").
			Return(employee.EmployeeResponse{ID: "emp-1", FirstName: "Ann"}, nil)

		w := doJSON(t, deps.router, http.MethodGet, "/employees/emp-1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		deps.service.EXPECT().
			GetByID(gomock.Any(), "ghost").
			Return(employee.EmployeeResponse{}, employeeerrors.EmployeeNotFound("ghost"))

		w := doJSON(t, deps.router, http.MethodGet, "/employees/ghost", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		res := decodeEnvelope(t, w)
		assert.Equal(t, "Employee with ID ghost not found", res["error"].(map[string]any)["message"])
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	deps := setupHandlerTest(t)

	t.Run("partial body forwarded", func(t *testing.T) {
		salary := 5000.0

		deps.service.EXPECT().
			Update(gomock.Any(), "emp-1", employee.UpdateEmployeeRequest{Salary: &salary}).
			Return(employee.EmployeeResponse{ID: "emp-1", Salary: 5000}, nil)

		w := doJSON(t, deps.router, http.MethodPut, "/employees/emp-1", map[string]any{"salary": 5000})

		assert.Equal(t, http.StatusOK, w.Code)
		res := decodeEnvelope(t, w)
		assert.Equal(t, 5000.0, res["data"].(map[string]any)["salary"])
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/employees/emp-1", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	deps := setupHandlerTest(t)

	t.Run("deleted", func(t *testing.T) {
		deps.service.EXPECT().
			Delete(gomock.Any(), "emp-1").
			Return(employee.DeleteEmployeeResponse{
				Message: "Employee deleted successfully",
				ID:      "emp-1",
			}, nil)

		w := doJSON(t, deps.router, http.MethodDelete, "/employees/emp-1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		res := decodeEnvelope(t, w)
		data := res["data"].(map[string]any)
		assert.Equal(t, "Employee deleted successfully", data["message"])
		assert.Equal(t, "emp-1", data["id"])
	})

	t.Run("not found", func(t *testing.T) {
		deps.service.EXPECT().
			Delete(gomock.Any(), "ghost").
			Return(employee.DeleteEmployeeResponse{}, employeeerrors.EmployeeNotFound("ghost"))

		w := doJSON(t, deps.router, http.MethodDelete, "/employees/ghost", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
