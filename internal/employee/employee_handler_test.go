package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-erp/internal/employee"
	employeeerrors "go-erp/internal/employee/errors"
	"go-erp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	SaveFn    func(ctx context.Context, req employee.SaveEmployeeRequest, existingID string) (employee.Employee, error)
	GetAllFn  func(ctx context.Context) ([]employee.Employee, error)
	GetByIDFn func(ctx context.Context, id string) (employee.Employee, error)
	StatsFn   func(ctx context.Context) (employee.Stats, error)
}

func (f *fakeEmployeeService) Save(ctx context.Context, req employee.SaveEmployeeRequest, existingID string) (employee.Employee, error) {
	return f.SaveFn(ctx, req, existingID)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Stats(ctx context.Context) (employee.Stats, error) {
	return f.StatsFn(ctx)
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	h := employee.NewHandler(svc)
	r.POST("/api/v1/employees", h.Create)
	r.PUT("/api/v1/employees/:id", h.Update)
	r.GET("/api/v1/employees", h.GetAll)
	r.GET("/api/v1/employees/:id", h.GetById)
	return r
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta *struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
		Page       int   `json:"page"`
		PageSize   int   `json:"pageSize"`
	} `json:"meta"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			SaveFn: func(ctx context.Context, req employee.SaveEmployeeRequest, existingID string) (employee.Employee, error) {
				assert.Empty(t, existingID)
				assert.Equal(t, "João Teste", req.Name)
				return employee.Employee{
					ID:         "EMP0016",
					Name:       req.Name,
					Position:   req.Position,
					Department: req.Department,
					HireDate:   req.HireDate,
					Salary:     decimal.NewFromInt(5000),
					Active:     true,
				}, nil
			},
		}
		router := setupRouter(svc)

		body := `{"name":"João Teste","position":"Analista","department":"TI","hireDate":"2024-05-10","salary":"5000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decode(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"EMP0016"`)
	})

	t.Run("missing fields produce the full field list", func(t *testing.T) {
		svc := &fakeEmployeeService{
			SaveFn: func(ctx context.Context, req employee.SaveEmployeeRequest, existingID string) (employee.Employee, error) {
				t.Fatal("service must not be called on invalid input")
				return employee.Employee{}, nil
			},
		}
		router := setupRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(`{"name":"Só Nome"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, apperror.CodeValidationError, env.Error.Code)

		var fields []apperror.FieldError
		require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.Field)
		}
		assert.ElementsMatch(t, []string{"position", "department", "hireDate", "salary"}, names)
	})

	t.Run("semantic errors map to 422", func(t *testing.T) {
		svc := &fakeEmployeeService{
			SaveFn: func(ctx context.Context, req employee.SaveEmployeeRequest, existingID string) (employee.Employee, error) {
				return employee.Employee{}, employeeerrors.ErrSalaryNotPositive
			},
		}
		router := setupRouter(svc)

		body := `{"name":"João","position":"Analista","department":"TI","hireDate":"2024-05-10","salary":"-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, apperror.CodeSemanticError, env.Error.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		svc := &fakeEmployeeService{
			SaveFn: func(ctx context.Context, req employee.SaveEmployeeRequest, existingID string) (employee.Employee, error) {
				assert.Equal(t, "EMP9999", existingID)
				return employee.Employee{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		router := setupRouter(svc)

		body := `{"name":"João","position":"Analista","department":"TI","hireDate":"2024-05-10","salary":"5000"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/EMP9999", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Error)
		assert.Equal(t, apperror.CodeNotFound, env.Error.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	sample := func() []employee.Employee {
		return []employee.Employee{
			{ID: "EMP0001", Name: "Ana", Position: "Dev", Department: "TI", Salary: decimal.NewFromInt(1), Active: true},
			{ID: "EMP0002", Name: "Bruno", Position: "Dev", Department: "TI", Salary: decimal.NewFromInt(1), Active: true},
			{ID: "EMP0003", Name: "Carla", Position: "RH", Department: "RH", Salary: decimal.NewFromInt(1), Active: true},
		}
	}

	t.Run("paginates", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.Employee, error) { return sample(), nil },
		}
		router := setupRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees?page=1&page_size=2", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Meta)
		assert.Equal(t, int64(3), env.Meta.Total)
		assert.Equal(t, 2, env.Meta.TotalPages)

		var page []employee.Employee
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Len(t, page, 2)
	})

	t.Run("filters by query", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.Employee, error) { return sample(), nil },
		}
		router := setupRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees?q=carla", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		env := decode(t, w)
		var page []employee.Employee
		require.NoError(t, json.Unmarshal(env.Data, &page))
		require.Len(t, page, 1)
		assert.Equal(t, "EMP0003", page[0].ID)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	svc := &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			if id == "EMP0001" {
				return employee.Employee{ID: id, Name: "Ana", Salary: decimal.NewFromInt(1)}, nil
			}
			return employee.Employee{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/EMP0001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/employees/EMP0042", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
