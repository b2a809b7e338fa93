package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-hrpay/internal/employee"
	employeeerrors "go-hrpay/internal/employee/errors"
	"go-hrpay/internal/shared/apperror"
	"go-hrpay/internal/shared/listquery"
)

// Field errors are keyed by json tag, which needs the tag-name function
// the binaries register at startup.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type fakeService struct {
	CreateFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListFn       func(ctx context.Context, req employee.ListEmployeesRequest) (listquery.Result[employee.EmployeeResponse], error)
	SearchFn     func(ctx context.Context, term string) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeOption, error)
	UpdateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeService) List(ctx context.Context, req employee.ListEmployeesRequest) (listquery.Result[employee.EmployeeResponse], error) {
	return f.ListFn(ctx, req)
}

func (f *fakeService) Search(ctx context.Context, term string) ([]employee.EmployeeResponse, error) {
	return f.SearchFn(ctx, term)
}

func (f *fakeService) GetOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	return f.GetOptionsFn(ctx)
}

func (f *fakeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc employee.Service) *gin.Engine {
	r := gin.New()
	employee.RegisterRoutes(r.Group("/api/v1"), employee.NewHandler(svc, zap.NewNop()), zap.NewNop())
	return r
}

func performRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func validPayload() gin.H {
	return gin.H{
		"firstName":    "Grace",
		"lastName":     "Hopper",
		"email":        "grace.hopper@example.com",
		"dateOfBirth":  "1990-12-09",
		"hireDate":     "2025-06-01",
		"departmentId": uuid.NewString(),
		"positionId":   uuid.NewString(),
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("returns 201 with the new id", func(t *testing.T) {
		id := uuid.New()
		r := setupRouter(&fakeService{
			CreateFn: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "grace.hopper@example.com", req.Email)
				return employee.EmployeeResponse{EmployeeID: id.String()}, nil
			},
		})

		w := performRequest(r, http.MethodPost, "/api/v1/employees", validPayload())

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Employee created successfully", body["message"])
		assert.Equal(t, id.String(), body["id"])
	})

	t.Run("invalid email fails binding with field detail", func(t *testing.T) {
		r := setupRouter(&fakeService{
			CreateFn: func(context.Context, employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called on a binding failure")
				return employee.EmployeeResponse{}, nil
			},
		})

		payload := validPayload()
		payload["email"] = "not-an-email"
		w := performRequest(r, http.MethodPost, "/api/v1/employees", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Invalid employee data", body["message"])
		errs, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, errs, "email")
	})

	t.Run("unknown status value fails binding", func(t *testing.T) {
		r := setupRouter(&fakeService{})

		payload := validPayload()
		payload["status"] = "Retired"
		w := performRequest(r, http.MethodPost, "/api/v1/employees", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("age rule rejection surfaces as 400", func(t *testing.T) {
		r := setupRouter(&fakeService{
			CreateFn: func(context.Context, employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeTooYoung
			},
		})

		w := performRequest(r, http.MethodPost, "/api/v1/employees", validPayload())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Employee must be at least 16 years old", body["message"])
	})

	t.Run("duplicate email surfaces as 409", func(t *testing.T) {
		r := setupRouter(&fakeService{
			CreateFn: func(context.Context, employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		})

		w := performRequest(r, http.MethodPost, "/api/v1/employees", validPayload())

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_List(t *testing.T) {
	t.Run("passes filters through to the service", func(t *testing.T) {
		deptID := uuid.NewString()
		r := setupRouter(&fakeService{
			ListFn: func(_ context.Context, req employee.ListEmployeesRequest) (listquery.Result[employee.EmployeeResponse], error) {
				assert.Equal(t, "Active", req.Status)
				assert.Equal(t, deptID, req.DepartmentID)
				return listquery.Result[employee.EmployeeResponse]{
					Items:      []employee.EmployeeResponse{{FirstName: "Grace"}},
					TotalCount: 1,
					PageNumber: 1,
					PageSize:   10,
				}, nil
			},
		})

		w := performRequest(r, http.MethodGet,
			"/api/v1/employees?status=Active&departmentId="+deptID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(1), body["totalCount"])
	})

	t.Run("explicit zero pageSize is rejected", func(t *testing.T) {
		r := setupRouter(&fakeService{
			ListFn: func(context.Context, employee.ListEmployeesRequest) (listquery.Result[employee.EmployeeResponse], error) {
				t.Fatal("service must not be called with invalid paging")
				return listquery.Result[employee.EmployeeResponse]{}, nil
			},
		})

		w := performRequest(r, http.MethodGet, "/api/v1/employees?pageSize=0", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "pageSize must be at least 1", body["message"])
	})
}

func TestEmployeeHandler_Search(t *testing.T) {
	t.Run("requires a search term", func(t *testing.T) {
		r := setupRouter(&fakeService{
			SearchFn: func(context.Context, string) ([]employee.EmployeeResponse, error) {
				t.Fatal("service must not be called without a term")
				return nil, nil
			},
		})

		w := performRequest(r, http.MethodGet, "/api/v1/employees/search", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("resolves before the id route", func(t *testing.T) {
		r := setupRouter(&fakeService{
			SearchFn: func(_ context.Context, term string) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, "grace", term)
				return []employee.EmployeeResponse{{FirstName: "Grace"}}, nil
			},
		})

		w := performRequest(r, http.MethodGet, "/api/v1/employees/search?searchTerm=grace", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var results []employee.EmployeeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		require.Len(t, results, 1)
		assert.Equal(t, "Grace", results[0].FirstName)
	})
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	r := setupRouter(&fakeService{
		GetOptionsFn: func(context.Context) ([]employee.EmployeeOption, error) {
			return []employee.EmployeeOption{{EmployeeID: uuid.NewString(), Name: "Grace Hopper"}}, nil
		},
	})

	w := performRequest(r, http.MethodGet, "/api/v1/employees/options", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var options []employee.EmployeeOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	require.Len(t, options, 1)
	assert.Equal(t, "Grace Hopper", options[0].Name)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	id := uuid.New()
	r := setupRouter(&fakeService{
		DeleteFn: func(_ context.Context, got string) error {
			assert.Equal(t, id.String(), got)
			return nil
		},
	})

	w := performRequest(r, http.MethodDelete, "/api/v1/employees/"+id.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Employee deleted successfully", body["message"])
}
