package department_test

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

	"go-hrpay/internal/department"
	departmenterrors "go-hrpay/internal/department/errors"
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

// fakeService lets each test script the service layer without gomock.
type fakeService struct {
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListFn    func(ctx context.Context, req department.ListDepartmentsRequest) (listquery.Result[department.DepartmentResponse], error)
	UpdateFn  func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeService) List(ctx context.Context, req department.ListDepartmentsRequest) (listquery.Result[department.DepartmentResponse], error) {
	return f.ListFn(ctx, req)
}

func (f *fakeService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc department.Service) *gin.Engine {
	r := gin.New()
	department.RegisterRoutes(r.Group("/api/v1"), department.NewHandler(svc, zap.NewNop()), zap.NewNop())
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

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("returns 201 with the new id", func(t *testing.T) {
		id := uuid.New()
		r := setupRouter(&fakeService{
			CreateFn: func(_ context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				assert.Equal(t, "Engineering", req.Name)
				return department.DepartmentResponse{DepartmentID: id.String(), Name: req.Name}, nil
			},
		})

		w := performRequest(r, http.MethodPost, "/api/v1/departments", gin.H{"name": "Engineering"})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Department created successfully", body["message"])
		assert.Equal(t, id.String(), body["id"])
	})

	t.Run("missing name fails binding with field detail", func(t *testing.T) {
		r := setupRouter(&fakeService{
			CreateFn: func(context.Context, department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				t.Fatal("service must not be called on a binding failure")
				return department.DepartmentResponse{}, nil
			},
		})

		w := performRequest(r, http.MethodPost, "/api/v1/departments", gin.H{"description": "no name"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid department data", body["message"])
		errs, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, errs, "name")
	})

	t.Run("malformed managerId fails binding", func(t *testing.T) {
		r := setupRouter(&fakeService{})

		w := performRequest(r, http.MethodPost, "/api/v1/departments", gin.H{
			"name":      "Engineering",
			"managerId": "not-a-uuid",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDepartmentHandler_GetByID(t *testing.T) {
	t.Run("returns the department", func(t *testing.T) {
		id := uuid.New()
		r := setupRouter(&fakeService{
			GetByIDFn: func(_ context.Context, got string) (department.DepartmentResponse, error) {
				assert.Equal(t, id.String(), got)
				return department.DepartmentResponse{DepartmentID: id.String(), Name: "Finance", EmployeeCount: 7}, nil
			},
		})

		w := performRequest(r, http.MethodGet, "/api/v1/departments/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Finance", body["name"])
		assert.Equal(t, float64(7), body["employeeCount"])
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		r := setupRouter(&fakeService{
			GetByIDFn: func(context.Context, string) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
			},
		})

		w := performRequest(r, http.MethodGet, "/api/v1/departments/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Department not found", body["message"])
	})
}

func TestDepartmentHandler_List(t *testing.T) {
	t.Run("wraps the page in the list envelope", func(t *testing.T) {
		r := setupRouter(&fakeService{
			ListFn: func(_ context.Context, req department.ListDepartmentsRequest) (listquery.Result[department.DepartmentResponse], error) {
				assert.Equal(t, 2, req.PageNumber)
				assert.Equal(t, 5, req.PageSize)
				assert.True(t, req.IncludeSubDepartments)
				return listquery.Result[department.DepartmentResponse]{
					Items:      []department.DepartmentResponse{{Name: "Engineering"}},
					TotalCount: 11,
					PageNumber: 2,
					PageSize:   5,
				}, nil
			},
		})

		w := performRequest(r, http.MethodGet,
			"/api/v1/departments?pageNumber=2&pageSize=5&includeSubDepartments=true", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(11), body["totalCount"])
		assert.Equal(t, float64(3), body["totalPages"])
	})

	t.Run("explicit zero pageSize is rejected", func(t *testing.T) {
		r := setupRouter(&fakeService{
			ListFn: func(context.Context, department.ListDepartmentsRequest) (listquery.Result[department.DepartmentResponse], error) {
				t.Fatal("service must not be called with invalid paging")
				return listquery.Result[department.DepartmentResponse]{}, nil
			},
		})

		w := performRequest(r, http.MethodGet, "/api/v1/departments?pageSize=0", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "pageSize must be at least 1", body["message"])
	})
}

func TestDepartmentHandler_Delete(t *testing.T) {
	t.Run("dependents block the delete", func(t *testing.T) {
		r := setupRouter(&fakeService{
			DeleteFn: func(context.Context, string) error {
				return departmenterrors.ErrDepartmentHasDependents
			},
		})

		w := performRequest(r, http.MethodDelete, "/api/v1/departments/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["message"], "sub-departments, employees, or positions")
	})

	t.Run("returns the removed id", func(t *testing.T) {
		id := uuid.New()
		r := setupRouter(&fakeService{
			DeleteFn: func(_ context.Context, got string) error {
				assert.Equal(t, id.String(), got)
				return nil
			},
		})

		w := performRequest(r, http.MethodDelete, "/api/v1/departments/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, id.String(), body["id"])
	})
}
