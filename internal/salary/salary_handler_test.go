package salary_test

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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-hrpay/internal/salary"
	"go-hrpay/internal/shared/apperror"
	"go-hrpay/internal/shared/listquery"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type fakeService struct {
	CreateFn         func(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error)
	ListByEmployeeFn func(ctx context.Context, req salary.ListSalariesRequest) (listquery.Result[salary.SalaryResponse], error)
}

func (f *fakeService) Create(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeService) ListByEmployee(ctx context.Context, req salary.ListSalariesRequest) (listquery.Result[salary.SalaryResponse], error) {
	return f.ListByEmployeeFn(ctx, req)
}

func setupRouter(svc salary.Service) *gin.Engine {
	r := gin.New()
	salary.RegisterRoutes(r.Group("/api/v1"), salary.NewHandler(svc, zap.NewNop()), zap.NewNop())
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

func TestSalaryHandler_Create(t *testing.T) {
	id := uuid.New()
	r := setupRouter(&fakeService{
		CreateFn: func(_ context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
			assert.Equal(t, "2026-02-01", req.EffectiveDate)
			return salary.SalaryResponse{SalaryID: id.String()}, nil
		},
	})

	w := performRequest(r, http.MethodPost, "/api/v1/salaries", gin.H{
		"employeeId":    uuid.NewString(),
		"amount":        decimal.NewFromInt(75000),
		"effectiveDate": "2026-02-01",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Salary record created successfully", body["message"])
	assert.Equal(t, id.String(), body["id"])
}

func TestSalaryHandler_ListByEmployee(t *testing.T) {
	t.Run("missing employeeId is rejected before the service", func(t *testing.T) {
		r := setupRouter(&fakeService{
			ListByEmployeeFn: func(context.Context, salary.ListSalariesRequest) (listquery.Result[salary.SalaryResponse], error) {
				t.Fatal("service must not be called without an employee id")
				return listquery.Result[salary.SalaryResponse]{}, nil
			},
		})

		w := performRequest(r, http.MethodGet, "/api/v1/salaries", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["message"], "is required")
	})

	t.Run("returns the employee's history", func(t *testing.T) {
		employeeID := uuid.NewString()
		r := setupRouter(&fakeService{
			ListByEmployeeFn: func(_ context.Context, req salary.ListSalariesRequest) (listquery.Result[salary.SalaryResponse], error) {
				assert.Equal(t, employeeID, req.EmployeeID)
				return listquery.Result[salary.SalaryResponse]{
					Items:      []salary.SalaryResponse{{EmployeeID: employeeID, Currency: "USD"}},
					TotalCount: 1,
					PageNumber: 1,
					PageSize:   10,
				}, nil
			},
		})

		w := performRequest(r, http.MethodGet, "/api/v1/salaries?employeeId="+employeeID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(1), body["totalCount"])
	})
}
