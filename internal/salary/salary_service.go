package salary

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	salaryerrors "go-hrpay/internal/salary/errors"
	"go-hrpay/internal/shared/listquery"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	ListByEmployee(ctx context.Context, req ListSalariesRequest) (listquery.Result[SalaryResponse], error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error) {
	s.logger.Debug("create salary requested", zap.String("employee_id", req.EmployeeID))

	// The Kafka consumer calls this with an id straight off the wire, so
	// it cannot be assumed handler-validated.
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidDateFormat
	}

	var endDate *time.Time
	if req.EndDate != nil {
		t, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return SalaryResponse{}, salaryerrors.ErrInvalidDateFormat
		}
		endDate = &t
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = PaymentTypeMonthly
	}

	sal := &Salary{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		Amount:        req.Amount,
		Currency:      currency,
		PaymentType:   paymentType,
		EffectiveDate: effectiveDate,
		EndDate:       endDate,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !exists {
			return salaryerrors.ErrEmployeeNotFound
		}

		return qtx.Create(ctx, sal)
	})
	if err != nil {
		s.logger.Error("create salary failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create salary success", zap.String("salary_id", sal.ID.String()))
	return mapToResponse(*sal), nil
}

func (s *service) ListByEmployee(ctx context.Context, req ListSalariesRequest) (listquery.Result[SalaryResponse], error) {
	page, err := s.repo.ListByEmployee(ctx, req.Request, req.EmployeeID)
	if err != nil {
		s.logger.Error("list salaries failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return listquery.Result[SalaryResponse]{}, mapRepositoryError(err)
	}

	return listquery.Map(page, mapToResponse), nil
}

func mapToResponse(sal Salary) SalaryResponse {
	resp := SalaryResponse{
		SalaryID:      sal.ID.String(),
		EmployeeID:    sal.EmployeeID.String(),
		Amount:        sal.Amount,
		Currency:      sal.Currency,
		PaymentType:   sal.PaymentType,
		EffectiveDate: sal.EffectiveDate.Format(dateLayout),
		Created:       sal.Created,
		Modified:      sal.Modified,
	}
	if sal.EndDate != nil {
		t := sal.EndDate.Format(dateLayout)
		resp.EndDate = &t
	}
	if sal.Employee != nil {
		resp.EmployeeName = sal.Employee.FirstName + " " + sal.Employee.LastName
	}
	return resp
}
