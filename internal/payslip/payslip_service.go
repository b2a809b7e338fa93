package payslip

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	paysliperrors "go-hrpay/internal/payslip/errors"
	"go-hrpay/internal/shared/listquery"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayslipRequest) (PayslipResponse, error)
	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	List(ctx context.Context, req ListPayslipsRequest) (listquery.Result[PayslipResponse], error)
	Update(ctx context.Context, id string, req UpdatePayslipRequest) (PayslipResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePayslipRequest) (PayslipResponse, error) {
	s.logger.Debug("create payslip requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("pay_period_id", req.PayPeriodID),
	)

	status := req.Status
	if status == "" {
		status = StatusDraft
	}

	slip := &Payslip{
		ID:              uuid.New(),
		EmployeeID:      uuid.MustParse(req.EmployeeID),
		PayPeriodID:     uuid.MustParse(req.PayPeriodID),
		GrossPay:        req.GrossPay,
		TotalDeductions: req.TotalDeductions,
		NetPay:          req.NetPay,
		Status:          status,
	}
	slip.Deductions = buildDeductions(slip.ID, req.Deductions)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := s.checkReferences(ctx, qtx, req.EmployeeID, req.PayPeriodID); err != nil {
			return err
		}

		return qtx.Create(ctx, slip)
	})
	if err != nil {
		s.logger.Error("create payslip failed", zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create payslip success", zap.String("payslip_id", slip.ID.String()))
	return mapToResponse(*slip), nil
}

func (s *service) checkReferences(ctx context.Context, repo Repository, employeeID, payPeriodID string) error {
	exists, err := repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !exists {
		return paysliperrors.ErrEmployeeNotFound
	}

	exists, err = repo.PayPeriodExists(ctx, payPeriodID)
	if err != nil {
		return err
	}
	if !exists {
		return paysliperrors.ErrPayPeriodNotFound
	}

	return nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayslipResponse, error) {
	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get payslip by id failed", zap.String("payslip_id", id), zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*slip), nil
}

func (s *service) List(ctx context.Context, req ListPayslipsRequest) (listquery.Result[PayslipResponse], error) {
	page, err := s.repo.List(ctx, req.Request, req.EmployeeID, req.PayPeriodID)
	if err != nil {
		s.logger.Error("list payslips failed", zap.Error(err))
		return listquery.Result[PayslipResponse]{}, mapRepositoryError(err)
	}

	return listquery.Map(page, mapToResponse), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePayslipRequest) (PayslipResponse, error) {
	s.logger.Debug("update payslip requested", zap.String("payslip_id", id))

	var slip *Payslip
	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		slip, err = qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.checkReferences(ctx, qtx, req.EmployeeID, req.PayPeriodID); err != nil {
			return err
		}

		slip.EmployeeID = uuid.MustParse(req.EmployeeID)
		slip.PayPeriodID = uuid.MustParse(req.PayPeriodID)
		slip.GrossPay = req.GrossPay
		slip.TotalDeductions = req.TotalDeductions
		slip.NetPay = req.NetPay
		if req.Status != "" {
			slip.Status = req.Status
		}

		if err := qtx.Update(ctx, slip); err != nil {
			return err
		}

		// Line items are replaced wholesale, not merged.
		slip.Deductions = buildDeductions(slip.ID, req.Deductions)
		return qtx.ReplaceDeductions(ctx, id, slip.Deductions)
	})
	if err != nil {
		s.logger.Error("update payslip failed", zap.String("payslip_id", id), zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update payslip success", zap.String("payslip_id", id))
	return mapToResponse(*slip), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete payslip requested", zap.String("payslip_id", id))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return err
		}

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("delete payslip failed", zap.String("payslip_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete payslip success", zap.String("payslip_id", id))
	return nil
}

func buildDeductions(payslipID uuid.UUID, items []DeductionRequest) []Deduction {
	deductions := make([]Deduction, len(items))
	for i, d := range items {
		deductions[i] = Deduction{
			ID:          uuid.New(),
			PayslipID:   payslipID,
			Type:        d.Type,
			Description: d.Description,
			Amount:      d.Amount,
		}
	}
	return deductions
}

func mapToResponse(slip Payslip) PayslipResponse {
	resp := PayslipResponse{
		PayslipID:       slip.ID.String(),
		EmployeeID:      slip.EmployeeID.String(),
		PayPeriodID:     slip.PayPeriodID.String(),
		GrossPay:        slip.GrossPay,
		TotalDeductions: slip.TotalDeductions,
		NetPay:          slip.NetPay,
		Status:          slip.Status,
		Deductions:      make([]DeductionResponse, len(slip.Deductions)),
		Created:         slip.Created,
		Modified:        slip.Modified,
	}
	for i, d := range slip.Deductions {
		resp.Deductions[i] = DeductionResponse{
			DeductionID: d.ID.String(),
			Type:        d.Type,
			Description: d.Description,
			Amount:      d.Amount,
		}
	}
	if slip.Employee != nil {
		resp.EmployeeName = slip.Employee.FirstName + " " + slip.Employee.LastName
	}
	if slip.PayPeriod != nil {
		resp.PeriodStartDate = slip.PayPeriod.StartDate.Format(dateLayout)
		resp.PeriodEndDate = slip.PayPeriod.EndDate.Format(dateLayout)
	}
	return resp
}
