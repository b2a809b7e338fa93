package payperiod

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	payperioderrors "go-hrpay/internal/payperiod/errors"
	"go-hrpay/internal/shared/listquery"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payperiod_service.go -destination=mock/payperiod_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayPeriodRequest) (PayPeriodResponse, error)
	GetByID(ctx context.Context, id string) (PayPeriodResponse, error)
	List(ctx context.Context, req ListPayPeriodsRequest) (listquery.Result[PayPeriodResponse], error)
	Update(ctx context.Context, id string, req UpdatePayPeriodRequest) (PayPeriodResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payperiod.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payperiod.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePayPeriodRequest) (PayPeriodResponse, error) {
	s.logger.Debug("create pay period requested", zap.String("start_date", req.StartDate))

	start, end, payment, err := parsePeriodDates(req.StartDate, req.EndDate, req.PaymentDate)
	if err != nil {
		s.logger.Warn("create pay period date validation failed", zap.Error(err))
		return PayPeriodResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = StatusDraft
	}

	period := &PayPeriod{
		ID:          uuid.New(),
		StartDate:   start,
		EndDate:     end,
		PaymentDate: payment,
		Status:      status,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, period)
	})
	if err != nil {
		s.logger.Error("create pay period persist failed", zap.Error(err))
		return PayPeriodResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create pay period success", zap.String("pay_period_id", period.ID.String()))
	return mapToResponse(*period), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayPeriodResponse, error) {
	period, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get pay period by id failed", zap.String("pay_period_id", id), zap.Error(err))
		return PayPeriodResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*period), nil
}

func (s *service) List(ctx context.Context, req ListPayPeriodsRequest) (listquery.Result[PayPeriodResponse], error) {
	page, err := s.repo.List(ctx, req.Request, req.Status)
	if err != nil {
		s.logger.Error("list pay periods failed", zap.Error(err))
		return listquery.Result[PayPeriodResponse]{}, mapRepositoryError(err)
	}

	return listquery.Map(page, mapToResponse), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePayPeriodRequest) (PayPeriodResponse, error) {
	s.logger.Debug("update pay period requested", zap.String("pay_period_id", id))

	start, end, payment, err := parsePeriodDates(req.StartDate, req.EndDate, req.PaymentDate)
	if err != nil {
		s.logger.Warn("update pay period date validation failed", zap.Error(err))
		return PayPeriodResponse{}, err
	}

	var period *PayPeriod
	err = s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		period, err = qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		period.StartDate = start
		period.EndDate = end
		period.PaymentDate = payment
		if req.Status != "" {
			period.Status = req.Status
		}

		return qtx.Update(ctx, period)
	})
	if err != nil {
		s.logger.Error("update pay period failed", zap.String("pay_period_id", id), zap.Error(err))
		return PayPeriodResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update pay period success", zap.String("pay_period_id", id))
	return mapToResponse(*period), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete pay period requested", zap.String("pay_period_id", id))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return err
		}

		payslips, err := qtx.CountPayslips(ctx, id)
		if err != nil {
			return err
		}
		if payslips > 0 {
			return payperioderrors.ErrPayPeriodHasPayslips
		}

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Warn("delete pay period blocked or failed", zap.String("pay_period_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete pay period success", zap.String("pay_period_id", id))
	return nil
}

func parsePeriodDates(startRaw, endRaw, paymentRaw string) (start, end, payment time.Time, err error) {
	start, err = time.Parse(dateLayout, startRaw)
	if err != nil {
		return start, end, payment, payperioderrors.ErrInvalidDateFormat
	}
	end, err = time.Parse(dateLayout, endRaw)
	if err != nil {
		return start, end, payment, payperioderrors.ErrInvalidDateFormat
	}
	payment, err = time.Parse(dateLayout, paymentRaw)
	if err != nil {
		return start, end, payment, payperioderrors.ErrInvalidDateFormat
	}

	if !end.After(start) {
		return start, end, payment, payperioderrors.ErrInvalidPeriodDates
	}

	return start, end, payment, nil
}

func mapToResponse(period PayPeriod) PayPeriodResponse {
	return PayPeriodResponse{
		PayPeriodID: period.ID.String(),
		StartDate:   period.StartDate.Format(dateLayout),
		EndDate:     period.EndDate.Format(dateLayout),
		PaymentDate: period.PaymentDate.Format(dateLayout),
		Status:      period.Status,
		Created:     period.Created,
		Modified:    period.Modified,
	}
}
