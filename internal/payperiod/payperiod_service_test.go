package payperiod_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-hrpay/internal/payperiod"
	payperioderrors "go-hrpay/internal/payperiod/errors"
	payperiodMock "go-hrpay/internal/payperiod/mock"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service payperiod.Service
	repo    *payperiodMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	repo := payperiodMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	return &serviceDeps{
		sqlMock: sqlMock,
		service: payperiod.NewService(db, repo),
		repo:    repo,
	}
}

func TestPayPeriodService_Create(t *testing.T) {
	t.Run("defaults a blank status to Draft", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, period *payperiod.PayPeriod) error {
				assert.Equal(t, payperiod.StatusDraft, period.Status)
				assert.True(t, period.EndDate.After(period.StartDate))
				return nil
			})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(context.Background(), payperiod.CreatePayPeriodRequest{
			StartDate:   "2026-01-01",
			EndDate:     "2026-01-31",
			PaymentDate: "2026-02-05",
		})

		assert.NoError(t, err)
		assert.Equal(t, payperiod.StatusDraft, resp.Status)
		assert.Equal(t, "2026-01-31", resp.EndDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects a period that ends on or before its start", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(context.Background(), payperiod.CreatePayPeriodRequest{
			StartDate:   "2026-01-31",
			EndDate:     "2026-01-31",
			PaymentDate: "2026-02-05",
		})

		assert.ErrorIs(t, err, payperioderrors.ErrInvalidPeriodDates)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(context.Background(), payperiod.CreatePayPeriodRequest{
			StartDate:   "01/01/2026",
			EndDate:     "2026-01-31",
			PaymentDate: "2026-02-05",
		})

		assert.ErrorIs(t, err, payperioderrors.ErrInvalidDateFormat)
	})
}

func TestPayPeriodService_Delete(t *testing.T) {
	t.Run("blocked while payslips reference it", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&payperiod.PayPeriod{ID: id}, nil)
		deps.repo.EXPECT().CountPayslips(gomock.Any(), id.String()).Return(int64(4), nil)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(context.Background(), id.String())

		assert.ErrorIs(t, err, payperioderrors.ErrPayPeriodHasPayslips)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("allowed with no payslips", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&payperiod.PayPeriod{ID: id}, nil)
		deps.repo.EXPECT().CountPayslips(gomock.Any(), id.String()).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(gomock.Any(), id.String()).Return(nil)
		deps.sqlMock.ExpectCommit()

		err := deps.service.Delete(context.Background(), id.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		err := deps.service.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, payperioderrors.ErrPayPeriodNotFound)
	})
}

func TestPayPeriodService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	id := uuid.New()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&payperiod.PayPeriod{
		ID:     id,
		Status: payperiod.StatusDraft,
	}, nil)
	deps.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, period *payperiod.PayPeriod) error {
			assert.Equal(t, payperiod.StatusOpen, period.Status)
			return nil
		})
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Update(context.Background(), id.String(), payperiod.UpdatePayPeriodRequest{
		StartDate:   "2026-02-01",
		EndDate:     "2026-02-28",
		PaymentDate: "2026-03-05",
		Status:      payperiod.StatusOpen,
	})

	assert.NoError(t, err)
	assert.Equal(t, payperiod.StatusOpen, resp.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
