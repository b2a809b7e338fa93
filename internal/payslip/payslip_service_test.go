package payslip_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-hrpay/internal/payslip"
	paysliperrors "go-hrpay/internal/payslip/errors"
	payslipMock "go-hrpay/internal/payslip/mock"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service payslip.Service
	repo    *payslipMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	repo := payslipMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	return &serviceDeps{
		sqlMock: sqlMock,
		service: payslip.NewService(db, repo),
		repo:    repo,
	}
}

func createRequest(employeeID, payPeriodID uuid.UUID) payslip.CreatePayslipRequest {
	return payslip.CreatePayslipRequest{
		EmployeeID:      employeeID.String(),
		PayPeriodID:     payPeriodID.String(),
		GrossPay:        decimal.NewFromInt(5000),
		TotalDeductions: decimal.NewFromInt(1200),
		NetPay:          decimal.NewFromInt(3800),
		Deductions: []payslip.DeductionRequest{
			{Type: "Tax", Amount: decimal.NewFromInt(1000)},
			{Type: "Pension", Amount: decimal.NewFromInt(200)},
		},
	}
}

func TestPayslipService_Create(t *testing.T) {
	employeeID := uuid.New()
	payPeriodID := uuid.New()

	t.Run("persists the slip with its line items", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().EmployeeExists(gomock.Any(), employeeID.String()).Return(true, nil)
		deps.repo.EXPECT().PayPeriodExists(gomock.Any(), payPeriodID.String()).Return(true, nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, slip *payslip.Payslip) error {
				assert.Equal(t, payslip.StatusDraft, slip.Status)
				require.Len(t, slip.Deductions, 2)
				assert.Equal(t, slip.ID, slip.Deductions[0].PayslipID)
				assert.Equal(t, "Tax", slip.Deductions[0].Type)
				return nil
			})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(context.Background(), createRequest(employeeID, payPeriodID))

		assert.NoError(t, err)
		assert.Len(t, resp.Deductions, 2)
		assert.True(t, resp.NetPay.Equal(decimal.NewFromInt(3800)))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee rolls back before writing", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().EmployeeExists(gomock.Any(), employeeID.String()).Return(false, nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(context.Background(), createRequest(employeeID, payPeriodID))

		assert.ErrorIs(t, err, paysliperrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown pay period rolls back before writing", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().EmployeeExists(gomock.Any(), employeeID.String()).Return(true, nil)
		deps.repo.EXPECT().PayPeriodExists(gomock.Any(), payPeriodID.String()).Return(false, nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(context.Background(), createRequest(employeeID, payPeriodID))

		assert.ErrorIs(t, err, paysliperrors.ErrPayPeriodNotFound)
	})
}

func TestPayslipService_Update(t *testing.T) {
	deps := setupServiceTest(t)

	id := uuid.New()
	employeeID := uuid.New()
	payPeriodID := uuid.New()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&payslip.Payslip{
		ID:          id,
		EmployeeID:  employeeID,
		PayPeriodID: payPeriodID,
		Status:      payslip.StatusDraft,
		Deductions: []payslip.Deduction{
			{ID: uuid.New(), PayslipID: id, Type: "Tax", Amount: decimal.NewFromInt(900)},
		},
	}, nil)
	deps.repo.EXPECT().EmployeeExists(gomock.Any(), employeeID.String()).Return(true, nil)
	deps.repo.EXPECT().PayPeriodExists(gomock.Any(), payPeriodID.String()).Return(true, nil)
	deps.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, slip *payslip.Payslip) error {
			assert.Equal(t, payslip.StatusApproved, slip.Status)
			assert.True(t, slip.GrossPay.Equal(decimal.NewFromInt(5200)))
			return nil
		})
	deps.repo.EXPECT().
		ReplaceDeductions(gomock.Any(), id.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, deductions []payslip.Deduction) error {
			// Old line items are swapped for the incoming set.
			require.Len(t, deductions, 2)
			assert.Equal(t, "Tax", deductions[0].Type)
			assert.Equal(t, "Insurance", deductions[1].Type)
			assert.Equal(t, id, deductions[1].PayslipID)
			return nil
		})
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Update(context.Background(), id.String(), payslip.UpdatePayslipRequest{
		EmployeeID:      employeeID.String(),
		PayPeriodID:     payPeriodID.String(),
		GrossPay:        decimal.NewFromInt(5200),
		TotalDeductions: decimal.NewFromInt(1300),
		NetPay:          decimal.NewFromInt(3900),
		Status:          payslip.StatusApproved,
		Deductions: []payslip.DeductionRequest{
			{Type: "Tax", Amount: decimal.NewFromInt(1100)},
			{Type: "Insurance", Amount: decimal.NewFromInt(200)},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Deductions, 2)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayslipService_Delete(t *testing.T) {
	t.Run("removes the slip", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&payslip.Payslip{ID: id}, nil)
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

		assert.ErrorIs(t, err, paysliperrors.ErrPayslipNotFound)
	})
}
