package payperiod

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	payperioderrors "go-hrpay/internal/payperiod/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payperioderrors.ErrPayPeriodNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Payslips still reference the period.
		if pgErr.Code == "23503" {
			return payperioderrors.ErrPayPeriodHasPayslips
		}
	}

	return err
}
