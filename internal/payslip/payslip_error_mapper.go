package payslip

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	paysliperrors "go-hrpay/internal/payslip/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paysliperrors.ErrPayslipNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// The existence checks run first; a 23503 here means the employee
		// or period disappeared mid-flight.
		if pgErr.Code == "23503" {
			if pgErr.ConstraintName == "fk_payslips_pay_period" {
				return paysliperrors.ErrPayPeriodNotFound
			}
			return paysliperrors.ErrEmployeeNotFound
		}
	}

	return err
}
