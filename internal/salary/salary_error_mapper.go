package salary

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	salaryerrors "go-hrpay/internal/salary/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return salaryerrors.ErrSalaryAlreadyExists
		case "23503":
			return salaryerrors.ErrEmployeeNotFound
		}
	}

	return err
}
