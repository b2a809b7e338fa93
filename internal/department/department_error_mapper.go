package department

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	departmenterrors "go-hrpay/internal/department/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23503: a foreign key still references the row. The guard checks
		// first, but a concurrent insert can slip between check and delete.
		if pgErr.Code == "23503" {
			return departmenterrors.ErrDepartmentHasDependents
		}
	}

	return err
}
