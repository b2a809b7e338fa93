package position

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	positionerrors "go-hrpay/internal/position/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			if pgErr.TableName == "positions" {
				// Insert or update against a department that vanished.
				return positionerrors.ErrDepartmentNotFound
			}
			// Employees still reference the position.
			return positionerrors.ErrPositionHasEmployees
		}
	}

	return err
}
