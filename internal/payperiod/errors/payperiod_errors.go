package payperioderrors

import (
	"net/http"

	"go-hrpay/internal/shared/apperror"
)

var (
	ErrPayPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay period not found",
		http.StatusNotFound,
	)
	ErrPayPeriodHasPayslips = apperror.New(
		apperror.CodeConflict,
		"Cannot delete pay period as it has associated payslips",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodDates = apperror.New(
		apperror.CodeInvalidInput,
		"End date must be after start date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
