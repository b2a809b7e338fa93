package paysliperrors

import (
	"net/http"

	"go-hrpay/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrPayPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay period not found",
		http.StatusNotFound,
	)
)
