package departmenterrors

import (
	"net/http"

	"go-hrpay/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	// The message deliberately does not say which category blocked the
	// delete; callers only learn that dependents exist.
	ErrDepartmentHasDependents = apperror.New(
		apperror.CodeConflict,
		"Cannot delete department as it has associated sub-departments, employees, or positions",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
