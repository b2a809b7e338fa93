package employeeerrors

import (
	"net/http"

	"go-hrpay/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with this email address already exists",
		http.StatusConflict,
	)
	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid dateOfBirth format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidHireDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hireDate format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeTooYoung = apperror.New(
		apperror.CodeInvalidInput,
		"Employee must be at least 16 years old",
		http.StatusBadRequest,
	)
	ErrHireDateOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Hire date must be within the last 100 years and no more than a month in the future",
		http.StatusBadRequest,
	)
	ErrReferenceNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced department, position, or manager does not exist",
		http.StatusBadRequest,
	)
)
