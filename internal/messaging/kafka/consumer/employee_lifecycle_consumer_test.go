package consumer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	salaryerrors "go-hrpay/internal/salary/errors"
)

func TestIsDuplicateSalary(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "service sentinel",
			err:  salaryerrors.ErrSalaryAlreadyExists,
			want: true,
		},
		{
			name: "wrapped service sentinel",
			err:  fmt.Errorf("create salary: %w", salaryerrors.ErrSalaryAlreadyExists),
			want: true,
		},
		{
			name: "unique violation on the dedupe index",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_salaries_employee_effective"},
			want: true,
		},
		{
			name: "unique violation on another constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uni_employees_email"},
			want: false,
		},
		{
			name: "driver message without a typed error",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "uq_salaries_employee_effective"`),
			want: true,
		},
		{
			name: "unrelated failure",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateSalary(tt.err))
		})
	}
}

func TestIsUnprocessableEvent(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "malformed employee id in the payload",
			err:  salaryerrors.ErrInvalidEmployeeID,
			want: true,
		},
		{
			name: "employee row gone",
			err:  fmt.Errorf("create salary: %w", salaryerrors.ErrEmployeeNotFound),
			want: true,
		},
		{
			name: "transient database failure keeps the offset",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "duplicate is handled by its own branch",
			err:  salaryerrors.ErrSalaryAlreadyExists,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnprocessableEvent(tt.err))
		})
	}
}
