package position

import (
	"time"

	"github.com/shopspring/decimal"

	"go-hrpay/internal/shared/listquery"
)

type CreatePositionRequest struct {
	Title        string          `json:"title" binding:"required,max=100"`
	Description  *string         `json:"description"`
	MinSalary    decimal.Decimal `json:"minSalary"`
	MaxSalary    decimal.Decimal `json:"maxSalary"`
	DepartmentID string          `json:"departmentId" binding:"required,uuid"`
}

type UpdatePositionRequest struct {
	Title        string          `json:"title" binding:"required,max=100"`
	Description  *string         `json:"description"`
	MinSalary    decimal.Decimal `json:"minSalary"`
	MaxSalary    decimal.Decimal `json:"maxSalary"`
	DepartmentID string          `json:"departmentId" binding:"required,uuid"`
}

type ListPositionsRequest struct {
	listquery.Request
	DepartmentID string `form:"departmentId" binding:"omitempty,uuid"`
}

type PositionResponse struct {
	PositionID     string          `json:"positionId"`
	Title          string          `json:"title"`
	Description    *string         `json:"description"`
	MinSalary      decimal.Decimal `json:"minSalary"`
	MaxSalary      decimal.Decimal `json:"maxSalary"`
	DepartmentID   string          `json:"departmentId"`
	DepartmentName string          `json:"departmentName"`
	EmployeeCount  int64           `json:"employeeCount"`
	Created        time.Time       `json:"created"`
	Modified       time.Time       `json:"modified"`
}
