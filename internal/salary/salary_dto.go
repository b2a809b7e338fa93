package salary

import (
	"time"

	"github.com/shopspring/decimal"

	"go-hrpay/internal/shared/listquery"
)

type CreateSalaryRequest struct {
	EmployeeID    string          `json:"employeeId" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" binding:"omitempty,len=3"`
	PaymentType   string          `json:"paymentType" binding:"omitempty,oneof=Monthly Hourly"`
	EffectiveDate string          `json:"effectiveDate" binding:"required"`
	EndDate       *string         `json:"endDate"`
}

type ListSalariesRequest struct {
	listquery.Request
	EmployeeID string `form:"employeeId" binding:"required,uuid"`
}

type SalaryResponse struct {
	SalaryID      string          `json:"salaryId"`
	EmployeeID    string          `json:"employeeId"`
	EmployeeName  string          `json:"employeeName"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentType   string          `json:"paymentType"`
	EffectiveDate string          `json:"effectiveDate"`
	EndDate       *string         `json:"endDate"`
	Created       time.Time       `json:"created"`
	Modified      time.Time       `json:"modified"`
}
