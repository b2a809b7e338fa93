package payslip

import (
	"time"

	"github.com/shopspring/decimal"

	"go-hrpay/internal/shared/listquery"
)

type DeductionRequest struct {
	Type        string          `json:"type" binding:"required,max=50"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type CreatePayslipRequest struct {
	EmployeeID      string             `json:"employeeId" binding:"required,uuid"`
	PayPeriodID     string             `json:"payPeriodId" binding:"required,uuid"`
	GrossPay        decimal.Decimal    `json:"grossPay"`
	TotalDeductions decimal.Decimal    `json:"totalDeductions"`
	NetPay          decimal.Decimal    `json:"netPay"`
	Status          string             `json:"status" binding:"omitempty,oneof=Draft Approved Paid"`
	Deductions      []DeductionRequest `json:"deductions" binding:"omitempty,dive"`
}

type UpdatePayslipRequest struct {
	EmployeeID      string             `json:"employeeId" binding:"required,uuid"`
	PayPeriodID     string             `json:"payPeriodId" binding:"required,uuid"`
	GrossPay        decimal.Decimal    `json:"grossPay"`
	TotalDeductions decimal.Decimal    `json:"totalDeductions"`
	NetPay          decimal.Decimal    `json:"netPay"`
	Status          string             `json:"status" binding:"omitempty,oneof=Draft Approved Paid"`
	Deductions      []DeductionRequest `json:"deductions" binding:"omitempty,dive"`
}

type ListPayslipsRequest struct {
	listquery.Request
	EmployeeID  string `form:"employeeId" binding:"omitempty,uuid"`
	PayPeriodID string `form:"payPeriodId" binding:"omitempty,uuid"`
}

type DeductionResponse struct {
	DeductionID string          `json:"deductionId"`
	Type        string          `json:"type"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type PayslipResponse struct {
	PayslipID       string              `json:"payslipId"`
	EmployeeID      string              `json:"employeeId"`
	EmployeeName    string              `json:"employeeName"`
	PayPeriodID     string              `json:"payPeriodId"`
	PeriodStartDate string              `json:"periodStartDate"`
	PeriodEndDate   string              `json:"periodEndDate"`
	GrossPay        decimal.Decimal     `json:"grossPay"`
	TotalDeductions decimal.Decimal     `json:"totalDeductions"`
	NetPay          decimal.Decimal     `json:"netPay"`
	Status          string              `json:"status"`
	Deductions      []DeductionResponse `json:"deductions"`
	Created         time.Time           `json:"created"`
	Modified        time.Time           `json:"modified"`
}
