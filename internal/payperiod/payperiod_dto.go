package payperiod

import (
	"time"

	"go-hrpay/internal/shared/listquery"
)

type CreatePayPeriodRequest struct {
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	PaymentDate string `json:"paymentDate" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=Draft Open Closed Processing Completed"`
}

type UpdatePayPeriodRequest struct {
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	PaymentDate string `json:"paymentDate" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=Draft Open Closed Processing Completed"`
}

type ListPayPeriodsRequest struct {
	listquery.Request
	Status string `form:"status" binding:"omitempty,oneof=Draft Open Closed Processing Completed"`
}

type PayPeriodResponse struct {
	PayPeriodID string    `json:"payPeriodId"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	PaymentDate string    `json:"paymentDate"`
	Status      string    `json:"status"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
}
