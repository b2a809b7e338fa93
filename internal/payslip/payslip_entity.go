package payslip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-hrpay/internal/shared/audit"
)

const (
	StatusDraft    = "Draft"
	StatusApproved = "Approved"
	StatusPaid     = "Paid"
)

type Payslip struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PayPeriodID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	GrossPay        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	NetPay          decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status          string          `gorm:"size:20;not null;default:Draft"`
	audit.Fields

	Deductions []Deduction `gorm:"foreignKey:PayslipID;constraint:OnDelete:CASCADE"`
	Employee   *Employee   `gorm:"foreignKey:EmployeeID"`
	PayPeriod  *PayPeriod  `gorm:"foreignKey:PayPeriodID"`
}

// Deduction is a line item owned by its payslip. It carries no audit
// columns; rows live and die with the parent.
type Deduction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayslipID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"size:50;not null"`
	Description *string         `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
}

func (Employee) TableName() string { return "employees" }

type PayPeriod struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartDate time.Time `gorm:"type:date"`
	EndDate   time.Time `gorm:"type:date"`
}

func (PayPeriod) TableName() string { return "pay_periods" }
