package salary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-hrpay/internal/shared/audit"
)

const (
	PaymentTypeMonthly = "Monthly"
	PaymentTypeHourly  = "Hourly"
)

type Salary struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_salaries_employee_effective"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Currency      string          `gorm:"size:3;not null;default:USD"`
	PaymentType   string          `gorm:"size:20;not null;default:Monthly"`
	EffectiveDate time.Time       `gorm:"type:date;not null;uniqueIndex:uq_salaries_employee_effective"`
	EndDate       *time.Time      `gorm:"type:date"`
	audit.Fields

	Employee *Employee `gorm:"foreignKey:EmployeeID"`
}

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
}

func (Employee) TableName() string { return "employees" }
