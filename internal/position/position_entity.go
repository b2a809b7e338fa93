package position

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-hrpay/internal/shared/audit"
)

type Position struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title        string          `gorm:"size:100;not null"`
	Description  *string         `gorm:"type:text"`
	MinSalary    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	MaxSalary    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	DepartmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	audit.Fields

	Department *Department `gorm:"foreignKey:DepartmentID"`
}

// Department is a narrow projection of the departments table for name
// resolution.
type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (Department) TableName() string { return "departments" }
