package department

import (
	"github.com/google/uuid"

	"go-hrpay/internal/shared/audit"
)

type Department struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"size:100;not null"`
	Description        *string    `gorm:"type:text"`
	ManagerID          *uuid.UUID `gorm:"type:uuid"`
	ParentDepartmentID *uuid.UUID `gorm:"type:uuid;index"`
	audit.Fields

	Manager          *Manager    `gorm:"foreignKey:ManagerID"`
	ParentDepartment *Department `gorm:"foreignKey:ParentDepartmentID"`
}

// Manager is a narrow projection of the employees table, used to resolve
// a department's manager name without importing the employee package.
type Manager struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
}

func (Manager) TableName() string { return "employees" }
