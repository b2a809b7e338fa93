package employee

import (
	"time"

	"github.com/google/uuid"

	"go-hrpay/internal/shared/audit"
)

const (
	StatusActive     = "Active"
	StatusOnLeave    = "OnLeave"
	StatusTerminated = "Terminated"
)

type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName        string     `gorm:"size:100;not null"`
	LastName         string     `gorm:"size:100;not null"`
	Email            string     `gorm:"size:255;not null;uniqueIndex"`
	Phone            *string    `gorm:"size:50"`
	Address          *string    `gorm:"type:text"`
	DateOfBirth      time.Time  `gorm:"type:date;not null"`
	HireDate         time.Time  `gorm:"type:date;not null"`
	TerminationDate  *time.Time `gorm:"type:date"`
	Status           string     `gorm:"size:20;not null;default:Active"`
	DepartmentID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PositionID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ManagerID        *uuid.UUID `gorm:"type:uuid;index"`
	EmergencyContact *string    `gorm:"type:text"`
	BankDetails      *string    `gorm:"type:text"`
	audit.Fields

	Department *Department `gorm:"foreignKey:DepartmentID"`
	Position   *Position   `gorm:"foreignKey:PositionID"`
	Manager    *Employee   `gorm:"foreignKey:ManagerID"`
}

// Department and Position are narrow projections used only for name
// resolution on reads.
type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (Department) TableName() string { return "departments" }

type Position struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string
}

func (Position) TableName() string { return "positions" }
