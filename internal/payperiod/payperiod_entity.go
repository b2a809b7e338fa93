package payperiod

import (
	"time"

	"github.com/google/uuid"

	"go-hrpay/internal/shared/audit"
)

const (
	StatusDraft      = "Draft"
	StatusOpen       = "Open"
	StatusClosed     = "Closed"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
)

type PayPeriod struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	PaymentDate time.Time `gorm:"type:date;not null"`
	Status      string    `gorm:"size:20;not null;default:Draft"`
	audit.Fields
}
