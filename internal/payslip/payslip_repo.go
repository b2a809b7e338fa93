package payslip

import (
	"context"

	"gorm.io/gorm"

	"go-hrpay/internal/shared/listquery"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, slip *Payslip) error
	FindByID(ctx context.Context, id string) (*Payslip, error)
	List(ctx context.Context, req listquery.Request, employeeID, payPeriodID string) (listquery.Result[Payslip], error)
	Update(ctx context.Context, slip *Payslip) error
	Delete(ctx context.Context, id string) error
	ReplaceDeductions(ctx context.Context, payslipID string, deductions []Deduction) error
	EmployeeExists(ctx context.Context, id string) (bool, error)
	PayPeriodExists(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Create persists the payslip and any nested deductions in one go; GORM
// cascades the association insert.
func (r *repository) Create(ctx context.Context, slip *Payslip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var slip Payslip
	err := r.db.WithContext(ctx).
		Preload("Deductions").
		Preload("Employee").
		Preload("PayPeriod").
		First(&slip, "id = ?", id).Error
	return &slip, err
}

func (r *repository) List(ctx context.Context, req listquery.Request, employeeID, payPeriodID string) (listquery.Result[Payslip], error) {
	scopes := []listquery.Scope{
		listquery.Eq("employee_id", employeeID),
		listquery.Eq("pay_period_id", payPeriodID),
		func(db *gorm.DB) *gorm.DB {
			return db.Preload("Deductions").Preload("Employee").Preload("PayPeriod")
		},
	}
	return listquery.Find[Payslip](ctx, r.db, req, "created DESC", scopes...)
}

func (r *repository) Update(ctx context.Context, slip *Payslip) error {
	// Omit the association: deductions are replaced explicitly so Save
	// does not upsert stale line items.
	return r.db.WithContext(ctx).Omit("Deductions").Save(slip).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&Deduction{}, "payslip_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&Payslip{}, "id = ?", id).Error
}

func (r *repository) ReplaceDeductions(ctx context.Context, payslipID string, deductions []Deduction) error {
	if err := r.db.WithContext(ctx).Delete(&Deduction{}, "payslip_id = ?", payslipID).Error; err != nil {
		return err
	}
	if len(deductions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&deductions).Error
}

func (r *repository) EmployeeExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) PayPeriodExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("pay_periods").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
