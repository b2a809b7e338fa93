package payperiod

import (
	"context"

	"gorm.io/gorm"

	"go-hrpay/internal/shared/listquery"
)

//go:generate mockgen -source=payperiod_repo.go -destination=mock/payperiod_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, period *PayPeriod) error
	FindByID(ctx context.Context, id string) (*PayPeriod, error)
	List(ctx context.Context, req listquery.Request, status string) (listquery.Result[PayPeriod], error)
	Update(ctx context.Context, period *PayPeriod) error
	Delete(ctx context.Context, id string) error
	CountPayslips(ctx context.Context, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, period *PayPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayPeriod, error) {
	var period PayPeriod
	err := r.db.WithContext(ctx).First(&period, "id = ?", id).Error
	return &period, err
}

func (r *repository) List(ctx context.Context, req listquery.Request, status string) (listquery.Result[PayPeriod], error) {
	scopes := []listquery.Scope{
		listquery.Eq("status", status),
	}
	return listquery.Find[PayPeriod](ctx, r.db, req, "start_date DESC", scopes...)
}

func (r *repository) Update(ctx context.Context, period *PayPeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&PayPeriod{}, "id = ?", id).Error
}

func (r *repository) CountPayslips(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("payslips").
		Where("pay_period_id = ?", id).
		Count(&count).Error
	return count, err
}
