package salary

import (
	"context"

	"gorm.io/gorm"

	"go-hrpay/internal/shared/listquery"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, sal *Salary) error
	ListByEmployee(ctx context.Context, req listquery.Request, employeeID string) (listquery.Result[Salary], error)
	EmployeeExists(ctx context.Context, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, sal *Salary) error {
	return r.db.WithContext(ctx).Create(sal).Error
}

func (r *repository) ListByEmployee(ctx context.Context, req listquery.Request, employeeID string) (listquery.Result[Salary], error) {
	scopes := []listquery.Scope{
		listquery.Eq("employee_id", employeeID),
		func(db *gorm.DB) *gorm.DB { return db.Preload("Employee") },
	}
	return listquery.Find[Salary](ctx, r.db, req, "effective_date DESC", scopes...)
}

func (r *repository) EmployeeExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
