package position

import (
	"context"

	"gorm.io/gorm"

	"go-hrpay/internal/shared/listquery"
)

var searchColumns = []string{"title", "description"}

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, pos *Position) error
	FindByID(ctx context.Context, id string) (*Position, error)
	List(ctx context.Context, req listquery.Request, departmentID string) (listquery.Result[Position], error)
	Update(ctx context.Context, pos *Position) error
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, id string) (int64, error)
	EmployeeCounts(ctx context.Context, ids []string) (map[string]int64, error)
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

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	var pos Position
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&pos, "id = ?", id).Error
	return &pos, err
}

func (r *repository) List(ctx context.Context, req listquery.Request, departmentID string) (listquery.Result[Position], error) {
	scopes := []listquery.Scope{
		listquery.SearchILike(req.SearchTerm, searchColumns...),
		listquery.Eq("department_id", departmentID),
		func(db *gorm.DB) *gorm.DB { return db.Preload("Department") },
	}
	return listquery.Find[Position](ctx, r.db, req, "title ASC", scopes...)
}

func (r *repository) Update(ctx context.Context, pos *Position) error {
	return r.db.WithContext(ctx).Save(pos).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Position{}, "id = ?", id).Error
}

func (r *repository) CountEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("position_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *repository) EmployeeCounts(ctx context.Context, ids []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	type row struct {
		PositionID string
		Total      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("position_id, COUNT(*) AS total").
		Where("position_id IN ?", ids).
		Group("position_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.PositionID] = rw.Total
	}
	return counts, nil
}
