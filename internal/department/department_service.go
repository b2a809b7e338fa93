package department

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	departmenterrors "go-hrpay/internal/department/errors"
	"go-hrpay/internal/shared/listquery"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	List(ctx context.Context, req ListDepartmentsRequest) (listquery.Result[DepartmentResponse], error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("create department requested", zap.String("name", req.Name))

	dept := &Department{
		ID:                 uuid.New(),
		Name:               req.Name,
		Description:        req.Description,
		ManagerID:          uuidPtr(req.ManagerID),
		ParentDepartmentID: uuidPtr(req.ParentDepartmentID),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, dept)
	})
	if err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create department success", zap.String("department_id", dept.ID.String()))
	return mapToResponse(*dept, 0), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get department by id failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	employeeCount, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	children, err := s.repo.ListChildren(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*dept, employeeCount)

	if len(children) > 0 {
		childIDs := make([]string, len(children))
		for i, ch := range children {
			childIDs[i] = ch.ID.String()
		}
		childCounts, err := s.repo.EmployeeCounts(ctx, childIDs)
		if err != nil {
			return DepartmentResponse{}, mapRepositoryError(err)
		}

		resp.SubDepartments = make([]DepartmentResponse, len(children))
		for i, ch := range children {
			sub := mapToResponse(ch, childCounts[ch.ID.String()])
			// The parent is already loaded; no need to resolve it again.
			sub.ParentDepartmentName = &dept.Name
			resp.SubDepartments[i] = sub
		}
	}

	return resp, nil
}

func (s *service) List(ctx context.Context, req ListDepartmentsRequest) (listquery.Result[DepartmentResponse], error) {
	page, err := s.repo.List(ctx, req.Request, req.IncludeSubDepartments)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return listquery.Result[DepartmentResponse]{}, mapRepositoryError(err)
	}

	ids := make([]string, len(page.Items))
	for i, d := range page.Items {
		ids[i] = d.ID.String()
	}
	counts, err := s.repo.EmployeeCounts(ctx, ids)
	if err != nil {
		return listquery.Result[DepartmentResponse]{}, mapRepositoryError(err)
	}

	return listquery.Map(page, func(d Department) DepartmentResponse {
		return mapToResponse(d, counts[d.ID.String()])
	}), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("update department requested", zap.String("department_id", id))

	var dept *Department
	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		dept, err = qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		// Replace-on-write: every mutable field is taken from the request.
		dept.Name = req.Name
		dept.Description = req.Description
		dept.ManagerID = uuidPtr(req.ManagerID)
		dept.ParentDepartmentID = uuidPtr(req.ParentDepartmentID)

		return qtx.Update(ctx, dept)
	})
	if err != nil {
		s.logger.Error("update department failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update department success", zap.String("department_id", id))
	return mapToResponse(*dept, 0), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete department requested", zap.String("department_id", id))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return err
		}

		children, err := qtx.CountChildren(ctx, id)
		if err != nil {
			return err
		}
		employees, err := qtx.CountEmployees(ctx, id)
		if err != nil {
			return err
		}
		positions, err := qtx.CountPositions(ctx, id)
		if err != nil {
			return err
		}

		if children > 0 || employees > 0 || positions > 0 {
			return departmenterrors.ErrDepartmentHasDependents
		}

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Warn("delete department blocked or failed", zap.String("department_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

func mapToResponse(dept Department, employeeCount int64) DepartmentResponse {
	resp := DepartmentResponse{
		DepartmentID:       dept.ID.String(),
		Name:               dept.Name,
		Description:        dept.Description,
		ManagerID:          uuidToStringPtr(dept.ManagerID),
		ParentDepartmentID: uuidToStringPtr(dept.ParentDepartmentID),
		EmployeeCount:      employeeCount,
		Created:            dept.Created,
		Modified:           dept.Modified,
	}
	if dept.Manager != nil {
		name := dept.Manager.FirstName + " " + dept.Manager.LastName
		resp.ManagerName = &name
	}
	if dept.ParentDepartment != nil {
		resp.ParentDepartmentName = &dept.ParentDepartment.Name
	}
	return resp
}

func uuidPtr(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToStringPtr(v *uuid.UUID) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}
